package builtin_test

import (
	"os"
	"testing"

	"github.com/basil-lang/basil/internal/builtin"
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/eval"
	"github.com/basil-lang/basil/internal/prelude"
	"github.com/basil-lang/basil/internal/reader"
	"github.com/basil-lang/basil/internal/value"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// runWithPrelude is like run, but bootstraps the standard library
// (negate, -, when/unless, map1, ...) before evaluating src.
func runWithPrelude(t *testing.T, src string) string {
	t.Helper()
	e := env.New()
	builtin.Register(e)
	ev := eval.New()

	preludeForms, err := reader.New(prelude.Source, "<prelude>").ParseTopLevel()
	if err != nil {
		t.Fatalf("prelude parse error: %v", err)
	}
	for _, f := range preludeForms {
		if _, evalErr := ev.EvalTopLevel(f, e); evalErr != nil {
			t.Fatalf("prelude eval error: %v", evalErr)
		}
	}

	forms, err := reader.New(src, "test.bl").ParseTopLevel()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var last *value.Expr = value.Nil()
	for _, f := range forms {
		v, evalErr := ev.EvalTopLevel(f, e)
		if evalErr != nil {
			t.Fatalf("eval error: %v", evalErr)
		}
		last = v
	}
	return last.String()
}

// TestEndToEndScenarios snapshots the printed result of each scenario
// program against a committed snapshot, catching accidental semantic
// drift in prelude subtraction, recursion, closures, macros,
// quasiquotation, and for-each together rather than one assertion at a
// time.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := []struct {
		name string
		src  string
	}{
		{
			name: "subtraction_via_prelude",
			src:  `(- 10 3 2)`,
		},
		{
			name: "factorial_recursion",
			src: `
				(defun fact (n)
				  (if (< n 2) 1 (* n (fact (- n 1)))))
				(fact 5)`,
		},
		{
			name: "lexical_closure",
			src: `
				(defun make-adder (n)
				  (defun adder (x) (+ x n))
				  adder)
				(defsym add5 (make-adder 5))
				(add5 10)`,
		},
		{
			name: "quasiquote_splicing",
			src: `
				(defsym tail (list 2 3 4))
				` + "`" + `(1 ,@tail)`,
		},
		{
			name: "when_macro_expansion",
			src:  `(when (< 1 2) 41 42)`,
		},
		{
			name: "for_each_accumulator",
			src: `
				(defsym total 0)
				(for-each (n (list 1 2 3 4))
				  (set total (+ total n)))
				total`,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			result := runWithPrelude(t, sc.src)
			snaps.MatchSnapshot(t, result)
		})
	}
}
