package builtin_test

import (
	"testing"

	"github.com/basil-lang/basil/internal/builtin"
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/eval"
	"github.com/basil-lang/basil/internal/reader"
	"github.com/basil-lang/basil/internal/value"
)

// run evaluates every top-level form in src against a fresh base
// environment and returns the printed form of the last result.
func run(t *testing.T, src string) string {
	t.Helper()
	e := env.New()
	builtin.Register(e)
	ev := eval.New()

	r := reader.New(src, "test.bl")
	forms, err := r.ParseTopLevel()
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

// runErr is like run but reports whether evaluation failed instead of
// the printed result.
func runErr(t *testing.T, src string) error {
	t.Helper()
	e := env.New()
	builtin.Register(e)
	ev := eval.New()

	r := reader.New(src, "test.bl")
	forms, err := r.ParseTopLevel()
	if err != nil {
		return err
	}
	for _, f := range forms {
		if _, evalErr := ev.EvalTopLevel(f, e); evalErr != nil {
			return evalErr
		}
	}
	return nil
}
