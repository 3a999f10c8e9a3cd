// Package builtin implements basil's special forms and primitive
// operations as value.NativeFunc values, registered into a base
// environment by Register.
package builtin

import (
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/value"
)

// Register installs every special form, primitive, and the true/false
// singletons into e. Callers (the CLI, the REPL, tests) build one base
// environment this way and evaluate top-level forms in it.
func Register(e value.Scope) {
	e.Insert("true", value.Bool(true))
	e.Insert("false", value.Bool(false))

	registerForms(e)
	registerArithmetic(e)
	registerComparison(e)
	registerLogic(e)
	registerBitOps(e)
	registerSequence(e)
	registerTypeOps(e)
	registerIO(e)
}

func def(e value.Scope, name string, fn value.NativeFunc) {
	e.Insert(name, value.Builtin(name, fn))
}

func typeErr(format string, args ...any) *errors.SourceError {
	return errors.New(errors.TypeError, lexer.Position{}, format, args...)
}

func arityErr(format string, args ...any) *errors.SourceError {
	return errors.New(errors.ArityMismatch, lexer.Position{}, format, args...)
}

// evalEach evaluates every element of an unevaluated argument list left
// to right in scope, the shared pattern for primitives (as opposed to
// special forms) whose argument list they receive unevaluated.
func evalEach(args *value.Expr, scope value.Scope, ev value.Evaluator) ([]*value.Expr, *errors.SourceError) {
	var out []*value.Expr
	for cur := args; value.IsPair(cur); cur = cur.Rest {
		v, err := ev.Eval(cur.Head, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
