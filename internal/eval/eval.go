// Package eval implements the tree-walking evaluator: expression
// dispatch, quasiquote expansion with splicing, parameter binding, and
// user-function/macro application.
package eval

import (
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/value"
)

// Evaluator is the evaluator entry point; it implements value.Evaluator
// so the builtin package can recursively evaluate sub-expressions
// without importing eval.
type Evaluator struct{}

// New creates an Evaluator. It carries no state: all mutable state
// lives in the environment chain.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval satisfies value.Evaluator. scope must be an *env.Env; it is the
// only concrete implementation of value.Scope in this module.
func (ev *Evaluator) Eval(expr *value.Expr, scope value.Scope) (*value.Expr, *errors.SourceError) {
	e, ok := scope.(*env.Env)
	if !ok {
		return nil, errors.New(errors.TypeError, lexer.Position{}, "internal error: scope is not an *env.Env")
	}
	return ev.evalIn(expr, e)
}

// EvalTopLevel runs expr against a top-level *env.Env, the typed
// counterpart to Eval for callers (the CLI, the REPL, tests) that
// already hold a concrete *env.Env. It is the outermost evaluation
// boundary: a return signal that unwinds past every applyUserFunc frame
// (a bare top-level return, or one that escapes a macro expansion
// without ever entering a function call) is caught here and reported as
// an error instead of crashing the host, per the language's error
// handling design.
func (ev *Evaluator) EvalTopLevel(expr *value.Expr, e *env.Env) (result *value.Expr, evalErr *errors.SourceError) {
	defer func() {
		if r := recover(); r != nil {
			if _, isReturn := r.(value.ReturnSignal); !isReturn {
				panic(r)
			}
			result, evalErr = nil, errors.New(errors.IllegalSyntaxPosition, lexer.Position{}, "return used outside of a function call")
		}
	}()
	return ev.evalIn(expr, e)
}

func (ev *Evaluator) evalIn(expr *value.Expr, scope *env.Env) (*value.Expr, *errors.SourceError) {
	switch expr.Kind {
	case value.Literal, value.Function, value.ErrorKind:
		return expr, nil

	case value.Symbol:
		if expr.Sub == value.SymbolKeyword {
			return expr, nil
		}
		v, ok := scope.Lookup(expr.Name)
		if !ok {
			return nil, errors.New(errors.UnboundSymbol, lexer.Position{}, "unbound symbol: %s", expr.Name)
		}
		return v, nil

	case value.Syntax:
		switch expr.Sub {
		case value.SyntaxQuote:
			return expr.Head, nil
		case value.SyntaxBacktick:
			return ev.evalBacktick(expr.Head, scope)
		case value.SyntaxComma, value.SyntaxCommaAt:
			return nil, errors.New(errors.IllegalSyntaxPosition, lexer.Position{}, "comma forms are only valid inside a backtick template")
		}

	case value.List:
		if value.IsEmptyList(expr) {
			return expr, nil
		}
		return ev.evalCall(expr, scope)
	}
	return nil, errors.New(errors.TypeError, lexer.Position{}, "cannot evaluate expression of unknown kind")
}
