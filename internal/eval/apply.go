package eval

import (
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/params"
	"github.com/basil-lang/basil/internal/value"
)

// evalCall implements §4.4.1: call-site splicing, head resolution, and
// dispatch by callable subkind.
func (ev *Evaluator) evalCall(call *value.Expr, scope *env.Env) (*value.Expr, *errors.SourceError) {
	spliced, err := expandCommaAt(call, scope, ev)
	if err != nil {
		return nil, err
	}

	head := spliced.Head
	tail := spliced.Rest

	if !value.IsSymbol(head) {
		return nil, errors.New(errors.NotCallable, lexer.Position{}, "call head must be a symbol, got %s", head)
	}
	fn, ok := scope.Lookup(head.Name)
	if !ok {
		return nil, errors.New(errors.UnboundSymbol, lexer.Position{}, "unbound symbol: %s", head.Name)
	}
	if !value.IsFunction(fn) {
		return nil, errors.New(errors.NotCallable, lexer.Position{}, "%s is not callable", head.Name)
	}

	switch fn.Sub {
	case value.FunctionBuiltin:
		return fn.Native(tail, scope, ev)
	case value.FunctionMacro:
		return ev.applyMacro(fn, tail, scope)
	case value.FunctionUser:
		return ev.applyUserFunc(fn, tail, scope)
	default:
		return nil, errors.New(errors.NotCallable, lexer.Position{}, "%s is not callable", head.Name)
	}
}

// applyUserFunc binds EVALUATED arguments and runs the body in a child
// of the closure environment, catching a return signal raised anywhere
// within (the only frame boundary that return unwinds to).
func (ev *Evaluator) applyUserFunc(fn *value.Expr, tail *value.Expr, callerScope *env.Env) (result *value.Expr, evalErr *errors.SourceError) {
	args, err := ev.evalArgs(tail, callerScope)
	if err != nil {
		return nil, err
	}

	spec, perr := params.Parse(fn.Params)
	if perr != nil {
		return nil, perr
	}

	closure, _ := fn.Closure.(*env.Env)
	child, berr := params.Bind(spec, args, closure, func(e *value.Expr) (*value.Expr, *errors.SourceError) {
		return ev.evalIn(e, callerScope)
	})
	if berr != nil {
		return nil, berr
	}

	defer func() {
		if r := recover(); r != nil {
			sig, isReturn := r.(value.ReturnSignal)
			if !isReturn {
				panic(r)
			}
			result, evalErr = sig.Value, nil
		}
	}()

	return ev.evalBody(fn.Body, child)
}

// applyMacro binds UNEVALUATED arguments, expands the body in a child
// environment, then evaluates the expansion again in the caller's
// environment (expand-then-eval, §4.4.1).
func (ev *Evaluator) applyMacro(fn *value.Expr, tail *value.Expr, callerScope *env.Env) (*value.Expr, *errors.SourceError) {
	args := value.Items(tail)

	spec, perr := params.Parse(fn.Params)
	if perr != nil {
		return nil, perr
	}

	closure, _ := fn.Closure.(*env.Env)
	child, berr := params.Bind(spec, args, closure, func(e *value.Expr) (*value.Expr, *errors.SourceError) {
		return e, nil
	})
	if berr != nil {
		return nil, berr
	}

	expansion, err := ev.evalBody(fn.Body, child)
	if err != nil {
		return nil, err
	}
	return ev.evalIn(expansion, callerScope)
}

func (ev *Evaluator) evalArgs(tail *value.Expr, scope *env.Env) ([]*value.Expr, *errors.SourceError) {
	var out []*value.Expr
	for cur := tail; value.IsPair(cur); cur = cur.Rest {
		v, err := ev.evalIn(cur.Head, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// evalBody evaluates a sequence of forms, returning the last value (or
// the empty list if body is empty).
func (ev *Evaluator) evalBody(body *value.Expr, scope *env.Env) (*value.Expr, *errors.SourceError) {
	var result *value.Expr = value.Nil()
	for cur := body; value.IsPair(cur); cur = cur.Rest {
		v, err := ev.evalIn(cur.Head, scope)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
