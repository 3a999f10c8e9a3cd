package builtin

import (
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/value"
)

func registerLogic(e value.Scope) {
	def(e, "and", biAnd)
	def(e, "or", biOr)
	def(e, "not", biNot)
}

func asBool(v *value.Expr) (bool, bool) {
	if !value.IsBool(v) {
		return false, false
	}
	return v.Bln, true
}

func biAnd(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	result := value.Bool(true)
	for cur := args; value.IsPair(cur); cur = cur.Rest {
		v, err := ev.Eval(cur.Head, scope)
		if err != nil {
			return nil, err
		}
		b, ok := asBool(v)
		if !ok {
			return nil, typeErr("and requires boolean arguments, got %s", v)
		}
		if !b {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func biOr(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	result := value.Bool(false)
	for cur := args; value.IsPair(cur); cur = cur.Rest {
		v, err := ev.Eval(cur.Head, scope)
		if err != nil {
			return nil, err
		}
		b, ok := asBool(v)
		if !ok {
			return nil, typeErr("or requires boolean arguments, got %s", v)
		}
		if b {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func biNot(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 1 {
		return nil, arityErr("not expects exactly 1 argument, got %d", len(evaluated))
	}
	b, ok := asBool(evaluated[0])
	if !ok {
		return nil, typeErr("not requires a boolean, got %s", evaluated[0])
	}
	return value.Bool(!b), nil
}
