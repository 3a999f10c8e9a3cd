package builtin

import (
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/value"
)

func registerArithmetic(e value.Scope) {
	def(e, "+", biPlus)
	def(e, "*", biTimes)
}

func biPlus(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	allInt := true
	var isum int64
	var fsum float64
	for _, v := range evaluated {
		switch {
		case value.IsInteger(v):
			isum += v.Int
			fsum += float64(v.Int)
		case value.IsFloat(v):
			allInt = false
			fsum += v.Flt
		default:
			return nil, typeErr("+ requires numbers, got %s", v)
		}
	}
	if allInt {
		return value.Int(isum), nil
	}
	return value.Float(fsum), nil
}

func biTimes(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	allInt := true
	iprod := int64(1)
	fprod := 1.0
	for _, v := range evaluated {
		switch {
		case value.IsInteger(v):
			iprod *= v.Int
			fprod *= float64(v.Int)
		case value.IsFloat(v):
			allInt = false
			fprod *= v.Flt
		default:
			return nil, typeErr("* requires numbers, got %s", v)
		}
	}
	if allInt {
		return value.Int(iprod), nil
	}
	return value.Float(fprod), nil
}
