package builtin

import (
	"strings"

	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/value"
)

func registerBitOps(e value.Scope) {
	def(e, "&", chainBitwise(func(a, b int64) int64 { return a & b }, -1))
	def(e, "|", chainBitwise(func(a, b int64) int64 { return a | b }, 0))
	def(e, "^", chainBitwise(func(a, b int64) int64 { return a ^ b }, 0))
	def(e, "~", biTilde)
	def(e, "<<", shift(func(a int64, n uint) int64 { return a << n }))
	def(e, ">>", shift(func(a int64, n uint) int64 { return a >> n }))
}

// biTilde implements the overloaded ~ primitive: applied to a single
// integer it is bitwise NOT; applied to any other arity or argument
// kind it is the string-concatenate primitive, joining the printed
// form of every evaluated argument with no separator.
func biTilde(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) == 1 {
		if n, ok := asInt(evaluated[0]); ok {
			return value.Int(^n), nil
		}
	}
	var sb strings.Builder
	for _, v := range evaluated {
		sb.WriteString(v.String())
	}
	return value.Str(sb.String()), nil
}

func asInt(v *value.Expr) (int64, bool) {
	if !value.IsInteger(v) {
		return 0, false
	}
	return v.Int, true
}

func chainBitwise(op func(a, b int64) int64, identity int64) value.NativeFunc {
	return func(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
		evaluated, err := evalEach(args, scope, ev)
		if err != nil {
			return nil, err
		}
		acc := identity
		first := true
		for _, v := range evaluated {
			n, ok := asInt(v)
			if !ok {
				return nil, typeErr("bitwise operation requires integers, got %s", v)
			}
			if first {
				acc = n
			} else {
				acc = op(acc, n)
			}
			first = false
		}
		return value.Int(acc), nil
	}
}

// shift builds << and >>, which default to a 1-bit shift when called
// with a single argument.
func shift(op func(a int64, n uint) int64) value.NativeFunc {
	return func(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
		evaluated, err := evalEach(args, scope, ev)
		if err != nil {
			return nil, err
		}
		if len(evaluated) < 1 || len(evaluated) > 2 {
			return nil, arityErr("shift expects 1 or 2 arguments, got %d", len(evaluated))
		}
		a, ok := asInt(evaluated[0])
		if !ok {
			return nil, typeErr("shift requires an integer, got %s", evaluated[0])
		}
		n := int64(1)
		if len(evaluated) == 2 {
			n, ok = asInt(evaluated[1])
			if !ok {
				return nil, typeErr("shift amount must be an integer, got %s", evaluated[1])
			}
		}
		return value.Int(op(a, uint(n))), nil
	}
}
