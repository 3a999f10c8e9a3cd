package builtin

import (
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/value"
)

func registerComparison(e value.Scope) {
	def(e, "<", chainCompare(func(a, b float64) bool { return a < b }))
	def(e, "<=", chainCompare(func(a, b float64) bool { return a <= b }))
	def(e, ">", chainCompare(func(a, b float64) bool { return a > b }))
	def(e, ">=", chainCompare(func(a, b float64) bool { return a >= b }))
	def(e, "=", chainCompare(func(a, b float64) bool { return a == b }))
}

func numericValue(v *value.Expr) (float64, bool) {
	switch {
	case value.IsInteger(v):
		return float64(v.Int), true
	case value.IsFloat(v):
		return v.Flt, true
	default:
		return 0, false
	}
}

// chainCompare builds a variadic comparison primitive that holds iff
// rel holds between every pair of consecutive evaluated arguments,
// short-circuiting on the first pair that fails.
func chainCompare(rel func(a, b float64) bool) value.NativeFunc {
	return func(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
		var prev float64
		first := true
		for cur := args; value.IsPair(cur); cur = cur.Rest {
			v, err := ev.Eval(cur.Head, scope)
			if err != nil {
				return nil, err
			}
			n, ok := numericValue(v)
			if !ok {
				return nil, typeErr("comparison requires numbers, got %s", v)
			}
			if !first && !rel(prev, n) {
				return value.Bool(false), nil
			}
			prev = n
			first = false
		}
		return value.Bool(true), nil
	}
}
