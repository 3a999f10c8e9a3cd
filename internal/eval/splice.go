package eval

import (
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/value"
)

// expandCommaAt walks the immediate elements of list and, for every
// element of the form Syntax(comma-at, x), evaluates x, requires a List
// result, and splices its elements in place of the Syntax node. Every
// other element is carried over unevaluated. This single routine
// implements both call-site splicing (§4.4.1) and the splice step of
// quasiquote expansion (§4.4.2): both specs describe the identical
// walk, only the surrounding treatment of non-spliced elements differs.
func expandCommaAt(list *value.Expr, scope *env.Env, ev *Evaluator) (*value.Expr, *errors.SourceError) {
	var out []*value.Expr
	for cur := list; value.IsPair(cur); cur = cur.Rest {
		elem := cur.Head
		if elem.Kind == value.Syntax && elem.Sub == value.SyntaxCommaAt {
			spliced, err := ev.evalIn(elem.Head, scope)
			if err != nil {
				return nil, err
			}
			if !value.IsList(spliced) {
				return nil, errors.New(errors.TypeError, lexer.Position{}, "comma-at splice requires a list, got %s", spliced)
			}
			out = append(out, value.Items(spliced)...)
			continue
		}
		out = append(out, elem)
	}
	return value.NewList(out...), nil
}
