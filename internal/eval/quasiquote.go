package eval

import (
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/value"
)

// evalBacktick implements §4.4.2: backtick templates evaluate comma
// positions, splice comma-at positions, and leave everything else
// unchanged.
func (ev *Evaluator) evalBacktick(x *value.Expr, scope *env.Env) (*value.Expr, *errors.SourceError) {
	if x.Kind == value.Syntax && x.Sub == value.SyntaxComma {
		return ev.evalIn(x.Head, scope)
	}
	if value.IsList(x) {
		spliced, err := expandCommaAt(x, scope, ev)
		if err != nil {
			return nil, err
		}
		var out []*value.Expr
		for cur := spliced; value.IsPair(cur); cur = cur.Rest {
			item, err := ev.evalBacktick(cur.Head, scope)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return value.NewList(out...), nil
	}
	return x, nil
}
