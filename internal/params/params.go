// Package params validates and binds defun/defmacro parameter lists
// per the &rest/&optional rules, shared by eval (which binds call
// arguments) and builtin (which validates shape at definition time).
package params

import (
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/value"
)

// OptParam is one &optional/&opt parameter: a bare name defaulting to
// false, or a (name default-expr) pair whose default is evaluated in
// the calling environment only when no argument supplies it.
type OptParam struct {
	Name    string
	HasExpr bool
	Expr    *value.Expr
}

// Spec is the parsed, validated shape of a defun/defmacro parameter
// list.
type Spec struct {
	Required []string
	Optional []OptParam
	Rest     string // "" if no &rest
}

func badParamList(format string, args ...any) *errors.SourceError {
	return errors.New(errors.BadParamList, lexer.Position{}, format, args...)
}

// Parse validates params per §4.5 and builds a Spec.
func Parse(params *value.Expr) (*Spec, *errors.SourceError) {
	if !value.IsList(params) {
		return nil, badParamList("parameter list must be a list")
	}

	spec := &Spec{}
	items := value.Items(params)

	i := 0
	for ; i < len(items); i++ {
		item := items[i]
		if value.IsSymbol(item) && (item.Name == "&rest" || item.Name == "&optional" || item.Name == "&opt") {
			break
		}
		if !value.IsSymbol(item) {
			return nil, badParamList("required parameter must be a symbol, got %s", item)
		}
		spec.Required = append(spec.Required, item.Name)
	}

	for i < len(items) {
		marker := items[i]
		switch marker.Name {
		case "&optional", "&opt":
			i++
			for i < len(items) {
				item := items[i]
				if value.IsSymbol(item) && item.Name == "&rest" {
					break
				}
				switch {
				case value.IsSymbol(item):
					spec.Optional = append(spec.Optional, OptParam{Name: item.Name})
				case value.IsPair(item) && value.Length(item) == 2:
					parts := value.Items(item)
					if !value.IsSymbol(parts[0]) {
						return nil, badParamList("optional parameter name must be a symbol, got %s", parts[0])
					}
					spec.Optional = append(spec.Optional, OptParam{Name: parts[0].Name, HasExpr: true, Expr: parts[1]})
				default:
					return nil, badParamList("malformed &optional parameter %s", item)
				}
				i++
			}
		case "&rest":
			i++
			if i != len(items)-1 {
				return nil, badParamList("&rest must be followed by exactly one symbol ending the parameter list")
			}
			if !value.IsSymbol(items[i]) {
				return nil, badParamList("&rest parameter must be a symbol, got %s", items[i])
			}
			spec.Rest = items[i].Name
			i++
		default:
			return nil, badParamList("unexpected marker %s in parameter list", marker)
		}
	}

	return spec, nil
}

// Bind allocates a child environment and binds args (already evaluated
// for user functions, still unevaluated for macros) to spec's
// parameters, evaluating &optional defaults with evalDefault (the
// calling environment for functions, per §4.5).
func Bind(spec *Spec, args []*value.Expr, parent *env.Env, evalDefault func(expr *value.Expr) (*value.Expr, *errors.SourceError)) (*env.Env, *errors.SourceError) {
	child := env.NewChild(parent)

	if len(args) < len(spec.Required) {
		return nil, errors.New(errors.ArityMismatch, lexer.Position{}, "expected at least %d argument(s), got %d", len(spec.Required), len(args))
	}
	idx := 0
	for _, name := range spec.Required {
		child.Insert(name, args[idx])
		idx++
	}

	for _, opt := range spec.Optional {
		if idx < len(args) {
			child.Insert(opt.Name, args[idx])
			idx++
			continue
		}
		if opt.HasExpr {
			v, err := evalDefault(opt.Expr)
			if err != nil {
				return nil, err
			}
			child.Insert(opt.Name, v)
		} else {
			child.Insert(opt.Name, value.Bool(false))
		}
	}

	if spec.Rest != "" {
		child.Insert(spec.Rest, value.NewList(args[idx:]...))
		return child, nil
	}

	if idx < len(args) {
		return nil, errors.New(errors.ArityMismatch, lexer.Position{}, "too many arguments: expected %d, got %d", idx, len(args))
	}
	return child, nil
}
