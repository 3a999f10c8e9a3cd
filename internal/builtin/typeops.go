package builtin

import (
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/value"
)

func registerTypeOps(e value.Scope) {
	def(e, "type-of", biTypeOf)
	def(e, "type=", biTypeEq)
	def(e, "symbol=", biSymbolEq)
	def(e, "string=", biStringEq)
}

// kindName returns the lowercase type name for v: integer, float,
// string, boolean, list, or symbol.
func kindName(v *value.Expr) string {
	switch {
	case value.IsInteger(v):
		return "integer"
	case value.IsFloat(v):
		return "float"
	case value.IsString(v):
		return "string"
	case value.IsBool(v):
		return "boolean"
	case value.IsList(v):
		return "list"
	case value.IsSymbol(v):
		return "symbol"
	default:
		return "unknown"
	}
}

// biTypeOf returns the shared kind name of its (one or more) evaluated
// arguments as a Symbol, requiring they all agree.
func biTypeOf(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) == 0 {
		return nil, arityErr("type-of expects at least 1 argument")
	}
	kind := kindName(evaluated[0])
	for _, v := range evaluated[1:] {
		if kindName(v) != kind {
			return nil, typeErr("type-of requires all arguments to share a kind")
		}
	}
	return value.Sym(kind), nil
}

func biTypeEq(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) == 0 {
		return value.Bool(true), nil
	}
	kind := kindName(evaluated[0])
	for _, v := range evaluated[1:] {
		if kindName(v) != kind {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func biSymbolEq(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	for _, v := range evaluated {
		if !value.IsSymbol(v) {
			return nil, typeErr("symbol= requires symbols, got %s", v)
		}
	}
	return value.Bool(namesChainEqual(evaluated)), nil
}

func biStringEq(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	for _, v := range evaluated {
		if !value.IsString(v) {
			return nil, typeErr("string= requires strings, got %s", v)
		}
	}
	return value.Bool(stringsChainEqual(evaluated)), nil
}

func namesChainEqual(vs []*value.Expr) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i-1].Name != vs[i].Name {
			return false
		}
	}
	return true
}

func stringsChainEqual(vs []*value.Expr) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i-1].Str != vs[i].Str {
			return false
		}
	}
	return true
}
