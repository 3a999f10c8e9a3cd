package builtin

import (
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/value"
)

// biSet implements generalised assignment (§4.6): place is either a
// bare symbol, rebound in whichever frame currently binds it, or a call
// to one of the accessor primitives first/last/nth, which locates the
// addressed cell and replaces its head. Per the resolved reading of the
// reference implementation, first/last/nth all replace the HEAD of the
// located cell uniformly, never the tail.
func biSet(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) != 2 {
		return nil, arityErr("set expects exactly 2 arguments (place, value), got %d", len(items))
	}
	place, exprArg := items[0], items[1]

	val, err := ev.Eval(exprArg, scope)
	if err != nil {
		return nil, err
	}

	if value.IsSymbol(place) {
		if value.IsKeyword(place) {
			return nil, errors.New(errors.ReadOnly, lexer.Position{}, "cannot set keyword %s", place.Name)
		}
		if !scope.Set(place.Name, val) {
			return nil, errors.New(errors.UnboundSymbol, lexer.Position{}, "unbound symbol: %s", place.Name)
		}
		return val, nil
	}

	if value.IsPair(place) && value.IsSymbol(place.Head) {
		switch place.Head.Name {
		case "first":
			return setAccessor(place.Rest, val, scope, ev, firstCell, false)
		case "last":
			return setAccessor(place.Rest, val, scope, ev, lastCell, true)
		case "nth":
			return setNth(place.Rest, val, scope, ev)
		}
	}

	return nil, typeErr("set place must be a symbol or a first/last/nth call, got %s", place)
}

type cellLocator func(list *value.Expr) *value.Expr

func firstCell(list *value.Expr) *value.Expr {
	if value.IsEmptyList(list) {
		return nil
	}
	return list
}

func lastCell(list *value.Expr) *value.Expr {
	return lastPair(list)
}

// setAccessor handles (set (first xs) v) and (set (last xs) v): xs is
// evaluated, then the located cell's head (for lists) is replaced, or
// the addressed character is replaced (for strings, which requires xs
// to itself be a bare symbol so the rebuilt string can be written back
// through it).
func setAccessor(collExpr *value.Expr, val *value.Expr, scope value.Scope, ev value.Evaluator, locate cellLocator, isLast bool) (*value.Expr, *errors.SourceError) {
	items := value.Items(collExpr)
	if len(items) != 1 {
		return nil, arityErr("first/last place expects exactly 1 collection argument, got %d", len(items))
	}
	collArg := items[0]
	coll, err := ev.Eval(collArg, scope)
	if err != nil {
		return nil, err
	}

	switch {
	case value.IsList(coll):
		cell := locate(coll)
		if cell == nil {
			return nil, typeErr("cannot set element of an empty list")
		}
		cell.Head = val
		return val, nil
	case value.IsString(coll):
		return setStringChar(collArg, coll, val, scope, isLast, -1)
	default:
		return nil, typeErr("set first/last requires a list or string, got %s", coll)
	}
}

func setNth(restArgs *value.Expr, val *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(restArgs)
	if len(items) != 2 {
		return nil, arityErr("nth place expects exactly 2 arguments (index, collection), got %d", len(items))
	}
	idxVal, err := ev.Eval(items[0], scope)
	if err != nil {
		return nil, err
	}
	idx, ok := asInt(idxVal)
	if !ok {
		return nil, typeErr("nth index must be an integer, got %s", idxVal)
	}
	collArg := items[1]
	coll, err := ev.Eval(collArg, scope)
	if err != nil {
		return nil, err
	}

	switch {
	case value.IsList(coll):
		cell := nthPair(coll, int(idx))
		if cell == nil {
			return nil, typeErr("nth index %d out of range", idx)
		}
		cell.Head = val
		return val, nil
	case value.IsString(coll):
		return setStringChar(collArg, coll, val, scope, false, int(idx))
	default:
		return nil, typeErr("set nth requires a list or string, got %s", coll)
	}
}

// setStringChar rebuilds coll with a single character replaced and
// writes the new string back through collArg, which must be a bare
// symbol: strings have no addressable cell to mutate in place, so the
// place must name a rebindable location. A negative idx selects the
// first rune, or the final rune when isLast is set (used by first/last);
// a non-negative idx selects that rune directly (used by nth).
func setStringChar(collArg, coll, val *value.Expr, scope value.Scope, isLast bool, idx int) (*value.Expr, *errors.SourceError) {
	if !value.IsString(val) || len([]rune(val.Str)) != 1 {
		return nil, typeErr("set on a string place requires a single-character string value, got %s", val)
	}
	runes := []rune(coll.Str)
	pos := idx
	if pos < 0 {
		if isLast {
			pos = len(runes) - 1
		} else {
			pos = 0
		}
	}
	if pos < 0 || pos >= len(runes) {
		return nil, typeErr("set string index %d out of range", pos)
	}
	runes[pos] = []rune(val.Str)[0]
	newStr := value.Str(string(runes))

	sym, ok := asPlainSymbol(collArg)
	if !ok {
		return nil, typeErr("set on a string place requires the collection argument to be a symbol")
	}
	if !scope.Set(sym, newStr) {
		return nil, errors.New(errors.UnboundSymbol, lexer.Position{}, "unbound symbol: %s", sym)
	}
	return val, nil
}

func asPlainSymbol(e *value.Expr) (string, bool) {
	if value.IsSymbol(e) && !value.IsKeyword(e) {
		return e.Name, true
	}
	return "", false
}
