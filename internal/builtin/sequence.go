package builtin

import (
	"unicode/utf8"

	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/value"
)

func registerSequence(e value.Scope) {
	def(e, "list", biList)
	def(e, "first", biFirst)
	def(e, "last", biLast)
	def(e, "nth", biNth)
	def(e, "pop", biPop)
	def(e, "push", biPush)
	def(e, "append", biAppend)
	def(e, "length", biLength)
	def(e, "empty?", biEmpty)
	def(e, "reverse", biReverse)
}

func biList(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	return value.NewList(evaluated...), nil
}

// stringIndex returns the i-th rune of s as a single-character string.
func stringIndex(s string, i int) (string, bool) {
	runes := []rune(s)
	if i < 0 || i >= len(runes) {
		return "", false
	}
	return string(runes[i]), true
}

func biFirst(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 1 {
		return nil, arityErr("first expects exactly 1 argument, got %d", len(evaluated))
	}
	target := evaluated[0]
	switch {
	case value.IsList(target):
		if value.IsEmptyList(target) {
			return value.Nil(), nil
		}
		return target.Head, nil
	case value.IsString(target):
		ch, ok := stringIndex(target.Str, 0)
		if !ok {
			return value.Str(""), nil
		}
		return value.Str(ch), nil
	default:
		return nil, typeErr("first requires a list or string, got %s", target)
	}
}

func biLast(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 1 {
		return nil, arityErr("last expects exactly 1 argument, got %d", len(evaluated))
	}
	target := evaluated[0]
	switch {
	case value.IsList(target):
		cell := lastPair(target)
		if cell == nil {
			return value.Nil(), nil
		}
		return cell.Head, nil
	case value.IsString(target):
		runes := []rune(target.Str)
		if len(runes) == 0 {
			return value.Str(""), nil
		}
		return value.Str(string(runes[len(runes)-1])), nil
	default:
		return nil, typeErr("last requires a list or string, got %s", target)
	}
}

// lastPair returns the final non-empty cell of a list, or nil if the
// list is empty.
func lastPair(list *value.Expr) *value.Expr {
	var last *value.Expr
	for cur := list; value.IsPair(cur); cur = cur.Rest {
		last = cur
	}
	return last
}

func biNth(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 2 {
		return nil, arityErr("nth expects exactly 2 arguments, got %d", len(evaluated))
	}
	idx, ok := asInt(evaluated[0])
	if !ok {
		return nil, typeErr("nth index must be an integer, got %s", evaluated[0])
	}
	target := evaluated[1]
	switch {
	case value.IsList(target):
		cell := nthPair(target, int(idx))
		if cell == nil {
			return nil, typeErr("nth index %d out of range", idx)
		}
		return cell.Head, nil
	case value.IsString(target):
		ch, ok := stringIndex(target.Str, int(idx))
		if !ok {
			return nil, typeErr("nth index %d out of range", idx)
		}
		return value.Str(ch), nil
	default:
		return nil, typeErr("nth requires a list or string, got %s", target)
	}
}

// nthPair returns the i-th non-empty cell of list, or nil if i is out
// of range.
func nthPair(list *value.Expr, i int) *value.Expr {
	if i < 0 {
		return nil
	}
	cur := list
	for ; i > 0 && value.IsPair(cur); i-- {
		cur = cur.Rest
	}
	if !value.IsPair(cur) {
		return nil
	}
	return cur
}

func biPop(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 1 || !value.IsList(evaluated[0]) {
		return nil, typeErr("pop requires a single list argument")
	}
	if value.IsEmptyList(evaluated[0]) {
		return value.Nil(), nil
	}
	return evaluated[0].Rest, nil
}

func biPush(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 2 || !value.IsList(evaluated[1]) {
		return nil, typeErr("push requires (push x xs) with xs a list")
	}
	return value.Cons(evaluated[0], evaluated[1]), nil
}

// biAppend mutates the terminal empty cell of its second argument in
// place, the one deliberate aliasing exception in the ownership model.
func biAppend(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 2 || !value.IsList(evaluated[1]) {
		return nil, typeErr("append requires (append x xs) with xs a list")
	}
	x, xs := evaluated[0], evaluated[1]
	terminal := xs
	for value.IsPair(terminal) {
		terminal = terminal.Rest
	}
	terminal.Head = x
	terminal.Rest = value.Nil()
	return xs, nil
}

func biLength(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 1 {
		return nil, arityErr("length expects exactly 1 argument, got %d", len(evaluated))
	}
	switch {
	case value.IsList(evaluated[0]):
		return value.Int(int64(value.Length(evaluated[0]))), nil
	case value.IsString(evaluated[0]):
		return value.Int(int64(utf8.RuneCountInString(evaluated[0].Str))), nil
	default:
		return nil, typeErr("length requires a list or string, got %s", evaluated[0])
	}
}

func biEmpty(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 1 {
		return nil, arityErr("empty? expects exactly 1 argument, got %d", len(evaluated))
	}
	return value.Bool(value.IsEmptyList(evaluated[0])), nil
}

func biReverse(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	if len(evaluated) != 1 || !value.IsList(evaluated[0]) {
		return nil, typeErr("reverse requires a single list argument")
	}
	items := value.Items(evaluated[0])
	out := make([]*value.Expr, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return value.NewList(out...), nil
}
