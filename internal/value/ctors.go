package value

import "strings"

// Nil is the canonical empty list (). List cells always terminate in a
// distinct empty-list node; Nil is a fresh one for callers that just
// need "the" empty list rather than a specific cons cell.
func Nil() *Expr {
	return &Expr{Kind: List}
}

// Cons builds a single list cell with the given head and rest.
func Cons(head, rest *Expr) *Expr {
	return &Expr{Kind: List, Head: head, Rest: rest}
}

// NewList builds a proper list from items, in order.
func NewList(items ...*Expr) *Expr {
	result := Nil()
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result)
	}
	return result
}

// Sym builds a symbol, tagging it as a keyword if name begins with ':'.
func Sym(name string) *Expr {
	sub := SymbolPlain
	if strings.HasPrefix(name, ":") {
		sub = SymbolKeyword
	}
	return &Expr{Kind: Symbol, Sub: sub, Name: name}
}

// Int builds an integer literal.
func Int(n int64) *Expr {
	return &Expr{Kind: Literal, Sub: LiteralInteger, Int: n}
}

// Float builds a floating-point literal.
func Float(f float64) *Expr {
	return &Expr{Kind: Literal, Sub: LiteralFloat, Flt: f}
}

// Str builds a string literal.
func Str(s string) *Expr {
	return &Expr{Kind: Literal, Sub: LiteralString, Str: s}
}

// Bool builds a boolean literal.
func Bool(b bool) *Expr {
	return &Expr{Kind: Literal, Sub: LiteralBoolean, Bln: b}
}

// wrap builds a reader-abbreviation node: a Syntax node whose Head is
// the single expression it prefixed (quote/backtick/comma/
// comma-at), mirroring how the reader expands 'x, `x, ,x and ,@x.
func wrap(sub Subkind, inner *Expr) *Expr {
	return &Expr{Kind: Syntax, Sub: sub, Head: inner}
}

// Quote builds a 'x reader node.
func Quote(inner *Expr) *Expr { return wrap(SyntaxQuote, inner) }

// Backtick builds a `x reader node.
func Backtick(inner *Expr) *Expr { return wrap(SyntaxBacktick, inner) }

// Comma builds a ,x reader node.
func Comma(inner *Expr) *Expr { return wrap(SyntaxComma, inner) }

// CommaAt builds a ,@x reader node.
func CommaAt(inner *Expr) *Expr { return wrap(SyntaxCommaAt, inner) }

// Builtin wraps a Go function as a basil special form or primitive.
func Builtin(name string, fn NativeFunc) *Expr {
	return &Expr{Kind: Function, Sub: FunctionBuiltin, FnName: name, Native: fn}
}

// UserFunc builds a closure captured by defun: params and body
// are the unevaluated defun forms, closure is the defining environment.
func UserFunc(name string, params, body *Expr, closure Scope) *Expr {
	return &Expr{Kind: Function, Sub: FunctionUser, FnName: name, Params: params, Body: body, Closure: closure}
}

// Macro builds a macro captured by defmacro: its arguments are bound
// unevaluated at expansion time.
func Macro(name string, params, body *Expr, closure Scope) *Expr {
	return &Expr{Kind: Function, Sub: FunctionMacro, FnName: name, Params: params, Body: body, Closure: closure}
}

// Err builds an ErrorKind sentinel value carrying a diagnostic message.
func Err(message string) *Expr {
	return &Expr{Kind: ErrorKind, Message: message}
}
