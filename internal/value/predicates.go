package value

// IsList reports whether e is any List cell (empty or non-empty).
func IsList(e *Expr) bool { return e != nil && e.Kind == List }

// IsEmptyList reports whether e is the empty list ().
func IsEmptyList(e *Expr) bool { return e != nil && e.Kind == List && e.Head == nil }

// IsPair reports whether e is a non-empty list cell.
func IsPair(e *Expr) bool { return e != nil && e.Kind == List && e.Head != nil }

// IsSymbol reports whether e is any symbol, keyword or plain.
func IsSymbol(e *Expr) bool { return e != nil && e.Kind == Symbol }

// IsKeyword reports whether e is a ':'-prefixed self-evaluating symbol.
func IsKeyword(e *Expr) bool { return e != nil && e.Kind == Symbol && e.Sub == SymbolKeyword }

// IsInteger reports whether e is an integer literal.
func IsInteger(e *Expr) bool { return e != nil && e.Kind == Literal && e.Sub == LiteralInteger }

// IsFloat reports whether e is a floating-point literal.
func IsFloat(e *Expr) bool { return e != nil && e.Kind == Literal && e.Sub == LiteralFloat }

// IsNumber reports whether e is an integer or float literal.
func IsNumber(e *Expr) bool { return IsInteger(e) || IsFloat(e) }

// IsString reports whether e is a string literal.
func IsString(e *Expr) bool { return e != nil && e.Kind == Literal && e.Sub == LiteralString }

// IsBool reports whether e is a boolean literal.
func IsBool(e *Expr) bool { return e != nil && e.Kind == Literal && e.Sub == LiteralBoolean }

// IsFunction reports whether e is callable: a builtin, macro, or user
// function.
func IsFunction(e *Expr) bool { return e != nil && e.Kind == Function }

// IsMacro reports whether e is a macro.
func IsMacro(e *Expr) bool { return e != nil && e.Kind == Function && e.Sub == FunctionMacro }

// IsError reports whether e is an ErrorKind sentinel.
func IsError(e *Expr) bool { return e != nil && e.Kind == ErrorKind }

// Truthy implements basil's truthiness: every value is true except the
// boolean literal false and the empty list ().
func Truthy(e *Expr) bool {
	if e == nil {
		return false
	}
	if IsBool(e) {
		return e.Bln
	}
	if IsEmptyList(e) {
		return false
	}
	return true
}

// Length returns the number of elements in a proper list, or -1 if e is
// not a list.
func Length(e *Expr) int {
	if !IsList(e) {
		return -1
	}
	n := 0
	for cur := e; IsPair(cur); cur = cur.Rest {
		n++
	}
	return n
}

// Items collects a proper list's elements into a slice, in order.
func Items(e *Expr) []*Expr {
	var out []*Expr
	for cur := e; IsPair(cur); cur = cur.Rest {
		out = append(out, cur.Head)
	}
	return out
}
