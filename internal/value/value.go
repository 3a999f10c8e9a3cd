// Package value defines Expression, the single tagged value type shared
// between the reader, the evaluator, and the primitive library: every
// piece of basil syntax and every runtime result is an *Expr.
package value

import "github.com/basil-lang/basil/internal/errors"

// Kind is the primary tag of an Expr.
type Kind uint8

const (
	List Kind = iota
	Symbol
	Literal
	Function
	Syntax
	ErrorKind
)

// Subkind refines Kind; SubNone is used where Kind alone is enough
// (List has no subkind).
type Subkind uint8

const (
	SubNone Subkind = iota

	SymbolPlain
	SymbolKeyword

	LiteralInteger
	LiteralFloat
	LiteralString
	LiteralBoolean

	FunctionBuiltin
	FunctionMacro
	FunctionUser

	SyntaxQuote
	SyntaxBacktick
	SyntaxComma
	SyntaxCommaAt
)

// Scope is the minimal environment interface an Expr needs to remember
// for lexical closures, without internal/value importing internal/env
// (which itself stores *Expr and would otherwise create an import
// cycle). internal/env.Env is the only implementation.
type Scope interface {
	Lookup(name string) (*Expr, bool)
	Insert(name string, val *Expr)
	Set(name string, val *Expr) bool
}

// Evaluator is the minimal callback surface a NativeFunc needs to
// recursively evaluate sub-expressions, again to avoid internal/value
// importing internal/eval.
type Evaluator interface {
	Eval(expr *Expr, env Scope) (*Expr, *errors.SourceError)
}

// NativeFunc is the signature of a built-in special form or primitive.
// It receives the UNEVALUATED tail of the call list; primitives that
// want evaluated arguments call ev.Eval themselves (mirroring how the
// evaluator's call dispatch hands builtins the raw argument list and
// lets each one decide what to evaluate).
type NativeFunc func(args *Expr, env Scope, ev Evaluator) (*Expr, *errors.SourceError)

// Expr is the uniform tagged value exchanged between reader, evaluator,
// and primitives.
type Expr struct {
	Kind    Kind
	Sub     Subkind

	// List: Head is the car (nil marks the empty list), Rest is the cdr
	// (always a non-nil List cell, itself possibly the empty list).
	Head *Expr
	Rest *Expr

	// Symbol: Name holds the symbol text (including a leading ':' for
	// keywords).
	Name string

	// Literal payloads.
	Int int64
	Flt float64
	Str string
	Bln bool

	// Function: Params/Body hold the unevaluated parameter list and
	// body for macro/user functions; Closure is the environment
	// captured at definition time (nil for builtins). Native holds the
	// Go implementation for FunctionBuiltin.
	Params  *Expr
	Body    *Expr
	Closure Scope
	Native  NativeFunc
	FnName  string // display name, used by #'name printing

	// ErrorKind: Message is the evaluator-supplied description of the
	// failure that produced this sentinel.
	Message string
}
