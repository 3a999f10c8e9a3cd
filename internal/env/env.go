// Package env implements basil's lexical environment chain: each
// activation (let, function or macro call, for-each iteration) gets its own frame
// with a pointer to its defining parent, so closures capture the scope
// they were written in rather than the scope they are called from.
package env

import "github.com/basil-lang/basil/internal/value"

// Env is one frame of the lexical environment chain. It implements
// value.Scope so *Expr values (closures) can hold an Env without
// internal/value importing internal/env.
type Env struct {
	vars   map[string]*value.Expr
	parent *Env
}

// New creates a fresh top-level environment with no parent.
func New() *Env {
	return &Env{vars: make(map[string]*value.Expr)}
}

// NewChild creates a frame whose lookups fall back to parent.
func NewChild(parent *Env) *Env {
	return &Env{vars: make(map[string]*value.Expr), parent: parent}
}

// Lookup searches this frame and then each ancestor in turn.
func (e *Env) Lookup(name string) (*value.Expr, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Insert binds name in THIS frame, shadowing any outer binding of the
// same name. Used for parameter binding and defsym/defun/defmacro at
// top level.
func (e *Env) Insert(name string, val *value.Expr) {
	e.vars[name] = val
}

// Set rebinds an EXISTING binding, searching outward from this frame,
// and reports whether a binding was found. It never creates a new
// binding; callers that want defsym-style creation-or-update semantics
// use Insert directly at the frame they intend to define in.
func (e *Env) Set(name string, val *value.Expr) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = val
			return true
		}
	}
	return false
}
