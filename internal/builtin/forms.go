package builtin

import (
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/params"
	"github.com/basil-lang/basil/internal/value"
)

// newChildScope creates a child frame of scope, which must concretely
// be an *env.Env: the only implementation of value.Scope in this
// module.
func newChildScope(scope value.Scope) *env.Env {
	parent, _ := scope.(*env.Env)
	return env.NewChild(parent)
}

func registerForms(e value.Scope) {
	def(e, "defsym", biDefsym)
	def(e, "set", biSet)
	def(e, "let", biLet)
	def(e, "if", biIf)
	def(e, "progn", biProgn)
	def(e, "while", biWhile)
	def(e, "for-each", biForEach)
	def(e, "defun", biDefun)
	def(e, "defmacro", biDefmacro)
	def(e, "quote", biQuote)
	def(e, "eval", biEvalForm)
	def(e, "return", biReturn)
}

// biDefsym evaluates its single expression in the current environment
// and inserts the result under name in the CURRENT frame.
func biDefsym(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) != 2 {
		return nil, arityErr("defsym expects exactly 2 arguments (name, value), got %d", len(items))
	}
	name := items[0]
	if !value.IsSymbol(name) {
		return nil, typeErr("defsym name must be a symbol, got %s", name)
	}
	if value.IsKeyword(name) {
		return nil, errors.New(errors.ReadOnly, lexer.Position{}, "cannot defsym keyword %s", name.Name)
	}
	val, err := ev.Eval(items[1], scope)
	if err != nil {
		return nil, err
	}
	scope.Insert(name.Name, val)
	return val, nil
}

// biLet implements ((n v) …) body…: a bare symbol, or a one-element
// list (n), binds to the empty list; bindings are evaluated left to
// right in the CHILD environment so later bindings see earlier ones.
func biLet(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) < 1 {
		return nil, arityErr("let requires a binding list")
	}
	bindings, body := items[0], items[1:]
	if !value.IsList(bindings) {
		return nil, typeErr("let binding list must be a list, got %s", bindings)
	}

	child := newChildScope(scope)
	for cur := bindings; value.IsPair(cur); cur = cur.Rest {
		name, valExpr, berr := parseLetBinding(cur.Head)
		if berr != nil {
			return nil, berr
		}
		var v *value.Expr
		if valExpr == nil {
			v = value.Nil()
		} else {
			var eerr *errors.SourceError
			v, eerr = ev.Eval(valExpr, child)
			if eerr != nil {
				return nil, eerr
			}
		}
		child.Insert(name, v)
	}

	return evalBody(body, child, ev)
}

func parseLetBinding(b *value.Expr) (name string, valExpr *value.Expr, err *errors.SourceError) {
	if value.IsSymbol(b) {
		return b.Name, nil, nil
	}
	if value.IsList(b) {
		items := value.Items(b)
		switch len(items) {
		case 1:
			if !value.IsSymbol(items[0]) {
				return "", nil, typeErr("let binding name must be a symbol, got %s", items[0])
			}
			return items[0].Name, nil, nil
		case 2:
			if !value.IsSymbol(items[0]) {
				return "", nil, typeErr("let binding name must be a symbol, got %s", items[0])
			}
			return items[0].Name, items[1], nil
		}
	}
	return "", nil, typeErr("malformed let binding %s", b)
}

func biIf(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) < 2 || len(items) > 3 {
		return nil, arityErr("if expects (if c then [else]), got %d forms", len(items))
	}
	cond, err := ev.Eval(items[0], scope)
	if err != nil {
		return nil, err
	}
	b, ok := asBool(cond)
	if !ok {
		return nil, typeErr("if condition must evaluate to a boolean, got %s", cond)
	}
	if b {
		return ev.Eval(items[1], scope)
	}
	if len(items) == 3 {
		return ev.Eval(items[2], scope)
	}
	return value.Nil(), nil
}

func biProgn(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	return evalBody(value.Items(args), scope, ev)
}

func biWhile(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) < 1 {
		return nil, arityErr("while requires a condition")
	}
	cond, body := items[0], items[1:]
	for {
		c, err := ev.Eval(cond, scope)
		if err != nil {
			return nil, err
		}
		b, ok := asBool(c)
		if !ok {
			return nil, typeErr("while condition must evaluate to a boolean, got %s", c)
		}
		if !b {
			return value.Nil(), nil
		}
		if _, err := evalBody(body, scope, ev); err != nil {
			return nil, err
		}
	}
}

// biForEach iterates over an evaluated list, rebinding sym in a fresh
// child environment for each element.
func biForEach(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) < 1 {
		return nil, arityErr("for-each requires a (symbol list) header")
	}
	header := value.Items(items[0])
	if len(header) != 2 || !value.IsSymbol(header[0]) {
		return nil, typeErr("for-each header must be (symbol list-expr), got %s", items[0])
	}
	sym, listExpr, body := header[0].Name, header[1], items[1:]

	list, err := ev.Eval(listExpr, scope)
	if err != nil {
		return nil, err
	}
	if !value.IsList(list) {
		return nil, typeErr("for-each requires a list, got %s", list)
	}

	for cur := list; value.IsPair(cur); cur = cur.Rest {
		child := newChildScope(scope)
		child.Insert(sym, cur.Head)
		if _, err := evalBody(body, child, ev); err != nil {
			return nil, err
		}
	}
	return value.Nil(), nil
}

func biDefun(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	return defineCallable(args, scope, value.UserFunc)
}

func biDefmacro(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	return defineCallable(args, scope, value.Macro)
}

func defineCallable(args *value.Expr, scope value.Scope, ctor func(name string, paramList, body *value.Expr, closure value.Scope) *value.Expr) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) < 2 {
		return nil, arityErr("definition requires (name params body…)")
	}
	name, paramList, body := items[0], items[1], items[2:]
	if !value.IsSymbol(name) {
		return nil, typeErr("definition name must be a symbol, got %s", name)
	}
	if _, perr := params.Parse(paramList); perr != nil {
		return nil, perr
	}
	fn := ctor(name.Name, paramList, value.NewList(body...), scope)
	scope.Insert(name.Name, fn)
	return fn, nil
}

func biQuote(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) != 1 {
		return nil, arityErr("quote expects exactly 1 argument, got %d", len(items))
	}
	return items[0], nil
}

// biEvalForm evaluates x twice, both times here (it receives x
// unevaluated like every builtin): once to obtain an expression value,
// and again to run it.
func biEvalForm(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	if len(items) != 1 {
		return nil, arityErr("eval expects exactly 1 argument, got %d", len(items))
	}
	expr, err := ev.Eval(items[0], scope)
	if err != nil {
		return nil, err
	}
	return ev.Eval(expr, scope)
}

func biReturn(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	items := value.Items(args)
	var v *value.Expr
	switch len(items) {
	case 0:
		v = value.Nil()
	case 1:
		var err *errors.SourceError
		v, err = ev.Eval(items[0], scope)
		if err != nil {
			return nil, err
		}
	default:
		return nil, arityErr("return expects at most 1 argument, got %d", len(items))
	}
	value.RaiseReturn(v)
	panic("unreachable")
}

func evalBody(forms []*value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	result := value.Nil()
	for _, f := range forms {
		v, err := ev.Eval(f, scope)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
