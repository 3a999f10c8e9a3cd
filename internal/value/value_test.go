package value

import "testing"

func TestConstructorsAndPredicates(t *testing.T) {
	lst := NewList(Int(1), Int(2), Int(3))
	if Length(lst) != 3 {
		t.Fatalf("Length = %d, want 3", Length(lst))
	}
	if !IsPair(lst) {
		t.Fatalf("expected non-empty list")
	}
	if Length(Nil()) != 0 {
		t.Fatalf("Length(Nil()) = %d, want 0", Length(Nil()))
	}
	if !IsEmptyList(Nil()) {
		t.Fatal("Nil() should be the empty list")
	}
}

func TestKeywordDetection(t *testing.T) {
	if !IsKeyword(Sym(":foo")) {
		t.Fatal(":foo should be a keyword")
	}
	if IsKeyword(Sym("foo")) {
		t.Fatal("foo should not be a keyword")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		e    *Expr
		want bool
	}{
		{Bool(false), false},
		{Bool(true), true},
		{Nil(), false},
		{Int(0), true},
		{Str(""), true},
	}
	for _, c := range cases {
		if got := Truthy(c.e); got != c.want {
			t.Errorf("Truthy(%s) = %v, want %v", c.e, got, c.want)
		}
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		e    *Expr
		want string
	}{
		{Nil(), "()"},
		{NewList(Sym("+"), Int(1), Int(2)), "(+ 1 2)"},
		{Float(6), "6.000000"},
		{Str("hi"), "hi"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Quote(Sym("x")), "'x"},
		{CommaAt(Sym("xs")), ",@xs"},
		{Builtin("car", nil), "#'car"},
	}
	for _, c := range cases {
		if got := c.e.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewList(Int(1), Sym("x"), Str("s"))
	b := NewList(Int(1), Sym("x"), Str("s"))
	if !Equal(a, b) {
		t.Fatal("expected structurally equal lists to be Equal")
	}
	c := NewList(Int(1), Sym("x"), Str("t"))
	if Equal(a, c) {
		t.Fatal("expected differing lists to not be Equal")
	}
	if !Equal(Nil(), Nil()) {
		t.Fatal("expected two empty lists to be Equal")
	}
}

func TestItems(t *testing.T) {
	items := Items(NewList(Int(1), Int(2), Int(3)))
	if len(items) != 3 || items[0].Int != 1 || items[2].Int != 3 {
		t.Fatalf("Items = %v", items)
	}
}
