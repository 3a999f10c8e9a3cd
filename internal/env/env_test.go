package env

import (
	"testing"

	"github.com/basil-lang/basil/internal/value"
)

func TestInsertAndLookup(t *testing.T) {
	e := New()
	e.Insert("x", value.Int(1))
	v, ok := e.Lookup("x")
	if !ok || v.Int != 1 {
		t.Fatalf("Lookup(x) = %v, %v", v, ok)
	}
	if _, ok := e.Lookup("y"); ok {
		t.Fatal("expected y to be unbound")
	}
}

func TestChildSeesParent(t *testing.T) {
	parent := New()
	parent.Insert("x", value.Int(1))
	child := NewChild(parent)
	v, ok := child.Lookup("x")
	if !ok || v.Int != 1 {
		t.Fatalf("child should see parent binding, got %v, %v", v, ok)
	}
}

func TestChildShadowsParent(t *testing.T) {
	parent := New()
	parent.Insert("x", value.Int(1))
	child := NewChild(parent)
	child.Insert("x", value.Int(2))

	v, _ := child.Lookup("x")
	if v.Int != 2 {
		t.Fatalf("child binding should shadow parent, got %v", v.Int)
	}
	pv, _ := parent.Lookup("x")
	if pv.Int != 1 {
		t.Fatalf("parent binding should be unaffected, got %v", pv.Int)
	}
}

func TestSetFindsOuterBinding(t *testing.T) {
	parent := New()
	parent.Insert("x", value.Int(1))
	child := NewChild(parent)

	if !child.Set("x", value.Int(99)) {
		t.Fatal("Set should find x in parent frame")
	}
	pv, _ := parent.Lookup("x")
	if pv.Int != 99 {
		t.Fatalf("parent binding should be mutated through child Set, got %v", pv.Int)
	}
}

func TestSetUnboundReturnsFalse(t *testing.T) {
	e := New()
	if e.Set("nope", value.Int(1)) {
		t.Fatal("Set on unbound name should return false")
	}
}
