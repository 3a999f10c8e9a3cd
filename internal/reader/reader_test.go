package reader

import (
	"testing"

	"github.com/basil-lang/basil/internal/value"
)

func TestParseAtoms(t *testing.T) {
	r := New("(+ 1 2.5 \"hi\" :kw true)", "f.bl")
	expr, err := r.ParseNext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := value.Items(expr)
	if len(items) != 6 {
		t.Fatalf("got %d items, want 6: %v", len(items), expr)
	}
	if !value.IsSymbol(items[0]) || items[0].Name != "+" {
		t.Errorf("item 0 = %v", items[0])
	}
	if !value.IsInteger(items[1]) || items[1].Int != 1 {
		t.Errorf("item 1 = %v", items[1])
	}
	if !value.IsFloat(items[2]) || items[2].Flt != 2.5 {
		t.Errorf("item 2 = %v", items[2])
	}
	if !value.IsString(items[3]) || items[3].Str != "hi" {
		t.Errorf("item 3 = %v", items[3])
	}
	if !value.IsKeyword(items[4]) {
		t.Errorf("item 4 should be a keyword, got %v", items[4])
	}
}

func TestParseNestedList(t *testing.T) {
	r := New("(a (b c) d)", "f.bl")
	expr, err := r.ParseNext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := value.Items(expr)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	inner := value.Items(items[1])
	if len(inner) != 2 {
		t.Fatalf("inner list got %d items, want 2", len(inner))
	}
}

func TestParseAbbreviations(t *testing.T) {
	cases := []struct {
		src  string
		sub  value.Subkind
	}{
		{"'x", value.SyntaxQuote},
		{"`x", value.SyntaxBacktick},
		{",x", value.SyntaxComma},
		{",@x", value.SyntaxCommaAt},
	}
	for _, c := range cases {
		r := New(c.src, "f.bl")
		expr, err := r.ParseNext()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.src, err)
		}
		if expr.Kind != value.Syntax || expr.Sub != c.sub {
			t.Fatalf("%s: got kind=%v sub=%v", c.src, expr.Kind, expr.Sub)
		}
		if expr.Head.Name != "x" {
			t.Fatalf("%s: inner = %v", c.src, expr.Head)
		}
	}
}

func TestParseTopLevelMultipleForms(t *testing.T) {
	r := New("(a) (b) (c)", "f.bl")
	forms, err := r.ParseTopLevel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("got %d forms, want 3", len(forms))
	}
}

func TestUnmatchedOpenParen(t *testing.T) {
	r := New("(a b", "f.bl")
	if _, err := r.ParseNext(); err == nil {
		t.Fatal("expected unmatched ( error")
	}
}

func TestUnexpectedCloseParen(t *testing.T) {
	r := New(")", "f.bl")
	if _, err := r.ParseNext(); err == nil {
		t.Fatal("expected unexpected ) error")
	}
}

func TestAbbreviationAtEOF(t *testing.T) {
	r := New("'", "f.bl")
	if _, err := r.ParseNext(); err == nil {
		t.Fatal("expected abbreviation-at-EOF error")
	}
}

func TestEmptyList(t *testing.T) {
	r := New("()", "f.bl")
	expr, err := r.ParseNext()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.IsEmptyList(expr) {
		t.Fatalf("expected empty list, got %v", expr)
	}
}
