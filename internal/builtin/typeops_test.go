package builtin_test

import "testing"

func TestTypeOf(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(type-of 1)", "integer"},
		{"(type-of 1.0)", "float"},
		{`(type-of "s")`, "string"},
		{"(type-of true)", "boolean"},
		{"(type-of (list 1))", "list"},
		{"(type-of 'x)", "symbol"},
		{"(type= 1 2 3)", "true"},
		{`(type= 1 "s")`, "false"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestSymbolAndStringEquality(t *testing.T) {
	if got := run(t, "(symbol= 'a 'a 'a)"); got != "true" {
		t.Fatalf("symbol= = %q", got)
	}
	if got := run(t, "(symbol= 'a 'b)"); got != "false" {
		t.Fatalf("symbol= = %q", got)
	}
	if got := run(t, `(string= "x" "x")`); got != "true" {
		t.Fatalf("string= = %q", got)
	}
}
