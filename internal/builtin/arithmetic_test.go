package builtin_test

import "testing"

func TestArithmeticPromotion(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(+ 1 2 3)", "6"},
		{"(+ 1 2.0 3)", "6.000000"},
		{"(+ )", "0"},
		{"(* 2 3 4)", "24"},
		{"(* )", "1"},
		{"(* 2 2.5)", "5.000000"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestArithmeticTypeError(t *testing.T) {
	if err := runErr(t, `(+ 1 "x")`); err == nil {
		t.Fatal("expected a type error adding a string")
	}
}
