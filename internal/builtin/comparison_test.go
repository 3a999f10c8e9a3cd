package builtin_test

import "testing"

func TestComparisonChaining(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(< 1 2 3)", "true"},
		{"(< 1 3 2)", "false"},
		{"(<= 1 1 2)", "true"},
		{"(> 3 2 1)", "true"},
		{"(>= 3 3 2)", "true"},
		{"(= 1 1 1)", "true"},
		{"(= 1 1 2)", "false"},
		{"(< 1 2.0 3)", "true"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestComparisonShortCircuitsAfterFailure(t *testing.T) {
	// The third argument is an unbound symbol; if the comparison did
	// not short-circuit after (< 3 1) fails, evaluating it would raise
	// an UnboundSymbol error instead of returning false.
	got := run(t, "(< 3 1 nonexistent)")
	if got != "false" {
		t.Fatalf("got %q, want false", got)
	}
}
