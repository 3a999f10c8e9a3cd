package builtin_test

import "testing"

func TestBitOps(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(& 6 3)", "2"},
		{"(| 4 1)", "5"},
		{"(^ 5 1)", "4"},
		{"(~ 0)", "-1"},
		{"(<< 1)", "2"},
		{"(<< 1 3)", "8"},
		{"(>> 8 2)", "2"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestTildeOverloadConcatenatesWhenNotASingleInteger(t *testing.T) {
	if got := run(t, `(~ "a" "b" 1)`); got != "ab1" {
		t.Fatalf(`(~ "a" "b" 1) = %q, want "ab1"`, got)
	}
}
