package builtin_test

import "testing"

func TestSequencePrimitives(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(first (list 1 2 3))", "1"},
		{"(last (list 1 2 3))", "3"},
		{"(nth 1 (list 1 2 3))", "2"},
		{"(pop (list 1 2 3))", "(2 3)"},
		{"(push 0 (list 1 2))", "(0 1 2)"},
		{"(length (list 1 2 3))", "3"},
		{"(empty? (list))", "true"},
		{"(empty? (list 1))", "false"},
		{`(~ "a" "b" "c")`, "abc"},
		{"(reverse (list 1 2 3))", "(3 2 1)"},
		{`(first "hi")`, "h"},
		{`(last "hi")`, "i"},
		{`(nth 1 "hi")`, "i"},
		{`(length "hi")`, "2"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestAppendMutatesTerminalCell(t *testing.T) {
	got := run(t, `(progn (defsym xs (list 1 2)) (append 3 xs) xs)`)
	if got != "(1 2 3)" {
		t.Fatalf("append should mutate xs in place, got %q", got)
	}
}
