package builtin_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/basil-lang/basil/internal/builtin"
)

func TestPrintWritesEachArgumentAndReturnsLast(t *testing.T) {
	var buf bytes.Buffer
	old := builtin.Stdout
	builtin.Stdout = &buf
	defer func() { builtin.Stdout = old }()

	got := run(t, `(print 1 2 "three")`)
	if got != "three" {
		t.Fatalf("print should return its last argument, got %q", got)
	}
	want := "1\n2\nthree\n"
	if buf.String() != want {
		t.Fatalf("printed output = %q, want %q", buf.String(), want)
	}
}

func TestGetIntReadsOneLineAndDiscardsRest(t *testing.T) {
	oldIn := builtin.Stdin
	builtin.Stdin = bufio.NewReader(strings.NewReader("42\nignored\n"))
	defer func() { builtin.Stdin = oldIn }()

	got := run(t, "(get-int)")
	if got != "42" {
		t.Fatalf("got %q, want 42", got)
	}
}

func TestGetIntDiscardsTrailingTextOnTheSameLine(t *testing.T) {
	oldIn := builtin.Stdin
	builtin.Stdin = bufio.NewReader(strings.NewReader("42 foo\n"))
	defer func() { builtin.Stdin = oldIn }()

	got := run(t, "(get-int)")
	if got != "42" {
		t.Fatalf("got %q, want 42", got)
	}
}
