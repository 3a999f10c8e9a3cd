package errors

import (
	"strings"
	"testing"

	"github.com/basil-lang/basil/internal/lexer"
)

func TestSourceErrorFormat(t *testing.T) {
	src := "(+ 1 x)"
	pos := lexer.Position{File: "f.bl", Line: 1, Column: 6}
	err := New(UnboundSymbol, pos, "unbound symbol: %s", "x").WithSource(src)

	out := err.Format(false)
	if !strings.Contains(out, "UnboundSymbol") {
		t.Errorf("missing kind in output: %s", out)
	}
	if !strings.Contains(out, "unbound symbol: x") {
		t.Errorf("missing message in output: %s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret in output: %s", out)
	}
}

func TestSourceErrorImplementsError(t *testing.T) {
	var err error = New(TypeError, lexer.Position{Line: 1, Column: 1}, "bad type")
	if !strings.Contains(err.Error(), "TypeError") {
		t.Errorf("Error() = %q", err.Error())
	}
}
