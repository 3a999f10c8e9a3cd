package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/value"
)

// Stdout and Stdin back the print/get-int primitives. Tests reassign
// them to capture output or supply canned input; production code
// leaves them at their os.Stdout/os.Stdin defaults.
var (
	Stdout io.Writer     = os.Stdout
	Stdin  *bufio.Reader = bufio.NewReader(os.Stdin)
)

func registerIO(e value.Scope) {
	def(e, "print", biPrint)
	def(e, "get-int", biGetInt)
}

func biPrint(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	evaluated, err := evalEach(args, scope, ev)
	if err != nil {
		return nil, err
	}
	var last *value.Expr = value.Nil()
	for _, v := range evaluated {
		fmt.Fprintln(Stdout, v.String())
		last = v
	}
	return last, nil
}

// biGetInt reads one leading integer from Stdin, discarding the rest of
// that line (e.g. "42 foo" yields 42, the trailing "foo" is dropped).
func biGetInt(args *value.Expr, scope value.Scope, ev value.Evaluator) (*value.Expr, *errors.SourceError) {
	line, readErr := Stdin.ReadString('\n')
	if readErr != nil && line == "" {
		return nil, errors.New(errors.TypeError, lexer.Position{}, "get-int: failed to read input: %v", readErr)
	}
	trimmed := strings.TrimLeft(line, " \t")

	i := 0
	if i < len(trimmed) && (trimmed[i] == '+' || trimmed[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return nil, errors.New(errors.TypeError, lexer.Position{}, "get-int: no integer found in input")
	}

	n, convErr := strconv.ParseInt(trimmed[:i], 10, 64)
	if convErr != nil {
		return nil, errors.New(errors.TypeError, lexer.Position{}, "get-int: %q is not an integer", trimmed[:i])
	}
	return value.Int(n), nil
}
