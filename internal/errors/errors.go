// Package errors formats basil's evaluator diagnostics with source
// context, mirroring the position-aware diagnostics a scripting-language
// host expects: a line/column header plus a caret pointing at the
// offending token.
package errors

import (
	"fmt"
	"strings"

	"github.com/basil-lang/basil/internal/lexer"
)

// Kind classifies a SourceError, matching the error kinds of the
// language's error handling design one-to-one.
type Kind string

const (
	LexError              Kind = "LexError"
	ParseError            Kind = "ParseError"
	UnboundSymbol         Kind = "UnboundSymbol"
	NotCallable           Kind = "NotCallable"
	TypeError             Kind = "TypeError"
	ArityMismatch         Kind = "ArityMismatch"
	BadParamList          Kind = "BadParamList"
	IllegalSyntaxPosition Kind = "IllegalSyntaxPosition"
	ReadOnly              Kind = "ReadOnly"
)

// SourceError is a single evaluator or reader error with position and
// (optionally) source-line context for display.
type SourceError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	Source  string
}

// New creates a SourceError of the given kind at pos, formatting Message
// with fmt.Sprintf(format, args...).
func New(kind Kind, pos lexer.Position, format string, args ...any) *SourceError {
	return &SourceError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// WithSource attaches the full source text so Format can render a
// caret-pointing excerpt.
func (e *SourceError) WithSource(source string) *SourceError {
	e.Source = source
	return e
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// Format renders the error with a source excerpt and a caret under the
// offending column. If color is true, the caret and message are
// highlighted with ANSI codes; callers that already depend on
// github.com/fatih/color (the CLI) should prefer coloring the returned
// plain string themselves instead of passing color=true twice.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s\n", e.Pos, e.Kind)

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *SourceError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
