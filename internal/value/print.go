package value

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders e the way basil's printer and REPL do: lists as
// parenthesized, space-separated elements; symbols by name; integers by
// their decimal digits; floats with six digits after the point; strings
// verbatim with no surrounding quotes; booleans as true/false; functions
// as #'name; and reader abbreviations re-spelled with their original
// punctuation.
func (e *Expr) String() string {
	if e == nil {
		return "()"
	}
	switch e.Kind {
	case List:
		return printList(e)
	case Symbol:
		return e.Name
	case Literal:
		switch e.Sub {
		case LiteralInteger:
			return strconv.FormatInt(e.Int, 10)
		case LiteralFloat:
			return fmt.Sprintf("%f", e.Flt)
		case LiteralString:
			return e.Str
		case LiteralBoolean:
			if e.Bln {
				return "true"
			}
			return "false"
		}
	case Function:
		if e.FnName != "" {
			return "#'" + e.FnName
		}
		return "#'lambda"
	case Syntax:
		inner := e.Head.String()
		switch e.Sub {
		case SyntaxQuote:
			return "'" + inner
		case SyntaxBacktick:
			return "`" + inner
		case SyntaxComma:
			return "," + inner
		case SyntaxCommaAt:
			return ",@" + inner
		}
	case ErrorKind:
		return "#<error: " + e.Message + ">"
	}
	return "#<unknown>"
}

func printList(e *Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	first := true
	for cur := e; IsPair(cur); cur = cur.Rest {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(cur.Head.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
