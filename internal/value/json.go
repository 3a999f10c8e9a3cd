package value

// ToJSON converts e into a tree of maps/slices/scalars suitable for
// encoding/json.Marshal, backing the CLI's structured "parse --json"
// introspection output.
func (e *Expr) ToJSON() any {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case List:
		items := Items(e)
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = it.ToJSON()
		}
		return map[string]any{"kind": "list", "items": out}
	case Symbol:
		kind := "symbol"
		if e.Sub == SymbolKeyword {
			kind = "keyword"
		}
		return map[string]any{"kind": kind, "name": e.Name}
	case Literal:
		switch e.Sub {
		case LiteralInteger:
			return map[string]any{"kind": "integer", "value": e.Int}
		case LiteralFloat:
			return map[string]any{"kind": "float", "value": e.Flt}
		case LiteralString:
			return map[string]any{"kind": "string", "value": e.Str}
		case LiteralBoolean:
			return map[string]any{"kind": "boolean", "value": e.Bln}
		}
	case Function:
		return map[string]any{"kind": "function", "name": e.FnName}
	case Syntax:
		var tag string
		switch e.Sub {
		case SyntaxQuote:
			tag = "quote"
		case SyntaxBacktick:
			tag = "backtick"
		case SyntaxComma:
			tag = "comma"
		case SyntaxCommaAt:
			tag = "comma-at"
		}
		return map[string]any{"kind": tag, "inner": e.Head.ToJSON()}
	case ErrorKind:
		return map[string]any{"kind": "error", "message": e.Message}
	}
	return nil
}
