// Package reader converts a lexer.Lexer's token stream into basil
// expression trees, desugaring the four reader abbreviations into
// Syntax nodes.
package reader

import (
	"strconv"

	"github.com/basil-lang/basil/internal/errors"
	"github.com/basil-lang/basil/internal/lexer"
	"github.com/basil-lang/basil/internal/value"
)

// Reader wraps a Lexer and produces Expressions.
type Reader struct {
	lex *lexer.Lexer
	src string
}

// New creates a Reader over src, tagging diagnostics with file.
func New(src, file string) *Reader {
	return &Reader{lex: lexer.New(src, file), src: src}
}

// ParseTopLevel reads every top-level form until EOF and returns them
// as a slice, in source order.
func (r *Reader) ParseTopLevel() ([]*value.Expr, error) {
	var forms []*value.Expr
	for {
		tok, err := r.lex.Peek()
		if err != nil {
			return nil, r.wrap(err)
		}
		if tok.Kind == lexer.EOF {
			return forms, nil
		}
		expr, err := r.ParseNext()
		if err != nil {
			return nil, err
		}
		forms = append(forms, expr)
	}
}

// ParseNext reads a single Expression.
func (r *Reader) ParseNext() (*value.Expr, error) {
	tok, err := r.lex.Next()
	if err != nil {
		return nil, r.wrap(err)
	}
	return r.parseForm(tok)
}

func (r *Reader) parseForm(tok lexer.Token) (*value.Expr, error) {
	switch tok.Kind {
	case lexer.LParen:
		return r.parseList(tok.Pos)
	case lexer.RParen:
		return nil, r.fail(errors.ParseError, tok.Pos, "unexpected )")
	case lexer.Identifier:
		return value.Sym(tok.Literal), nil
	case lexer.Integer:
		n, convErr := strconv.ParseInt(tok.Literal, 10, 64)
		if convErr != nil {
			return nil, r.fail(errors.ParseError, tok.Pos, "malformed integer literal %q", tok.Literal)
		}
		return value.Int(n), nil
	case lexer.Float:
		f, convErr := strconv.ParseFloat(tok.Literal, 64)
		if convErr != nil {
			return nil, r.fail(errors.ParseError, tok.Pos, "malformed float literal %q", tok.Literal)
		}
		return value.Float(f), nil
	case lexer.String:
		return value.Str(tok.Literal), nil
	case lexer.Quote:
		return r.parseAbbrev(tok, value.Quote)
	case lexer.Backtick:
		return r.parseAbbrev(tok, value.Backtick)
	case lexer.Comma:
		return r.parseAbbrev(tok, value.Comma)
	case lexer.CommaAt:
		return r.parseAbbrev(tok, value.CommaAt)
	case lexer.EOF:
		return nil, r.fail(errors.ParseError, tok.Pos, "unexpected end of input")
	default:
		return nil, r.fail(errors.ParseError, tok.Pos, "unrecognized token %q", tok.Literal)
	}
}

func (r *Reader) parseAbbrev(tok lexer.Token, wrap func(*value.Expr) *value.Expr) (*value.Expr, error) {
	next, err := r.lex.Next()
	if err != nil {
		return nil, r.wrap(err)
	}
	if next.Kind == lexer.EOF {
		return nil, r.fail(errors.ParseError, tok.Pos, "abbreviation %q with no following form", tok.Literal)
	}
	inner, err := r.parseForm(next)
	if err != nil {
		return nil, err
	}
	return wrap(inner), nil
}

func (r *Reader) parseList(open lexer.Position) (*value.Expr, error) {
	var items []*value.Expr
	for {
		tok, err := r.lex.Next()
		if err != nil {
			return nil, r.wrap(err)
		}
		switch tok.Kind {
		case lexer.RParen:
			return value.NewList(items...), nil
		case lexer.EOF:
			return nil, r.fail(errors.ParseError, open, "unmatched (")
		default:
			item, err := r.parseForm(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}

func (r *Reader) fail(kind errors.Kind, pos lexer.Position, format string, args ...any) error {
	return errors.New(kind, pos, format, args...).WithSource(r.src)
}

func (r *Reader) wrap(err error) error {
	if lexErr, ok := err.(*lexer.Error); ok {
		return errors.New(errors.LexError, lexErr.Pos, "%s", lexErr.Message).WithSource(r.src)
	}
	return err
}
