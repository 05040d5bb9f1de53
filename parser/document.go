package parser

import (
	"github.com/Mnwa/css-minify/ast"
	"github.com/Mnwa/css-minify/lexer"
)

func newError(s *lexer.Scanner, msg string) *ParseError {
	return &ParseError{Line: s.LineAt(s.Pos()), Message: msg}
}

// parseEntity tries each entity production in the order spec.md §4.B lays
// out: @media, the semicolon-terminated at-rules, @keyframes, the
// braced-declaration-only at-rules, @supports, @page, and finally a plain
// selector block. A leading '@' that matches none of the recognized
// prefixes is reported directly rather than falling through to tryBlock,
// since no at-rule text can ever also be a selector.
func parseEntity(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	s.SkipTrivia()
	if e, err, ok := tryMedia(s); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := trySimpleAt(s); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := tryKeyframes(s); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := tryFontFaceLike(s); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := trySupports(s); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := tryPage(s); ok || err != nil {
		return e, err, ok
	}
	if s.Peek() == '@' {
		return nil, newError(s, "unrecognized at-rule"), false
	}
	if e, err, ok := tryBlock(s); ok || err != nil {
		return e, err, ok
	}
	return nil, nil, false
}

func tryBlock(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	save := s.Pos()
	selectors, ok := parseSelectorList(s)
	if !ok {
		s.SetPos(save)
		return nil, nil, false
	}
	s.SkipTrivia()
	if !s.ConsumeByte('{') {
		s.SetPos(save)
		return nil, nil, false
	}
	decls, err := parseDeclarations(s)
	if err != nil {
		return nil, err, false
	}
	s.SkipTrivia()
	if !s.ConsumeByte('}') {
		return nil, newError(s, "expected '}' to close block"), false
	}
	return ast.Block{Selectors: selectors, Declarations: decls}, nil, true
}

// parseEntities parses a run of entities. When stopAtBrace is true it stops
// at (without consuming) the next top-level '}', for use inside @media and
// @supports bodies; otherwise it runs to end of input. Any byte that
// matches neither an entity nor, when stopAtBrace, the closing '}' is a
// hard parse error: there is no silent "give up and stop" in this grammar,
// every byte in the source must be accounted for.
func parseEntities(s *lexer.Scanner, stopAtBrace bool) ([]ast.Entity, *ParseError) {
	var out []ast.Entity
	for {
		s.SkipTrivia()
		if s.Eof() {
			return out, nil
		}
		if stopAtBrace && s.Peek() == '}' {
			return out, nil
		}
		e, err, ok := parseEntity(s)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, newError(s, unexpectedTokenMessage(s))
		}
		out = append(out, e)
	}
}

func unexpectedTokenMessage(s *lexer.Scanner) string {
	switch s.Peek() {
	case '}':
		return "unexpected '}'"
	case 0:
		return "unexpected end of input"
	default:
		return "unexpected character '" + string(s.Peek()) + "'"
	}
}
