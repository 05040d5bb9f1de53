package parser

import (
	"strings"

	"github.com/Mnwa/css-minify/ast"
	"github.com/Mnwa/css-minify/lexer"
)

// Each tryX function follows the same three-way contract used throughout
// this package: (entity, nil, true) on success, (nil, nil, false) when the
// prefix it looks for is simply absent, or, for the braced at-rules, when
// no '{' follows it (position restored, caller tries the next
// alternative), and (nil, err, false) once the prefix (and, for braced
// at-rules, the '{') has matched and something required after it is
// missing - at that point the parser is committed and the failure must
// propagate, not backtrack.

func tryMedia(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	save := s.Pos()
	if !s.ConsumeString("@media") {
		return nil, nil, false
	}
	s.SkipTrivia()
	condition := strings.TrimSpace(s.UntilBlockOpen())
	if !s.ConsumeByte('{') {
		s.SetPos(save)
		return nil, nil, false
	}
	entities, err := parseEntities(s, true)
	if err != nil {
		return nil, err, false
	}
	s.SkipTrivia()
	if !s.ConsumeByte('}') {
		return nil, newError(s, "expected '}' to close @media"), false
	}
	return &ast.Media{Condition: condition, Entities: ast.Document{Entities: entities}}, nil, true
}

func trySupports(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	save := s.Pos()
	if !s.ConsumeString("@supports") {
		return nil, nil, false
	}
	s.SkipTrivia()
	condition := strings.TrimSpace(s.UntilBlockOpen())
	if !s.ConsumeByte('{') {
		s.SetPos(save)
		return nil, nil, false
	}
	entities, err := parseEntities(s, true)
	if err != nil {
		return nil, err, false
	}
	s.SkipTrivia()
	if !s.ConsumeByte('}') {
		return nil, newError(s, "expected '}' to close @supports"), false
	}
	return &ast.Supports{Condition: condition, Entities: ast.Document{Entities: entities}}, nil, true
}

func tryPage(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	save := s.Pos()
	if !s.ConsumeString("@page") {
		return nil, nil, false
	}
	s.SkipTrivia()
	selector := strings.TrimSpace(s.UntilBlockOpen())
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
		return nil, newError(s, "expected '}' to close @page"), false
	}
	return ast.Page{Selector: selector, HasSelector: selector != "", Declarations: decls}, nil, true
}

// trySimpleBracedDecls matches the shared shape of @font-face, @viewport
// and @-ms-viewport: a literal prefix directly followed by a braced
// declaration block, with no condition or selector in between.
func trySimpleBracedDecls(s *lexer.Scanner, prefix string, build func(*ast.Declarations) ast.Entity) (ast.Entity, *ParseError, bool) {
	save := s.Pos()
	if !s.ConsumeString(prefix) {
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
		return nil, newError(s, "expected '}' to close "+prefix), false
	}
	return build(decls), nil, true
}

func tryFontFaceLike(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	if e, err, ok := trySimpleBracedDecls(s, "@font-face", func(d *ast.Declarations) ast.Entity {
		return ast.FontFace{Declarations: d}
	}); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := trySimpleBracedDecls(s, "@-ms-viewport", func(d *ast.Declarations) ast.Entity {
		return ast.MsViewport{Declarations: d}
	}); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := trySimpleBracedDecls(s, "@viewport", func(d *ast.Declarations) ast.Entity {
		return ast.Viewport{Declarations: d}
	}); ok || err != nil {
		return e, err, ok
	}
	return nil, nil, false
}

func tryKeyframes(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	save := s.Pos()
	vendorPrefixed := false
	switch {
	case s.ConsumeString("@-webkit-keyframes"):
		vendorPrefixed = true
	case s.ConsumeString("@keyframes"):
	default:
		return nil, nil, false
	}
	s.SkipTrivia()
	name := strings.TrimSpace(s.UntilBlockOpen())
	if !s.ConsumeByte('{') {
		s.SetPos(save)
		return nil, nil, false
	}
	var frames []ast.KeyframeBlock
	for {
		s.SkipTrivia()
		if s.Peek() == '}' || s.Eof() {
			break
		}
		stop := strings.TrimSpace(s.UntilBlockOpen())
		if stop == "" {
			return nil, newError(s, "expected keyframe selector"), false
		}
		if !s.ConsumeByte('{') {
			return nil, newError(s, "expected '{' after keyframe selector"), false
		}
		decls, err := parseDeclarations(s)
		if err != nil {
			return nil, err, false
		}
		s.SkipTrivia()
		if !s.ConsumeByte('}') {
			return nil, newError(s, "expected '}' to close keyframe block"), false
		}
		frames = append(frames, ast.KeyframeBlock{Stop: stop, Declarations: decls})
	}
	if !s.ConsumeByte('}') {
		return nil, newError(s, "expected '}' to close @keyframes"), false
	}
	return ast.Keyframes{VendorPrefixed: vendorPrefixed, Name: name, Frames: frames}, nil, true
}

func trySimpleAt(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	if e, err, ok := tryCharset(s); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := tryNamespace(s); ok || err != nil {
		return e, err, ok
	}
	if e, err, ok := tryImport(s); ok || err != nil {
		return e, err, ok
	}
	return nil, nil, false
}

func tryCharset(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	if !s.ConsumeString("@charset") {
		return nil, nil, false
	}
	s.SkipTrivia()
	value := strings.TrimSpace(s.IdentifierLike(";"))
	if !s.ConsumeByte(';') {
		return nil, newError(s, "expected ';' after @charset"), false
	}
	return ast.Charset{Value: value}, nil, true
}

// tryNamespace reproduces the original grammar's naive tokenization: the
// body is split on its first whitespace run. If a first token exists and
// whitespace follows it, that token is the namespace prefix and everything
// after is the URL; otherwise the whole body is the URL with no prefix.
func tryNamespace(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	if !s.ConsumeString("@namespace") {
		return nil, nil, false
	}
	s.SkipTrivia()
	body := strings.TrimSpace(s.IdentifierLike(";"))
	if !s.ConsumeByte(';') {
		return nil, newError(s, "expected ';' after @namespace"), false
	}
	if idx := indexOfWhitespace(body); idx >= 0 {
		prefix := body[:idx]
		url := strings.TrimSpace(body[idx:])
		return ast.Namespace{Prefix: prefix, HasPrefix: true, URL: url}, nil, true
	}
	return ast.Namespace{URL: body}, nil, true
}

// tryImport mirrors tryNamespace's naive split: the first whitespace-
// delimited token is the URL, and anything after it is the media query
// list verbatim.
func tryImport(s *lexer.Scanner) (ast.Entity, *ParseError, bool) {
	if !s.ConsumeString("@import") {
		return nil, nil, false
	}
	s.SkipTrivia()
	body := strings.TrimSpace(s.IdentifierLike(";"))
	if !s.ConsumeByte(';') {
		return nil, newError(s, "expected ';' after @import"), false
	}
	if idx := indexOfWhitespace(body); idx >= 0 {
		url := body[:idx]
		media := strings.TrimSpace(body[idx:])
		if media != "" {
			return ast.Import{URL: url, MediaList: media, HasMedia: true}, nil, true
		}
		return ast.Import{URL: url}, nil, true
	}
	return ast.Import{URL: body}, nil, true
}
