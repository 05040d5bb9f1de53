// Package parser turns CSS source text into an *ast.Document with a
// hand-written, backtracking recursive-descent parser. It deliberately
// does not delegate tokenization or grammar to a general-purpose CSS
// parsing library: the minifier's transforms depend on exact control over
// what gets captured verbatim (pseudo-class trailers, at-rule conditions,
// declaration value text), which a general CSS token stream would
// normalize away.
package parser

import (
	"github.com/Mnwa/css-minify/ast"
	"github.com/Mnwa/css-minify/lexer"
	"go.uber.org/zap"
)

// Parser parses CSS source text into a Document.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a Parser. A nil logger is replaced with a no-op one.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses data into a Document, or returns a ParseError describing
// the first point parsing could not continue. The optional source names
// the input and is used only for debug logging.
func (p *Parser) Parse(data string, source ...string) (*ast.Document, *ParseError) {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}
	s := lexer.New(data)
	entities, err := parseEntities(s, false)
	if err != nil {
		p.log.Debug("CSS parse error", zap.Int("line", err.Line), zap.String("message", err.Message))
		return nil, err
	}
	doc := &ast.Document{Entities: entities}
	p.log.Debug("parsed CSS", zap.Int("entities", len(entities)))
	return doc, nil
}

// Parse is a convenience wrapper around a default Parser with a no-op
// logger, for callers that don't need parse-time diagnostics.
func Parse(data string) (*ast.Document, *ParseError) {
	return NewParser(nil).Parse(data)
}
