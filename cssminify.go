// Package cssminify is the top-level facade wiring lexing, parsing, the
// transform pipeline, and printing into a single Minify call.
package cssminify

import (
	"io"

	"go.uber.org/zap"

	"github.com/Mnwa/css-minify/ast"
	"github.com/Mnwa/css-minify/parser"
	"github.com/Mnwa/css-minify/transform"
)

// Level selects how aggressively Minify rewrites a document. It is an
// alias for transform.Level so callers never need to import the transform
// package directly.
type Level = transform.Level

const (
	LevelZero  = transform.LevelZero
	LevelOne   = transform.LevelOne
	LevelTwo   = transform.LevelTwo
	LevelThree = transform.LevelThree
)

// ParseError is returned when source fails to parse; an unrecognized
// top-level construct is a hard error rather than being silently dropped.
type ParseError = parser.ParseError

// Engine wraps a parser with a shared logger, letting repeated Minify
// calls reuse one *zap.Logger the way Parser does in package parser.
type Engine struct {
	parser *parser.Parser
}

// NewEngine builds an Engine. A nil logger disables logging.
func NewEngine(log *zap.Logger) *Engine {
	return &Engine{parser: parser.NewParser(log)}
}

// Minify parses source, runs the level-gated transform pipeline over it,
// and serializes the result.
func (e *Engine) Minify(source string, level Level) (string, error) {
	doc, err := e.parser.Parse(source)
	if err != nil {
		return "", err
	}
	out := transform.Run(*doc, level)
	return out.String(), nil
}

// MinifyTo is Minify, writing the result to w instead of returning a
// string.
func (e *Engine) MinifyTo(w io.Writer, source string, level Level) error {
	doc, err := e.parser.Parse(source)
	if err != nil {
		return err
	}
	out := transform.Run(*doc, level)
	_, err = out.WriteTo(w)
	return err
}

// Minify is Engine.Minify on a logger-less, one-shot Engine, for callers
// with no logging needs.
func Minify(source string, level Level) (string, error) {
	return NewEngine(nil).Minify(source, level)
}

// Parse exposes the parser directly, for callers that want the AST rather
// than the rewritten, printed text.
func Parse(source string) (*ast.Document, error) {
	doc, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
