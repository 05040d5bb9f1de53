package parser

import (
	"strings"

	"github.com/Mnwa/css-minify/ast"
	"github.com/Mnwa/css-minify/lexer"
)

// parseDeclarations reads zero or more `name:value` pairs up to (but not
// consuming) the closing '}'. A trailing ';' before '}' is optional; an
// empty declaration (two ';' with nothing meaningful between them) is a
// hard parse error, since every consumed byte inside a block must belong
// to some declaration.
func parseDeclarations(s *lexer.Scanner) (*ast.Declarations, *ParseError) {
	decls := ast.NewDeclarations()
	for {
		s.SkipTrivia()
		if s.Peek() == '}' || s.Eof() {
			return decls, nil
		}
		name, value, err := parseOneDeclaration(s)
		if err != nil {
			return decls, err
		}
		decls.Set(name, value)
	}
}

func parseOneDeclaration(s *lexer.Scanner) (name, value string, err *ParseError) {
	rawName := s.IdentifierLike(":;}")
	name = strings.TrimSpace(rawName)
	if name == "" {
		return "", "", newError(s, "empty declaration")
	}
	if !s.ConsumeByte(':') {
		return "", "", newError(s, "expected ':' in declaration")
	}
	value = strings.TrimSpace(parseValueText(s))
	switch s.Peek() {
	case ';':
		s.Consume(1)
	case '}':
		// last declaration in the block, no trailing ';' required
	default:
		return "", "", newError(s, "expected ';' after declaration")
	}
	return name, value, nil
}
