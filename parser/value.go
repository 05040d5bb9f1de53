package parser

import (
	"strings"
	"unicode"

	"github.com/Mnwa/css-minify/lexer"
)

// parseValueText scans a declaration value: any run not containing a
// top-level ';' or '}', with quoted strings and balanced parenthesis
// groups treated as opaque so that a ';' inside `content:";"` or
// `url(a;b)` never terminates the value early. Outside strings a
// backslash does not escape a following ';' or '}'.
func parseValueText(s *lexer.Scanner) string {
	start := s.Pos()
	for !s.Eof() {
		switch s.Peek() {
		case '"', '\'':
			if _, ok := s.QuotedString(); ok {
				continue
			}
			s.Consume(1)
		case '(':
			if _, ok := s.Balanced('(', ')'); ok {
				continue
			}
			s.Consume(1)
		case ';', '}':
			return s.Source()[start:s.Pos()]
		default:
			s.Consume(1)
		}
	}
	return s.Source()[start:s.Pos()]
}

// indexOfWhitespace returns the byte index of the first whitespace rune in
// s, or -1 if s contains none.
func indexOfWhitespace(s string) int {
	return strings.IndexFunc(s, unicode.IsSpace)
}
