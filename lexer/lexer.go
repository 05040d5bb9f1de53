// Package lexer provides the low-level scanning helpers the parser builds
// its productions on: trivia (whitespace/comment) skipping, balanced
// delimiter scanning, quoted-string recognition and stop-character
// tokenization.
package lexer

import "strings"

// Scanner is a cursor over a CSS source string. It never copies the
// source; every returned token is a slice of it.
type Scanner struct {
	src string
	pos int
}

// New returns a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the current byte offset into the source.
func (s *Scanner) Pos() int { return s.pos }

// SetPos rewinds or advances the scanner to an offset previously obtained
// from Pos. Used by the parser to backtrack a failed alternative.
func (s *Scanner) SetPos(pos int) { s.pos = pos }

// Source returns the full source string the scanner was built from.
func (s *Scanner) Source() string { return s.src }

// Eof reports whether the scanner has consumed the whole input.
func (s *Scanner) Eof() bool { return s.pos >= len(s.src) }

// Peek returns the byte at the current position, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.Eof() {
		return 0
	}
	return s.src[s.pos]
}

// PeekAt returns the byte offset bytes ahead of the current position, or 0
// if that is past EOF.
func (s *Scanner) PeekAt(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

// Remaining returns the unconsumed tail of the source.
func (s *Scanner) Remaining() string { return s.src[s.pos:] }

// Consume advances the scanner by n bytes.
func (s *Scanner) Consume(n int) { s.pos += n }

// ConsumeByte advances past one specific byte, reporting whether it matched.
func (s *Scanner) ConsumeByte(b byte) bool {
	if s.Peek() != b {
		return false
	}
	s.pos++
	return true
}

// ConsumeString advances past a literal prefix, case-sensitively.
func (s *Scanner) ConsumeString(lit string) bool {
	if !strings.HasPrefix(s.Remaining(), lit) {
		return false
	}
	s.pos += len(lit)
	return true
}

// SkipTrivia consumes any run of whitespace and block comments, which may
// legally appear between any two grammar tokens.
func (s *Scanner) SkipTrivia() {
	for {
		switch {
		case s.Eof():
			return
		case isSpace(s.Peek()):
			s.pos++
		case strings.HasPrefix(s.Remaining(), "/*"):
			if end := strings.Index(s.Remaining(), "*/"); end >= 0 {
				s.pos += end + len("*/")
			} else {
				// Unterminated comment: consume the rest of the input, the
				// caller's end-of-input check will surface the failure.
				s.pos = len(s.src)
			}
		default:
			return
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// QuotedString consumes a '"'- or '\''-delimited string, treating a
// backslash-escaped delimiter as not terminating the string. The returned
// text includes the surrounding quote characters verbatim. ok is false
// (position unchanged) if the current position is not a quote.
func (s *Scanner) QuotedString() (text string, ok bool) {
	start := s.pos
	quote := s.Peek()
	if quote != '"' && quote != '\'' {
		return "", false
	}
	i := s.pos + 1
	for i < len(s.src) {
		switch s.src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			i++
			s.pos = i
			return s.src[start:i], true
		}
		i++
	}
	// Unterminated string: consume to EOF and return what we have so the
	// caller's grammar-level checks can report the failure.
	s.pos = len(s.src)
	return s.src[start:], true
}

// Balanced consumes an open delimiter, then arbitrary content - including
// nested open/close pairs and quoted strings, in which delimiter
// characters are inert - through the matching close delimiter. Returns the
// full consumed text (including the delimiters) on success.
func (s *Scanner) Balanced(open, close byte) (text string, ok bool) {
	start := s.pos
	if !s.ConsumeByte(open) {
		return "", false
	}
	depth := 1
	for !s.Eof() {
		switch s.Peek() {
		case '"', '\'':
			if _, ok := s.QuotedString(); ok {
				continue
			}
			s.pos++
		case open:
			depth++
			s.pos++
		case close:
			depth--
			s.pos++
			if depth == 0 {
				return s.src[start:s.pos], true
			}
		default:
			s.pos++
		}
	}
	s.pos = start
	return "", false
}

// UntilBlockOpen scans up to the next '{' that is not inside a string or a
// balanced parenthesis group, without consuming the '{' itself.
func (s *Scanner) UntilBlockOpen() string {
	start := s.pos
	for !s.Eof() {
		switch s.Peek() {
		case '"', '\'':
			if _, ok := s.QuotedString(); ok {
				continue
			}
			s.pos++
		case '(':
			if _, ok := s.Balanced('(', ')'); ok {
				continue
			}
			s.pos++
		case '{':
			return s.src[start:s.pos]
		default:
			s.pos++
		}
	}
	return s.src[start:s.pos]
}

// IdentifierLike reads a maximal run not containing any byte in stopSet.
func (s *Scanner) IdentifierLike(stopSet string) string {
	start := s.pos
	for !s.Eof() && !strings.ContainsRune(stopSet, rune(s.Peek())) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// LineAt returns the one-based line number of the given byte offset within
// the scanner's source, computed as the count of '\n' bytes in the prefix
// up to offset, plus one.
func (s *Scanner) LineAt(offset int) int {
	if offset > len(s.src) {
		offset = len(s.src)
	}
	return strings.Count(s.src[:offset], "\n") + 1
}
