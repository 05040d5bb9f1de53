package lexer_test

import (
	"testing"

	"github.com/Mnwa/css-minify/lexer"
)

func TestSkipTrivia(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"   abc", "abc"},
		{"/* comment */abc", "abc"},
		{"  /* c1 */ /* c2 */  abc", "abc"},
		{"abc", "abc"},
	}
	for _, c := range cases {
		s := lexer.New(c.in)
		s.SkipTrivia()
		if got := s.Remaining(); got != c.want {
			t.Errorf("SkipTrivia(%q) left %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBalancedParens(t *testing.T) {
	s := lexer.New(`(1px solid "a)b" (nested)) rest`)
	text, ok := s.Balanced('(', ')')
	if !ok {
		t.Fatalf("expected balanced parse to succeed")
	}
	if want := `(1px solid "a)b" (nested))`; text != want {
		t.Errorf("got %q, want %q", text, want)
	}
	if s.Remaining() != " rest" {
		t.Errorf("remaining = %q", s.Remaining())
	}
}

func TestBalancedUnterminated(t *testing.T) {
	s := lexer.New(`(unterminated`)
	if _, ok := s.Balanced('(', ')'); ok {
		t.Fatalf("expected unterminated group to fail")
	}
	if s.Pos() != 0 {
		t.Errorf("scanner should not advance on failure, pos=%d", s.Pos())
	}
}

func TestQuotedString(t *testing.T) {
	s := lexer.New(`"a\"b"tail`)
	text, ok := s.QuotedString()
	if !ok {
		t.Fatalf("expected quoted string to parse")
	}
	if want := `"a\"b"`; text != want {
		t.Errorf("got %q, want %q", text, want)
	}
	if s.Remaining() != "tail" {
		t.Errorf("remaining = %q", s.Remaining())
	}
}

func TestUntilBlockOpen(t *testing.T) {
	s := lexer.New(`only screen and (max-width: 992px) {body}`)
	cond := s.UntilBlockOpen()
	if want := `only screen and (max-width: 992px) `; cond != want {
		t.Errorf("got %q, want %q", cond, want)
	}
	if s.Peek() != '{' {
		t.Errorf("expected to stop at '{', got %q", string(s.Peek()))
	}
}

func TestUntilBlockOpenIgnoresBraceInString(t *testing.T) {
	s := lexer.New(`"{"{real}`)
	cond := s.UntilBlockOpen()
	if want := `"{"`; cond != want {
		t.Errorf("got %q, want %q", cond, want)
	}
}

func TestIdentifierLike(t *testing.T) {
	s := lexer.New(`color:red;`)
	id := s.IdentifierLike(":;")
	if id != "color" {
		t.Errorf("got %q, want %q", id, "color")
	}
	if s.Peek() != ':' {
		t.Errorf("expected to stop at ':'")
	}
}

func TestLineAt(t *testing.T) {
	s := lexer.New("a\nb\nc")
	if got := s.LineAt(0); got != 1 {
		t.Errorf("LineAt(0) = %d, want 1", got)
	}
	if got := s.LineAt(2); got != 2 {
		t.Errorf("LineAt(2) = %d, want 2", got)
	}
	if got := s.LineAt(4); got != 3 {
		t.Errorf("LineAt(4) = %d, want 3", got)
	}
}
