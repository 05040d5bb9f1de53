package parser

import (
	"strings"

	"github.com/Mnwa/css-minify/ast"
	"github.com/Mnwa/css-minify/lexer"
)

// parseSelectorList parses a comma-separated run of compound selectors. It
// refuses to start on '@', '{', '}' or EOF - those bytes can never begin a
// selector, and leaving them alone lets the caller try the at-rule
// alternatives instead. A comma with no following selector backtracks the
// whole list: CSS never has a dangling trailing comma.
func parseSelectorList(s *lexer.Scanner) (ast.SelectorList, bool) {
	save := s.Pos()
	s.SkipTrivia()
	switch s.Peek() {
	case '@', '{', '}', 0:
		s.SetPos(save)
		return nil, false
	}
	first, ok := parseCompoundSelector(s)
	if !ok {
		s.SetPos(save)
		return nil, false
	}
	list := ast.SelectorList{first}
	for {
		beforeComma := s.Pos()
		s.SkipTrivia()
		if !s.ConsumeByte(',') {
			s.SetPos(beforeComma)
			break
		}
		s.SkipTrivia()
		next, ok := parseCompoundSelector(s)
		if !ok {
			s.SetPos(save)
			return nil, false
		}
		list = append(list, next)
	}
	return list, true
}

// parseCompoundSelector parses an optional id/class/tag base followed by
// zero or more pseudo-classes. At least one of the two must be present.
func parseCompoundSelector(s *lexer.Scanner) (ast.CompoundSelector, bool) {
	save := s.Pos()
	base, hasBase := parseSimpleBase(s)
	var chain []ast.PseudoClass
	for {
		pc, ok := parsePseudoClass(s)
		if !ok {
			break
		}
		chain = append(chain, pc)
	}
	if !hasBase && len(chain) == 0 {
		s.SetPos(save)
		return ast.CompoundSelector{}, false
	}
	cs := ast.CompoundSelector{PseudoChain: chain}
	if hasBase {
		cs.Base = base
	}
	return cs, true
}

const selectorStop = ",{:"

func parseSimpleBase(s *lexer.Scanner) (ast.Simple, bool) {
	switch s.Peek() {
	case '#':
		s.Consume(1)
		name := strings.TrimSpace(s.IdentifierLike(selectorStop))
		return ast.Simple{Kind: ast.SimpleID, Name: name}, true
	case '.':
		s.Consume(1)
		name := strings.TrimSpace(s.IdentifierLike(selectorStop))
		return ast.Simple{Kind: ast.SimpleClass, Name: name}, true
	case ',', '{', ':', 0:
		return ast.Simple{}, false
	default:
		name := strings.TrimSpace(s.IdentifierLike(selectorStop))
		if name == "" {
			return ast.Simple{}, false
		}
		return ast.Simple{Kind: ast.SimpleTag, Name: name}, true
	}
}

// parsePseudoClass parses one `:name` or `::name`, an optional `(params)`
// group, and an optional trailing run of text up to the next ",{:" as its
// descendant-selector "trailer". The trailer is captured verbatim and never
// re-parsed: a compound selector base following a pseudo-class (e.g. the
// `a` in `:is(.x) a`) is therefore folded into the preceding pseudo-class
// rather than recovered as structure, matching how the rest of the chain
// continues to scan for further ':'-prefixed pseudo-classes afterward.
func parsePseudoClass(s *lexer.Scanner) (ast.PseudoClass, bool) {
	save := s.Pos()
	colons := 0
	for colons < 2 && s.Peek() == ':' {
		s.Consume(1)
		colons++
	}
	if colons == 0 {
		return ast.PseudoClass{}, false
	}
	name := strings.TrimSpace(s.IdentifierLike("(,{:"))
	if name == "" {
		s.SetPos(save)
		return ast.PseudoClass{}, false
	}
	pc := ast.PseudoClass{Name: name}
	s.SkipTrivia()
	if s.Peek() == '(' {
		if text, ok := s.Balanced('(', ')'); ok {
			pc.Params = text[1 : len(text)-1]
			pc.HasArgs = true
		}
	}
	beforeTrailer := s.Pos()
	s.SkipTrivia()
	trailer := strings.TrimSpace(s.IdentifierLike(",{:"))
	if trailer != "" {
		pc.Trailer = trailer
		pc.HasNext = true
	} else {
		s.SetPos(beforeTrailer)
	}
	return pc, true
}
