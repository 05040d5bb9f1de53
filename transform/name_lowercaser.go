package transform

import (
	"strings"

	"github.com/Mnwa/css-minify/ast"
)

// NameLowercaser lowercases every declaration property name. Selectors are
// untouched - `Color:` becomes `color:` but `.Class` is never rewritten.
type NameLowercaser struct{}

func (NameLowercaser) TransformDeclarations(decls *ast.Declarations) *ast.Declarations {
	out := ast.NewDeclarations()
	decls.Range(func(name, value string) {
		out.Set(strings.ToLower(name), value)
	})
	return out
}
