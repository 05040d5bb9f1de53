package transform

import (
	"strings"

	"github.com/Mnwa/css-minify/ast"
)

// FontWeightNormalizer rewrites the `font-weight` declaration's keyword
// values to their numeric equivalents and strips stray quote characters.
// Assumes property names have already been lowercased (see NameLowercaser,
// which the pipeline always runs first).
type FontWeightNormalizer struct{}

func (FontWeightNormalizer) TransformDeclarations(decls *ast.Declarations) *ast.Declarations {
	out := ast.NewDeclarations()
	decls.Range(func(name, value string) {
		if name == "font-weight" {
			value = strings.ReplaceAll(value, "normal", "400")
			value = strings.ReplaceAll(value, "bold", "700")
			value = strings.ReplaceAll(value, `"`, "")
		}
		out.Set(name, value)
	})
	return out
}
