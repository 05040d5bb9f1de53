package transform

import (
	"strings"

	"github.com/Mnwa/css-minify/ast"
)

// ValueNormalizer applies a fixed set of cosmetic, always-safe rewrites to
// every declaration value: dropping the unit off a leading zero length,
// and a handful of substring replacements that shrink output without
// changing meaning.
type ValueNormalizer struct{}

func (ValueNormalizer) TransformDeclarations(decls *ast.Declarations) *ast.Declarations {
	out := ast.NewDeclarations()
	decls.Range(func(name, value string) {
		out.Set(name, normalizeValue(value))
	})
	return out
}

func normalizeValue(value string) string {
	if strings.HasPrefix(value, "0px") {
		value = "0" + strings.TrimPrefix(value, "0px")
	}
	if strings.HasPrefix(value, "0rem") {
		value = "0" + strings.TrimPrefix(value, "0rem")
	}
	if strings.HasPrefix(value, "0.") {
		value = "." + strings.TrimPrefix(value, "0.")
	}
	value = strings.ReplaceAll(value, " 0px", " 0")
	value = strings.ReplaceAll(value, " 0rem", " 0")
	value = strings.ReplaceAll(value, " 0.", " .")
	value = strings.ReplaceAll(value, ", ", ",")
	value = strings.ReplaceAll(value, " !important", "!important")
	return value
}
