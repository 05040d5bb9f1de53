package transform

import "github.com/Mnwa/css-minify/ast"

// MergeMarginPadding collapses the four margin-* (respectively padding-*)
// longhands into a single shorthand when all four are present, using the
// minimal CSS box form (1, 2, 3, or 4 value forms). It never touches a
// block that already declares the shorthand itself.
type MergeMarginPadding struct{}

func (MergeMarginPadding) TransformDeclarations(decls *ast.Declarations) *ast.Declarations {
	out := decls.Clone()
	mergeBoxShorthand(out, "margin", []string{"margin-top", "margin-right", "margin-bottom", "margin-left"})
	mergeBoxShorthand(out, "padding", []string{"padding-top", "padding-right", "padding-bottom", "padding-left"})
	return out
}

func mergeBoxShorthand(decls *ast.Declarations, target string, sides []string) {
	if decls.Has(target) {
		return
	}
	vals := make([]*string, len(sides))
	for i, name := range sides {
		v, ok := decls.Get(name)
		if !ok {
			return
		}
		vv := v
		vals[i] = &vv
	}
	if !importantUniform(vals) {
		return
	}
	t, r, b, l := trimImportant(*vals[0]), trimImportant(*vals[1]), trimImportant(*vals[2]), trimImportant(*vals[3])
	var core string
	switch {
	case t == r && r == b && b == l:
		core = t
	case t == b && r == l:
		core = t + " " + r
	case r == l:
		core = t + " " + r + " " + b
	default:
		core = t + " " + r + " " + b + " " + l
	}
	if allImportantAmongPresent(vals) {
		core += "!important"
	}
	decls.Set(target, core)
	for _, name := range sides {
		decls.Delete(name)
	}
}
