package transform

import "github.com/Mnwa/css-minify/ast"

// MergeShorthand collapses six families of longhand declarations into
// their shorthand form when the family's gate is satisfied: font requires
// both font-size and font-family; the rest fire when any one constituent
// is present. Every family shares the !important-uniformity gate from
// MergeMarginPadding. None of these merges fire if the block already
// carries the target shorthand property.
type MergeShorthand struct{}

func (MergeShorthand) TransformDeclarations(decls *ast.Declarations) *ast.Declarations {
	out := decls.Clone()
	mergeFont(out)
	mergeSimpleShorthand(out, "list-style", []string{"list-style-type", "list-style-position", "list-style-image"})
	mergeSimpleShorthand(out, "background", []string{"background-color", "background-image", "background-repeat", "background-attachment", "background-position"})
	mergeSimpleShorthand(out, "border", []string{"border-width", "border-style", "border-color"})
	mergeSimpleShorthand(out, "outline", []string{"outline-width", "outline-style", "outline-color"})
	mergeSimpleShorthand(out, "transition", []string{"transition-property", "transition-duration", "transition-delay", "transition-timing-function"})
	return out
}

// mergeSimpleShorthand handles every family whose pieces join with a
// single space in a fixed order: fires when at least one constituent is
// present, subject to the !important-uniformity gate.
func mergeSimpleShorthand(decls *ast.Declarations, target string, constituents []string) {
	if decls.Has(target) {
		return
	}
	vals := make([]*string, len(constituents))
	anyPresent := false
	for i, name := range constituents {
		if v, ok := decls.Get(name); ok {
			vv := v
			vals[i] = &vv
			anyPresent = true
		}
	}
	if !anyPresent || !importantUniform(vals) {
		return
	}
	core := joinParts(" ", vals)
	if allImportantAmongPresent(vals) {
		core += "!important"
	}
	decls.Set(target, core)
	for _, name := range constituents {
		decls.Delete(name)
	}
}

// mergeFont is the one family with a non-uniform separator: font-size and
// line-height join with '/' instead of a space.
func mergeFont(decls *ast.Declarations) {
	if decls.Has("font") {
		return
	}
	style, hasStyle := decls.Get("font-style")
	variant, hasVariant := decls.Get("font-variant")
	weight, hasWeight := decls.Get("font-weight")
	size, hasSize := decls.Get("font-size")
	lineHeight, hasLineHeight := decls.Get("line-height")
	family, hasFamily := decls.Get("font-family")
	if !hasSize || !hasFamily {
		return
	}
	vals := []*string{
		optPtr(style, hasStyle), optPtr(variant, hasVariant), optPtr(weight, hasWeight),
		optPtr(size, hasSize), optPtr(lineHeight, hasLineHeight), optPtr(family, hasFamily),
	}
	if !importantUniform(vals) {
		return
	}
	var core string
	appendSpaced := func(v *string) {
		if v == nil {
			return
		}
		if core != "" {
			core += " "
		}
		core += trimImportant(*v)
	}
	appendSpaced(vals[0]) // style
	appendSpaced(vals[1]) // variant
	appendSpaced(vals[2]) // weight
	appendSpaced(vals[3]) // size
	if vals[4] != nil {   // line-height
		core += "/" + trimImportant(*vals[4])
	}
	appendSpaced(vals[5]) // family
	if allImportantAmongPresent(vals) {
		core += "!important"
	}
	decls.Set("font", core)
	for _, name := range []string{"font-style", "font-variant", "font-weight", "font-size", "line-height", "font-family"} {
		decls.Delete(name)
	}
}

func optPtr(v string, present bool) *string {
	if !present {
		return nil
	}
	return &v
}
