package transform_test

import (
	"testing"

	"github.com/Mnwa/css-minify/ast"
	"github.com/Mnwa/css-minify/transform"
)

func declsOf(pairs ...string) *ast.Declarations {
	d := ast.NewDeclarations()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

func get(t *testing.T, d *ast.Declarations, name string) string {
	t.Helper()
	v, ok := d.Get(name)
	if !ok {
		t.Fatalf("missing declaration %q", name)
	}
	return v
}

func TestValueNormalizerZeroUnits(t *testing.T) {
	d := declsOf("margin", "0px 0rem 0.5em", "padding", "0.3em, 0.4em")
	out := transform.ValueNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "margin"); v != "0 0 .5em" {
		t.Errorf("margin = %q", v)
	}
	if v := get(t, out, "padding"); v != ".3em,.4em" {
		t.Errorf("padding = %q", v)
	}
}

func TestValueNormalizerImportant(t *testing.T) {
	d := declsOf("color", "red !important")
	out := transform.ValueNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "color"); v != "red!important" {
		t.Errorf("color = %q", v)
	}
}

func TestNameLowercaser(t *testing.T) {
	d := declsOf("Color", "white")
	out := transform.NameLowercaser{}.TransformDeclarations(d)
	if !out.Has("color") {
		t.Errorf("expected lowercased key, got %v", out.Keys())
	}
}

func TestColorNormalizerRGB(t *testing.T) {
	d := declsOf("color", "rgb(255,255,255)")
	out := transform.ColorNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "color"); v != "#fff" {
		t.Errorf("color = %q", v)
	}
}

func TestColorNormalizerRGBNoCollapse(t *testing.T) {
	d := declsOf("color", "rgb(4,120,87)")
	out := transform.ColorNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "color"); v != "#047857" {
		t.Errorf("color = %q", v)
	}
}

func TestColorNormalizerHexCollapse(t *testing.T) {
	d := declsOf("background-color", "#000000")
	out := transform.ColorNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "background-color"); v != "#000" {
		t.Errorf("color = %q", v)
	}
}

func TestColorNormalizerPreservesImportant(t *testing.T) {
	d := declsOf("color", "#000000 !important")
	out := transform.ColorNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "color"); v != "#000!important" {
		t.Errorf("color = %q", v)
	}
}

func TestColorNormalizerLeavesNonColor(t *testing.T) {
	d := declsOf("display", "block")
	out := transform.ColorNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "display"); v != "block" {
		t.Errorf("display = %q", v)
	}
}

func TestFontWeightNormalizer(t *testing.T) {
	d := declsOf("font-weight", "bold")
	out := transform.FontWeightNormalizer{}.TransformDeclarations(d)
	if v := get(t, out, "font-weight"); v != "700" {
		t.Errorf("font-weight = %q", v)
	}
}

func TestMergeMarginPaddingAllEqual(t *testing.T) {
	d := declsOf("margin-top", "3px", "margin-right", "3px", "margin-bottom", "3px", "margin-left", "3px")
	out := transform.MergeMarginPadding{}.TransformDeclarations(d)
	if v := get(t, out, "margin"); v != "3px" {
		t.Errorf("margin = %q", v)
	}
	if out.Has("margin-top") {
		t.Error("expected margin-top removed")
	}
}

func TestMergeMarginPaddingTwoValue(t *testing.T) {
	d := declsOf("margin-top", "3px", "margin-bottom", "3px", "margin-left", "4px", "margin-right", "4px")
	out := transform.MergeMarginPadding{}.TransformDeclarations(d)
	if v := get(t, out, "margin"); v != "3px 4px" {
		t.Errorf("margin = %q", v)
	}
}

func TestMergeMarginPaddingFourValue(t *testing.T) {
	d := declsOf("margin-top", "3px", "margin-right", "4px", "margin-bottom", "1px", "margin-left", "2px")
	out := transform.MergeMarginPadding{}.TransformDeclarations(d)
	if v := get(t, out, "margin"); v != "3px 4px 1px 2px" {
		t.Errorf("margin = %q", v)
	}
}

func TestMergeMarginPaddingMixedImportantNotMerged(t *testing.T) {
	d := declsOf("margin-top", "3px!important", "margin-right", "4px", "margin-bottom", "1px", "margin-left", "2px")
	out := transform.MergeMarginPadding{}.TransformDeclarations(d)
	if out.Has("margin") {
		t.Error("expected no merge with mixed !important")
	}
}

func TestMergeShorthandFont(t *testing.T) {
	d := declsOf(
		"font-style", "italic",
		"font-weight", "bold",
		"font-size", ".8em",
		"line-height", "1.2",
		"font-family", "Arial, sans-serif",
	)
	out := transform.MergeShorthand{}.TransformDeclarations(d)
	if v := get(t, out, "font"); v != "italic bold .8em/1.2 Arial, sans-serif" {
		t.Errorf("font = %q", v)
	}
}

func TestMergeShorthandBackground(t *testing.T) {
	d := declsOf(
		"background-color", "#000",
		"background-image", "url(images/bg.gif)",
		"background-repeat", "no-repeat",
		"background-position", "left top",
	)
	out := transform.MergeShorthand{}.TransformDeclarations(d)
	if v := get(t, out, "background"); v != "#000 url(images/bg.gif) no-repeat left top" {
		t.Errorf("background = %q", v)
	}
}

func TestMergeShorthandBackgroundImportant(t *testing.T) {
	d := declsOf("background-color", "#000 !important")
	out := transform.MergeShorthand{}.TransformDeclarations(d)
	if v := get(t, out, "background"); v != "#000!important" {
		t.Errorf("background = %q", v)
	}
}

func TestMergeShorthandBorder(t *testing.T) {
	d := declsOf("border-width", "1px", "border-style", "solid", "border-color", "#000")
	out := transform.MergeShorthand{}.TransformDeclarations(d)
	if v := get(t, out, "border"); v != "1px solid #000" {
		t.Errorf("border = %q", v)
	}
}

func TestMergeBlocksCombinesDeclarations(t *testing.T) {
	sel := ast.SelectorList{{Base: ast.Simple{Kind: ast.SimpleClass, Name: "test"}}}
	doc := ast.Document{Entities: []ast.Entity{
		ast.Block{Selectors: sel, Declarations: declsOf("background-color", "#f64e60!important")},
		ast.Block{Selectors: sel, Declarations: declsOf("color", "#f64e60!important")},
	}}
	out := transform.MergeBlocks{}.Apply(doc)
	if len(out.Entities) != 1 {
		t.Fatalf("expected 1 merged block, got %d", len(out.Entities))
	}
	block := out.Entities[0].(ast.Block)
	if block.Declarations.Len() != 2 {
		t.Fatalf("expected 2 declarations, got %d", block.Declarations.Len())
	}
}

func TestMergeMediaConcatenatesBodies(t *testing.T) {
	mkSel := func(name string) ast.SelectorList {
		return ast.SelectorList{{Base: ast.Simple{Kind: ast.SimpleClass, Name: name}}}
	}
	doc := ast.Document{Entities: []ast.Entity{
		&ast.Media{
			Condition: "only screen and (max-width: 992px)",
			Entities:  ast.Document{Entities: []ast.Entity{ast.Block{Selectors: mkSel("test"), Declarations: ast.NewDeclarations()}}},
		},
		&ast.Media{
			Condition: "only screen and (max-width:992px)",
			Entities:  ast.Document{Entities: []ast.Entity{ast.Block{Selectors: mkSel("test2"), Declarations: ast.NewDeclarations()}}},
		},
	}}
	out := transform.MergeMedia{}.Apply(doc)
	if len(out.Entities) != 1 {
		t.Fatalf("expected 1 merged media, got %d", len(out.Entities))
	}
	media := out.Entities[0].(*ast.Media)
	if media.Condition != "only screen and (max-width:992px)" {
		t.Errorf("condition = %q", media.Condition)
	}
	if len(media.Entities.Entities) != 2 {
		t.Fatalf("expected 2 nested blocks, got %d", len(media.Entities.Entities))
	}
}

func TestPipelineLevelGating(t *testing.T) {
	if n := len(transform.Pipeline(transform.LevelZero)); n != 0 {
		t.Errorf("level 0 pipeline has %d stages, want 0", n)
	}
	if n := len(transform.Pipeline(transform.LevelOne)); n != 4 {
		t.Errorf("level 1 pipeline has %d stages, want 4", n)
	}
	if n := len(transform.Pipeline(transform.LevelTwo)); n != 6 {
		t.Errorf("level 2 pipeline has %d stages, want 6", n)
	}
	if n := len(transform.Pipeline(transform.LevelThree)); n != 8 {
		t.Errorf("level 3 pipeline has %d stages, want 8", n)
	}
}
