// Package transform implements the optimization pipeline that runs
// between parsing and printing: a set of independent rewrites over
// declarations and documents, gated by optimization level and composed in
// a fixed order by Pipeline.
package transform

import "github.com/Mnwa/css-minify/ast"

// Transform rewrites the declarations of a single block-like entity
// (Block, FontFace, Page, Viewport, MsViewport, each keyframe block). It is
// the unit most optimizations are expressed in; TransformEntity and
// TransformDocument provide the default recursive walk every such
// transform shares, mirroring the base/derived trait method split in the
// system this pipeline is modeled on.
type Transform interface {
	TransformDeclarations(decls *ast.Declarations) *ast.Declarations
}

// TransformEntity applies t to e, recursing into @media/@supports bodies
// and into every declaration-bearing entity. Entities with no declarations
// of their own (Charset, Namespace, Import) pass through unchanged.
func TransformEntity(t Transform, e ast.Entity) ast.Entity {
	switch v := e.(type) {
	case ast.Block:
		v.Declarations = t.TransformDeclarations(v.Declarations)
		return v
	case *ast.Media:
		entities := TransformDocument(t, v.Entities)
		return &ast.Media{Condition: v.Condition, Entities: entities}
	case *ast.Supports:
		entities := TransformDocument(t, v.Entities)
		return &ast.Supports{Condition: v.Condition, Entities: entities}
	case ast.FontFace:
		v.Declarations = t.TransformDeclarations(v.Declarations)
		return v
	case ast.Page:
		v.Declarations = t.TransformDeclarations(v.Declarations)
		return v
	case ast.Viewport:
		v.Declarations = t.TransformDeclarations(v.Declarations)
		return v
	case ast.MsViewport:
		v.Declarations = t.TransformDeclarations(v.Declarations)
		return v
	case ast.Keyframes:
		frames := make([]ast.KeyframeBlock, len(v.Frames))
		for i, f := range v.Frames {
			f.Declarations = t.TransformDeclarations(f.Declarations)
			frames[i] = f
		}
		v.Frames = frames
		return v
	default:
		return e
	}
}

// TransformDocument maps TransformEntity over every top-level entity.
func TransformDocument(t Transform, doc ast.Document) ast.Document {
	out := make([]ast.Entity, len(doc.Entities))
	for i, e := range doc.Entities {
		out[i] = TransformEntity(t, e)
	}
	return ast.Document{Entities: out}
}

// Stage is a single step of the pipeline: something that rewrites a whole
// document. Declaration-level Transforms are lifted into stages by
// declStage; MergeBlocks and MergeMedia implement Stage directly because
// they restructure the entity list itself, not just individual
// declarations.
type Stage interface {
	Apply(doc ast.Document) ast.Document
}

type declStage struct{ t Transform }

func (d declStage) Apply(doc ast.Document) ast.Document {
	return TransformDocument(d.t, doc)
}

// AsStage lifts a declaration-level Transform into a document-level Stage.
func AsStage(t Transform) Stage {
	return declStage{t}
}

// Run applies every stage of Pipeline(level) in order.
func Run(doc ast.Document, level Level) ast.Document {
	for _, stage := range Pipeline(level) {
		doc = stage.Apply(doc)
	}
	return doc
}

// Pipeline builds the ordered stage list for level, per the gating spec.md
// §4.D lays out: level 3 adds MergeBlocks/MergeMedia first (since they can
// reorder blocks and must run before anything that matches on declaration
// identity), level ≥2 adds the shorthand merges, and level ≥1 adds the
// cosmetic value/name/color/font-weight normalizers.
func Pipeline(level Level) []Stage {
	var stages []Stage
	if level == LevelThree {
		stages = append(stages, MergeBlocks{}, MergeMedia{})
	}
	if level >= LevelTwo {
		stages = append(stages, AsStage(MergeMarginPadding{}), AsStage(MergeShorthand{}))
	}
	if level >= LevelOne {
		stages = append(stages,
			AsStage(ValueNormalizer{}),
			AsStage(NameLowercaser{}),
			AsStage(ColorNormalizer{}),
			AsStage(FontWeightNormalizer{}),
		)
	}
	return stages
}
