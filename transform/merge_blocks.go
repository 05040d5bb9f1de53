package transform

import "github.com/Mnwa/css-minify/ast"

// MergeBlocks groups same-selector blocks within a document into one,
// recursing into @media and @supports bodies. Non-block entities keep
// their original relative order; merged blocks are appended afterward, in
// the order their selector list first appeared.
//
// The group key is the selector list's printed, sorted form (ast.
// SelectorList.String) - this is the "selector sort at print time is
// load-bearing" design point: changing that sort changes which blocks
// this transform considers equivalent.
type MergeBlocks struct{}

func (MergeBlocks) Apply(doc ast.Document) ast.Document {
	var order []string
	groups := make(map[string]ast.Block)
	var others []ast.Entity

	for _, e := range doc.Entities {
		switch v := e.(type) {
		case ast.Block:
			key := v.Selectors.String()
			if existing, ok := groups[key]; ok {
				v.Declarations.Range(func(name, value string) {
					existing.Declarations.Set(name, value)
				})
			} else {
				order = append(order, key)
				groups[key] = ast.Block{Selectors: v.Selectors, Declarations: v.Declarations.Clone()}
			}
		case *ast.Media:
			others = append(others, &ast.Media{Condition: v.Condition, Entities: MergeBlocks{}.Apply(v.Entities)})
		case *ast.Supports:
			others = append(others, &ast.Supports{Condition: v.Condition, Entities: MergeBlocks{}.Apply(v.Entities)})
		default:
			others = append(others, e)
		}
	}

	result := make([]ast.Entity, 0, len(others)+len(order))
	result = append(result, others...)
	for _, key := range order {
		result = append(result, groups[key])
	}
	return ast.Document{Entities: result}
}
