package transform

import (
	"strings"

	"github.com/Mnwa/css-minify/ast"
)

// MergeMedia normalizes each @media condition (dropping the space after a
// colon, so `(max-width: 992px)` and `(max-width:992px)` hash the same)
// and concatenates the bodies of all @media entities sharing a normalized
// condition, recursing into nested @media and @supports bodies first.
// Non-media entities keep their order; merged media blocks are appended
// afterward, in first-appearance order of their condition.
type MergeMedia struct{}

func (MergeMedia) Apply(doc ast.Document) ast.Document {
	var order []string
	groups := make(map[string]*ast.Media)
	var others []ast.Entity

	for _, e := range doc.Entities {
		switch v := e.(type) {
		case *ast.Media:
			body := MergeMedia{}.Apply(v.Entities)
			cond := normalizeMediaCondition(v.Condition)
			if existing, ok := groups[cond]; ok {
				existing.Entities.Entities = append(existing.Entities.Entities, body.Entities...)
			} else {
				order = append(order, cond)
				entities := make([]ast.Entity, len(body.Entities))
				copy(entities, body.Entities)
				groups[cond] = &ast.Media{Condition: cond, Entities: ast.Document{Entities: entities}}
			}
		case *ast.Supports:
			others = append(others, &ast.Supports{Condition: v.Condition, Entities: MergeMedia{}.Apply(v.Entities)})
		default:
			others = append(others, e)
		}
	}

	result := make([]ast.Entity, 0, len(others)+len(order))
	result = append(result, others...)
	for _, cond := range order {
		result = append(result, groups[cond])
	}
	return ast.Document{Entities: result}
}

func normalizeMediaCondition(cond string) string {
	return strings.ReplaceAll(cond, ": ", ":")
}
