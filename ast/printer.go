package ast

import (
	"io"
	"sort"
	"strings"
)

// String serializes the document deterministically: selector lists are
// sorted lexicographically at this boundary only (see the note on
// SelectorList.String), declarations are emitted in their map's insertion
// order, and no incidental whitespace or comments are reproduced.
func (d Document) String() string {
	var b strings.Builder
	d.writeTo(&b)
	return b.String()
}

// WriteTo implements io.WriterTo, writing the same text String returns.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	d.writeTo(&b)
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (d Document) writeTo(b *strings.Builder) {
	for _, e := range d.Entities {
		writeEntity(b, e)
	}
}

func writeEntity(b *strings.Builder, e Entity) {
	switch v := e.(type) {
	case Block:
		b.WriteString(v.Selectors.String())
		b.WriteByte('{')
		writeDeclarations(b, v.Declarations)
		b.WriteByte('}')
	case *Media:
		b.WriteString("@media ")
		b.WriteString(v.Condition)
		b.WriteByte('{')
		v.Entities.writeTo(b)
		b.WriteByte('}')
	case *Supports:
		b.WriteString("@supports ")
		b.WriteString(v.Condition)
		b.WriteByte('{')
		v.Entities.writeTo(b)
		b.WriteByte('}')
	case Page:
		b.WriteString("@page")
		if v.HasSelector {
			b.WriteByte(' ')
			b.WriteString(v.Selector)
		}
		b.WriteString(" {")
		writeDeclarations(b, v.Declarations)
		b.WriteByte('}')
	case FontFace:
		b.WriteString("@font-face {")
		writeDeclarations(b, v.Declarations)
		b.WriteByte('}')
	case Viewport:
		b.WriteString("@viewport {")
		writeDeclarations(b, v.Declarations)
		b.WriteByte('}')
	case MsViewport:
		b.WriteString("@-ms-viewport {")
		writeDeclarations(b, v.Declarations)
		b.WriteByte('}')
	case Keyframes:
		if v.VendorPrefixed {
			b.WriteString("@-webkit-keyframes ")
		} else {
			b.WriteString("@keyframes ")
		}
		b.WriteString(v.Name)
		b.WriteByte('{')
		for _, frame := range v.Frames {
			b.WriteString(frame.Stop)
			b.WriteByte('{')
			writeDeclarations(b, frame.Declarations)
			b.WriteByte('}')
		}
		b.WriteByte('}')
	case Charset:
		b.WriteString("@charset ")
		b.WriteString(v.Value)
		b.WriteByte(';')
	case Namespace:
		b.WriteString("@namespace ")
		if v.HasPrefix {
			b.WriteString(v.Prefix)
			b.WriteByte(' ')
		}
		b.WriteString(v.URL)
		b.WriteByte(';')
	case Import:
		b.WriteString("@import ")
		b.WriteString(v.URL)
		if v.HasMedia {
			b.WriteByte(' ')
			b.WriteString(v.MediaList)
		}
		b.WriteByte(';')
	}
}

func writeDeclarations(b *strings.Builder, decls *Declarations) {
	if decls == nil {
		return
	}
	first := true
	decls.Range(func(name, value string) {
		if !first {
			b.WriteByte(';')
		}
		first = false
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(value)
	})
}

// String renders the selector list: each compound selector is rendered
// independently, then the whole list is sorted lexicographically and
// joined with commas. This sort is the only reason output may reorder
// input, and it is load-bearing - it canonicalizes the group key the
// MergeBlocks transform uses to find duplicate selector lists (see
// spec.md §9, "Selector sort at print time is load-bearing").
func (sl SelectorList) String() string {
	parts := make([]string, len(sl))
	for i, cs := range sl {
		parts[i] = cs.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// String renders one compound selector: its base (if any) followed by its
// pseudo-class chain.
func (cs CompoundSelector) String() string {
	var b strings.Builder
	b.WriteString(cs.Base.String())
	for _, pc := range cs.PseudoChain {
		b.WriteByte(':')
		b.WriteString(pc.Name)
		if pc.HasArgs {
			b.WriteByte('(')
			b.WriteString(pc.Params)
			b.WriteByte(')')
		}
		if pc.HasNext {
			b.WriteByte(' ')
			b.WriteString(pc.Trailer)
		}
	}
	return b.String()
}

// String renders a selector base, or "" when Kind is SimpleNone.
func (s Simple) String() string {
	switch s.Kind {
	case SimpleID:
		return "#" + s.Name
	case SimpleClass:
		return "." + s.Name
	case SimpleTag:
		return s.Name
	default:
		return ""
	}
}
