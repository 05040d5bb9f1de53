package transform

import "strings"

// hasImportant reports whether v carries a trailing `!important`, as parsed
// verbatim from source (so with whatever whitespace the author wrote
// before it).
func hasImportant(v string) bool {
	return strings.HasSuffix(v, "!important")
}

// trimImportant strips a trailing `!important` (and the whitespace before
// it) from v, leaving the bare value.
func trimImportant(v string) string {
	return strings.TrimSpace(strings.TrimSuffix(v, "!important"))
}

// importantUniform is the gate every shorthand merge shares: among the
// constituent values that are actually present (non-nil), either all of
// them carry `!important` or none of them do. A nil slot is absent and
// does not affect the vote; an empty constituent set is vacuously
// uniform.
func importantUniform(vals []*string) bool {
	all, none := true, true
	for _, v := range vals {
		if v == nil {
			continue
		}
		if hasImportant(*v) {
			none = false
		} else {
			all = false
		}
	}
	return all || none
}

// allImportantAmongPresent reports whether every present constituent
// carries `!important` (false if none are present).
func allImportantAmongPresent(vals []*string) bool {
	seen := false
	for _, v := range vals {
		if v == nil {
			continue
		}
		seen = true
		if !hasImportant(*v) {
			return false
		}
	}
	return seen
}

// joinParts joins the present (non-nil) values in vals with sep, each
// stripped of its `!important` suffix first.
func joinParts(sep string, vals []*string) string {
	var parts []string
	for _, v := range vals {
		if v != nil {
			parts = append(parts, trimImportant(*v))
		}
	}
	return strings.Join(parts, sep)
}
