package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mnwa/css-minify/ast"
)

// ColorNormalizer rewrites a value whose leading token is a recognizable
// color - a `#`-prefixed hex run, or an `rgb(r,g,b)` function call with
// integer 0-255 components - to its canonical lowercase hex form, with the
// 6-digit-to-3-digit collapse applied where the digit pairs allow it. Any
// trailing `!important` (with whatever whitespace preceded it) is kept.
// Values that don't start with a color token pass through unchanged.
type ColorNormalizer struct{}

func (ColorNormalizer) TransformDeclarations(decls *ast.Declarations) *ast.Declarations {
	out := ast.NewDeclarations()
	decls.Range(func(name, value string) {
		out.Set(name, normalizeColorValue(value))
	})
	return out
}

func normalizeColorValue(value string) string {
	if color, postfix, ok := tryHexColor(value); ok {
		return appendImportant(color, postfix)
	}
	if color, postfix, ok := tryRGBColor(value); ok {
		return appendImportant(color, postfix)
	}
	return value
}

func appendImportant(color, postfix string) string {
	if strings.TrimSpace(postfix) == "!important" {
		return color + "!important"
	}
	return color
}

func tryHexColor(value string) (color, postfix string, ok bool) {
	if !strings.HasPrefix(value, "#") {
		return "", "", false
	}
	i := 1
	for i < len(value) && isHexDigit(value[i]) {
		i++
	}
	if i == 1 {
		return "", "", false
	}
	return collapseHex(strings.ToLower(value[:i])), value[i:], true
}

// collapseHex shortens a lowercase hex string to its first four bytes
// ("#" plus three digits) when its first three digits equal its next three
// (byte 1 == byte 4, byte 2 == byte 5, byte 3 == byte 6). Strings shorter
// than seven bytes are returned unchanged; longer ones (e.g. 8-digit hex)
// are compared on the same six digits.
func collapseHex(hex string) string {
	if len(hex) >= 7 && hex[1:4] == hex[4:7] {
		return hex[:4]
	}
	return hex
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}

func tryRGBColor(value string) (color, postfix string, ok bool) {
	if !strings.HasPrefix(value, "rgb") {
		return "", "", false
	}
	rest := value[3:]
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, "(") {
		return "", "", false
	}
	afterOpen := 3 + (len(rest) - len(trimmed)) + 1
	inner := trimmed[1:]
	closeIdx := strings.IndexByte(inner, ')')
	if closeIdx < 0 {
		return "", "", false
	}
	parts := strings.Split(inner[:closeIdx], ",")
	if len(parts) != 3 {
		return "", "", false
	}
	var channels [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 || n > 255 {
			return "", "", false
		}
		channels[i] = n
	}
	hex := strings.ToLower(fmt.Sprintf("#%02X%02X%02X", channels[0], channels[1], channels[2]))
	postfixStart := afterOpen + closeIdx + 1
	return collapseHex(hex), value[postfixStart:], true
}
