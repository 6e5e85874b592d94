/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// hexAlphaPattern matches hex colors with a trailing alpha, e.g. #000.5 or #ff6b36.25
var hexAlphaPattern = regexp.MustCompile(`^(#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}))(\.[0-9]+)$`)

// borderStyles lists the keywords accepted in the style slot of a border.
var borderStyles = map[string]bool{
	"none":   true,
	"hidden": true,
	"dotted": true,
	"dashed": true,
	"solid":  true,
	"double": true,
	"groove": true,
	"ridge":  true,
	"inset":  true,
	"outset": true,
}

// borderWidths lists the keywords accepted in the width slot of a border.
var borderWidths = map[string]bool{
	"thin":   true,
	"medium": true,
	"thick":  true,
}

// Border defaults for slots the shorthand leaves out.
const (
	DefaultBorderWidth = "1px"
	DefaultBorderStyle = "solid"
	DefaultBorderColor = "currentColor"
)

// Color returns literal colors unchanged and wraps token names as references.
// Hex colors with an alpha suffix (#000.5) are expanded to rgba().
func (n Normalizer) Color(v string) string {
	if m := hexAlphaPattern.FindStringSubmatch(v); m != nil {
		if c, err := colorful.Hex(expandHex(m[1])); err == nil {
			alpha, _ := strconv.ParseFloat("0"+m[2], 64)
			r, g, b := c.RGB255()
			return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, Number(alpha))
		}
	}
	if IsKeyword(v) || IsLiteralColor(v) || classify(v) == kindFunction {
		return v
	}
	if isReference(v) {
		return n.Ref(v)
	}
	return v
}

// IsLiteralColor reports whether v is a color literal: #hex, a color function or a named color.
// Bare hex digits without "#" (e.g. "bad", "face") are not treated as colors.
func IsLiteralColor(v string) bool {
	if v == "" {
		return false
	}
	if !strings.HasPrefix(v, "#") && isHexDigits(v) {
		return false
	}
	_, err := csscolorparser.Parse(v)
	return err == nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// expandHex turns #rgb into #rrggbb.
func expandHex(hex string) string {
	if len(hex) != 4 {
		return hex
	}
	var sb strings.Builder
	sb.WriteByte('#')
	for i := 1; i < 4; i++ {
		sb.WriteByte(hex[i])
		sb.WriteByte(hex[i])
	}
	return sb.String()
}

// Border normalizes a "+" joined border shorthand, e.g. "2+dashed+primary" →
// "2px dashed var(--primary)". Parts are recognized by shape, so their order
// does not matter. "none" or "0" on its own removes the border.
func (n Normalizer) Border(v string) string {
	if v == "none" || v == "0" {
		return "none"
	}
	width, style, color := DefaultBorderWidth, DefaultBorderStyle, DefaultBorderColor
	for _, part := range strings.Split(v, "+") {
		switch {
		case part == "":
		case borderStyles[part]:
			style = part
		case borderWidths[part]:
			width = part
		case classify(part) == kindNumber, classify(part) == kindLength:
			width = n.Px(part)
		default:
			color = n.Color(part)
		}
	}
	return width + " " + style + " " + color
}
