/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value provides normalizers that turn shorthand arguments into CSS values.
//
// Normalizers never fail. Input they do not recognize is passed through
// unchanged, or wrapped as a custom property reference when it looks like a
// design token name rather than a literal.
package value

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Normalizer converts shorthand arguments to CSS values.
// The zero value is ready to use and emits unprefixed references.
type Normalizer struct {
	// Prefix is prepended to custom property names, e.g. "rh" gives var(--rh-primary).
	Prefix string
}

var std Normalizer

// tokenNamePattern matches design token names, including dotted paths like brand.primary.
var tokenNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\.[A-Za-z0-9_-]+)*$`)

// keywords pass through every normalizer untouched.
var keywords = map[string]bool{
	"auto":         true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
	"none":         true,
	"normal":       true,
	"fit-content":  true,
	"min-content":  true,
	"max-content":  true,
	"currentcolor": true,
	"transparent":  true,
}

type kind int

const (
	kindOther kind = iota
	kindNumber
	kindLength
	kindFunction
)

// classify lexes v as a single CSS component value.
func classify(v string) kind {
	if v == "" {
		return kindOther
	}
	l := css.NewLexer(parse.NewInputString(v))
	tt, _ := l.Next()
	if tt == css.FunctionToken {
		if strings.HasSuffix(v, ")") {
			return kindFunction
		}
		return kindOther
	}
	if next, _ := l.Next(); next != css.ErrorToken {
		return kindOther
	}
	switch tt {
	case css.NumberToken:
		return kindNumber
	case css.DimensionToken, css.PercentageToken:
		return kindLength
	}
	return kindOther
}

// IsKeyword reports whether v is a CSS keyword that normalizers leave alone.
func IsKeyword(v string) bool {
	return keywords[strings.ToLower(v)]
}

// isReference reports whether v should become a custom property reference.
func isReference(v string) bool {
	if strings.HasPrefix(v, "--") {
		return len(v) > 2
	}
	return !IsKeyword(v) && tokenNamePattern.MatchString(v)
}

// Ref wraps a token name as a custom property reference.
// e.g., "brand.primary" with prefix "rh" → "var(--rh-brand-primary)"
func (n Normalizer) Ref(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return "var(" + name + ")"
	}
	name = strings.ReplaceAll(name, ".", "-")
	if n.Prefix != "" {
		prefix := strings.ReplaceAll(n.Prefix, ".", "-")
		return "var(--" + prefix + "-" + name + ")"
	}
	return "var(--" + name + ")"
}

// Px appends "px" to bare numbers. Lengths, percentages and functions are
// returned as-is, as is the literal 0. Token names become references.
func (n Normalizer) Px(v string) string {
	switch classify(v) {
	case kindNumber:
		if v == "0" {
			return v
		}
		return v + "px"
	case kindLength, kindFunction:
		return v
	}
	if isReference(v) {
		return n.Ref(v)
	}
	return v
}

// CSSVar is like Px but never adds a unit. Used for unitless scalars
// such as z-index, opacity and filter amounts.
func (n Normalizer) CSSVar(v string) string {
	if classify(v) != kindOther {
		return v
	}
	if isReference(v) {
		return n.Ref(v)
	}
	return v
}

// Side normalizes 1-4 slash separated side values, e.g. "10/20" → "10px 20px".
func (n Normalizer) Side(v string) string {
	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == '/' || unicode.IsSpace(r)
	})
	if len(parts) == 0 {
		return v
	}
	for i, part := range parts {
		parts[i] = n.Px(part)
	}
	return strings.Join(parts, " ")
}

// PercentToEm converts a percentage to em, e.g. "2%" → "0.02em".
// Anything else is normalized with Px.
func (n Normalizer) PercentToEm(v string) string {
	if pct, ok := strings.CutSuffix(v, "%"); ok {
		if f, err := strconv.ParseFloat(pct, 64); err == nil {
			return Number(f/100) + "em"
		}
	}
	return n.Px(v)
}

// Number formats f in its shortest decimal form without a unit.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Values joins "+" separated components with spaces, e.g. "0+2+4+#000" → "0 2 4 #000".
func Values(v string) string {
	return strings.ReplaceAll(v, "+", " ")
}

// IsNumeric reports whether v lexes as a bare CSS number.
func IsNumeric(v string) bool {
	return classify(v) == kindNumber
}

// Px normalizes v with unprefixed references.
func Px(v string) string { return std.Px(v) }

// CSSVar normalizes v with unprefixed references.
func CSSVar(v string) string { return std.CSSVar(v) }

// Side normalizes v with unprefixed references.
func Side(v string) string { return std.Side(v) }

// PercentToEm normalizes v with unprefixed references.
func PercentToEm(v string) string { return std.PercentToEm(v) }

// Color normalizes v with unprefixed references.
func Color(v string) string { return std.Color(v) }

// Border normalizes v with unprefixed references.
func Border(v string) string { return std.Border(v) }
