/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rule implements the ordered table of shorthand rules that turn
// atomic style tokens such as "c(red)" or "hbox(left+reverse)" into CSS
// declarations.
package rule

import (
	"fmt"
	"regexp"

	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

// Shape describes the token forms a rule accepts.
type Shape int

const (
	// Keyword matches the bare rule name, e.g. "pack".
	Keyword Shape = iota
	// Call matches name(args), e.g. "c(red)".
	Call
	// OptionalCall matches either the bare name or name(args), e.g. "layer" and "layer(top)".
	OptionalCall
)

// String returns the string representation of the shape.
func (s Shape) String() string {
	switch s {
	case Keyword:
		return "keyword"
	case Call:
		return "call"
	case OptionalCall:
		return "optional-call"
	default:
		return "unknown"
	}
}

// Category groups rules for listing.
type Category string

// Rule categories.
const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryBorder     Category = "border"
	CategoryPosition   Category = "position"
	CategorySizing     Category = "sizing"
	CategoryTypography Category = "typography"
	CategoryEffects    Category = "effects"
	CategoryLayout     Category = "layout"
)

// generator builds declarations from the shorthand argument.
// hasArgs is false for bare keywords and for an OptionalCall used without parentheses.
type generator func(n value.Normalizer, args string, hasArgs bool) style.Set

// Rule pairs a matcher with a generator.
type Rule struct {
	Name        string
	Category    Category
	Shape       Shape
	Description string
	// Examples are sample tokens the rule matches.
	Examples []string

	pattern  *regexp.Regexp
	generate generator
	norm     value.Normalizer
}

// Pattern returns the anchored expression the rule matches tokens against.
// The first capture group, when present, holds the shorthand argument.
func (r *Rule) Pattern() *regexp.Regexp {
	return r.pattern
}

// Apply runs the rule against token. ok is false when the token does not match.
func (r *Rule) Apply(token string) (decls style.Set, ok bool) {
	m := r.pattern.FindStringSubmatchIndex(token)
	if m == nil {
		return style.Set{}, false
	}
	var args string
	hasArgs := len(m) > 2 && m[2] >= 0
	if hasArgs {
		args = token[m[2]:m[3]]
	}
	return r.generate(r.norm, args, hasArgs), true
}

// Matches reports whether token matches the rule.
func (r *Rule) Matches(token string) bool {
	return r.pattern.MatchString(token)
}

// compilePattern builds the matcher for a rule name and shape.
func compilePattern(name string, shape Shape) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(name)
	switch shape {
	case Keyword:
		return regexp.Compile(`^` + quoted + `$`)
	case Call:
		return regexp.Compile(`^` + quoted + `\((\S+)\)$`)
	case OptionalCall:
		return regexp.Compile(`^` + quoted + `(?:\((\S+)\))?$`)
	default:
		return nil, fmt.Errorf("rule %q: unknown shape %d", name, shape)
	}
}

// bind returns a copy of r with a compiled matcher and normalizer.
func (r *Rule) bind(n value.Normalizer) (*Rule, error) {
	pattern, err := compilePattern(r.Name, r.Shape)
	if err != nil {
		return nil, err
	}
	bound := *r
	bound.Examples = append([]string(nil), r.Examples...)
	bound.pattern = pattern
	bound.norm = n
	return &bound, nil
}

// fixed returns a generator that always yields decls.
func fixed(decls ...style.Declaration) generator {
	return func(value.Normalizer, string, bool) style.Set {
		return style.New(decls...)
	}
}

func decl(p style.Property, v string) style.Declaration {
	return style.Declaration{Property: p, Value: style.String(v)}
}
