/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

// Options configures table construction.
type Options struct {
	// Prefix is the custom property prefix for token references.
	Prefix string

	// Disable lists glob patterns of rule names to leave out, e.g. "nowrap*".
	Disable []string
}

// Table is an ordered, immutable list of rules.
// It is safe for concurrent use.
type Table struct {
	rules  []*Rule
	byName map[string]*Rule
}

// Default is the full rule table with unprefixed references.
var Default = MustNew(Options{})

// New builds a rule table. Rule names must be unique; every matcher is
// anchored on the full name, so unique names keep matchers disjoint.
func New(opts Options) (*Table, error) {
	for _, pattern := range opts.Disable {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid disable pattern %q", pattern)
		}
	}

	n := value.Normalizer{Prefix: opts.Prefix}
	defs := definitions()
	t := &Table{
		rules:  make([]*Rule, 0, len(defs)),
		byName: make(map[string]*Rule, len(defs)),
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate rule %q", def.Name)
		}
		seen[def.Name] = true
		if disabled(def.Name, opts.Disable) {
			continue
		}
		r, err := def.bind(n)
		if err != nil {
			return nil, err
		}
		t.rules = append(t.rules, r)
		t.byName[r.Name] = r
	}

	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *Table {
	t, err := New(opts)
	if err != nil {
		panic(err)
	}
	return t
}

func disabled(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Match returns the declarations of the first rule matching token.
// ok is false when no rule matches.
func (t *Table) Match(token string) (decls style.Set, ok bool) {
	_, decls, ok = t.MatchRule(token)
	return decls, ok
}

// MatchRule is like Match but also returns the matching rule.
func (t *Table) MatchRule(token string) (*Rule, style.Set, bool) {
	for _, r := range t.rules {
		if decls, ok := r.Apply(token); ok {
			return r, decls, true
		}
	}
	return nil, style.Set{}, false
}

// Rules returns the rules in table order.
func (t *Table) Rules() []*Rule {
	out := make([]*Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Lookup returns the rule with the given name.
func (t *Table) Lookup(name string) (*Rule, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Filter returns rules whose names match a glob pattern, in table order.
// An empty pattern matches every rule.
func (t *Table) Filter(pattern string) ([]*Rule, error) {
	if pattern == "" {
		return t.Rules(), nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	var out []*Rule
	for _, r := range t.rules {
		if matched, _ := doublestar.Match(pattern, r.Name); matched {
			out = append(out, r)
		}
	}
	return out, nil
}

// Match matches token against the default table.
func Match(token string) (style.Set, bool) {
	return Default.Match(token)
}
