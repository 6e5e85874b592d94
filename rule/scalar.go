/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"strconv"

	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

// normalize is a value normalizer method expression, e.g. value.Normalizer.Px.
type normalize func(value.Normalizer, string) string

// scalar maps the argument of name(args) through norm into a single property.
func scalar(name string, cat Category, prop style.Property, norm normalize, desc string, examples ...string) *Rule {
	return &Rule{
		Name:        name,
		Category:    cat,
		Shape:       Call,
		Description: desc,
		Examples:    examples,
		generate: func(n value.Normalizer, args string, _ bool) style.Set {
			return style.New(decl(prop, norm(n, args)))
		},
	}
}

// corners rounds a pair of adjacent corners with the same radius.
func corners(name string, a, b style.Property, desc string, examples ...string) *Rule {
	return &Rule{
		Name:        name,
		Category:    CategoryBorder,
		Shape:       Call,
		Description: desc,
		Examples:    examples,
		generate: func(n value.Normalizer, args string, _ bool) style.Set {
			v := n.Px(args)
			return style.New(decl(a, v), decl(b, v))
		},
	}
}

// unitless emits a number when the normalized argument is numeric, a string otherwise.
func unitless(name string, cat Category, prop style.Property, desc string, examples ...string) *Rule {
	return &Rule{
		Name:        name,
		Category:    cat,
		Shape:       Call,
		Description: desc,
		Examples:    examples,
		generate: func(n value.Normalizer, args string, _ bool) style.Set {
			v := n.CSSVar(args)
			if value.IsNumeric(v) {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					return style.New(style.Declaration{Property: prop, Value: style.Number(f)})
				}
			}
			return style.New(decl(prop, v))
		},
	}
}

// function wraps the normalized argument in a CSS function, e.g. blur(4px).
func function(name string, prop style.Property, fn string, norm normalize, desc string, examples ...string) *Rule {
	return &Rule{
		Name:        name,
		Category:    CategoryEffects,
		Shape:       Call,
		Description: desc,
		Examples:    examples,
		generate: func(n value.Normalizer, args string, _ bool) style.Set {
			return style.New(decl(prop, fn+"("+norm(n, args)+")"))
		},
	}
}

// values joins "+" separated components without interpreting them.
func values(n value.Normalizer, v string) string {
	return value.Values(v)
}
