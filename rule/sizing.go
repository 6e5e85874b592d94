/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"strings"

	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

// sizeRange accepts a single size or a "min~max" pair. Either side of the
// pair may be empty: "~300" sets only the maximum, "100~" only the minimum.
// Segments after a second "~" are ignored.
func sizeRange(name string, prop, minProp, maxProp style.Property, desc string, examples ...string) *Rule {
	return &Rule{
		Name:        name,
		Category:    CategorySizing,
		Shape:       Call,
		Description: desc,
		Examples:    examples,
		generate: func(n value.Normalizer, args string, _ bool) style.Set {
			lo, hi, isRange := strings.Cut(args, "~")
			if !isRange {
				return style.New(decl(prop, n.Px(args)))
			}
			hi, _, _ = strings.Cut(hi, "~")
			var s style.Set
			if lo != "" {
				s.Put(minProp, style.String(n.Px(lo)))
			}
			if hi != "" {
				s.Put(maxProp, style.String(n.Px(hi)))
			}
			return s
		},
	}
}

// space sizes a square: width and height share one value.
func space(n value.Normalizer, args string, _ bool) style.Set {
	v := n.Px(args)
	return style.New(decl(style.Width, v), decl(style.Height, v))
}
