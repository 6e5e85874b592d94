/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"slices"
	"strings"

	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

// splitFlags splits a "+" joined flag list. Empty flags are dropped.
func splitFlags(args string) []string {
	if args == "" {
		return nil
	}
	return slices.DeleteFunc(strings.Split(args, "+"), func(s string) bool {
		return s == ""
	})
}

// layerOpposites maps each side flag to the offset it drops.
var layerOpposites = map[string]style.Property{
	"top":    style.Bottom,
	"right":  style.Left,
	"bottom": style.Top,
	"left":   style.Right,
}

// layer pins an absolutely positioned box to all four edges. Each side flag
// anchors the box to that edge and drops the opposite offset.
func layer(_ value.Normalizer, args string, _ bool) style.Set {
	s := style.New(
		decl(style.Position, "absolute"),
		style.Declaration{Property: style.Top, Value: style.Number(0)},
		style.Declaration{Property: style.Right, Value: style.Number(0)},
		style.Declaration{Property: style.Bottom, Value: style.Number(0)},
		style.Declaration{Property: style.Left, Value: style.Number(0)},
	)
	for _, flag := range splitFlags(args) {
		if opposite, ok := layerOpposites[flag]; ok {
			s.Delete(opposite)
		}
	}
	return s
}
