/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"strconv"
	"strings"

	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

// UnitlessLineHeightLimit is the line-height below which a number is a
// multiplier of the font size rather than a pixel length.
const UnitlessLineHeightLimit = 4

// skipSlot keeps a font slot's position without setting it.
const skipSlot = "-"

// font handles font(size/lineHeight/letterSpacing). Missing trailing slots
// and "-" placeholders produce no declaration; extra slots are ignored.
// An empty slot is skipped like "-", so "14//2%" is the same as "14/-/2%"
// and never yields an empty line-height.
func font(n value.Normalizer, args string, _ bool) style.Set {
	var s style.Set
	for i, slot := range strings.Split(args, "/") {
		if slot == skipSlot || slot == "" {
			continue
		}
		switch i {
		case 0:
			s.Put(style.FontSize, style.String(n.Px(slot)))
		case 1:
			s.Put(style.LineHeight, style.String(lineHeight(n, slot)))
		case 2:
			s.Put(style.LetterSpacing, style.String(n.PercentToEm(slot)))
		}
	}
	return s
}

func lineHeight(n value.Normalizer, slot string) string {
	if value.IsNumeric(slot) {
		if f, err := strconv.ParseFloat(slot, 64); err == nil && f < UnitlessLineHeightLimit {
			return value.Number(f)
		}
	}
	return n.Px(slot)
}
