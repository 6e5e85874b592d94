/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"slices"

	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

// Flex alignment keywords.
const (
	flexStart    = "flex-start"
	flexEnd      = "flex-end"
	center       = "center"
	stretch      = "stretch"
	spaceBetween = "space-between"
)

// boxFlags is the parsed flag list of an hbox or vbox token.
// Align and Justify are empty when no flag sets them.
type boxFlags struct {
	Align   string
	Justify string
	Reverse bool
}

// parseHBox reads hbox flags. Reverse is known before any other flag is
// read, so "left+reverse" and "reverse+left" agree. When flags compete for
// the same property, the later one wins.
func parseHBox(args string) boxFlags {
	flags := splitFlags(args)
	f := boxFlags{Reverse: slices.Contains(flags, "reverse")}
	for _, flag := range flags {
		switch flag {
		case "top":
			f.Align = flexStart
		case "bottom":
			f.Align = flexEnd
		case "fill", "stretch":
			f.Align = stretch
		case "space-between":
			f.Justify = spaceBetween
		case "center":
			f.Justify = center
		case "left":
			f.Justify = flexStart
			if f.Reverse {
				f.Justify = flexEnd
			}
		case "right":
			f.Justify = flexEnd
			if f.Reverse {
				f.Justify = flexStart
			}
		}
	}
	return f
}

// parseVBox reads vbox flags.
//
// top and bottom are not mirror images: top only justifies to the end when
// reversed and otherwise relies on the default start alignment, while bottom
// only justifies to the end when not reversed.
func parseVBox(args string) boxFlags {
	flags := splitFlags(args)
	f := boxFlags{Reverse: slices.Contains(flags, "reverse")}
	for _, flag := range flags {
		switch flag {
		case "left":
			f.Align = flexStart
		case "center":
			f.Align = center
		case "right":
			f.Align = flexEnd
		case "middle":
			f.Justify = center
		case "top":
			if f.Reverse {
				f.Justify = flexEnd
			}
		case "bottom":
			if !f.Reverse {
				f.Justify = flexEnd
			}
		}
	}
	return f
}

// declarations renders the flags for a flex container flowing in flow.
func (f boxFlags) declarations(flow, reversed string) style.Set {
	align := f.Align
	if align == "" {
		align = center
	}
	s := style.New(
		decl(style.Display, "flex"),
		decl(style.FlexFlow, flow),
		decl(style.AlignItems, align),
	)
	if f.Justify != "" {
		s.Put(style.JustifyContent, style.String(f.Justify))
	}
	if f.Reverse {
		s.Put(style.FlexDirection, style.String(reversed))
	}
	return s
}

func hbox(_ value.Normalizer, args string, _ bool) style.Set {
	return parseHBox(args).declarations("row", "row-reverse")
}

func vbox(_ value.Normalizer, args string, _ bool) style.Set {
	return parseVBox(args).declarations("column", "column-reverse")
}
