/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule

import (
	"bennypowers.dev/adorable/style"
	"bennypowers.dev/adorable/value"
)

var (
	px     normalize = value.Normalizer.Px
	color  normalize = value.Normalizer.Color
	side   normalize = value.Normalizer.Side
	border normalize = value.Normalizer.Border
	cssvar normalize = value.Normalizer.CSSVar
)

// definitions returns the unbound rules in table order.
func definitions() []*Rule {
	return []*Rule{
		scalar("c", CategoryColor, style.Color, color, "Text color", "c(red)", "c(#000.5)", "c(primary)"),

		scalar("m", CategorySpacing, style.Margin, side, "Margin on all sides", "m(10)", "m(10/auto)"),
		scalar("mt", CategorySpacing, style.MarginTop, px, "Top margin", "mt(8)"),
		scalar("mr", CategorySpacing, style.MarginRight, px, "Right margin", "mr(8)"),
		scalar("mb", CategorySpacing, style.MarginBottom, px, "Bottom margin", "mb(8)"),
		scalar("ml", CategorySpacing, style.MarginLeft, px, "Left margin", "ml(8)"),

		scalar("p", CategorySpacing, style.Padding, side, "Padding on all sides", "p(10)", "p(8/16)"),
		scalar("pt", CategorySpacing, style.PaddingTop, px, "Top padding", "pt(8)"),
		scalar("pr", CategorySpacing, style.PaddingRight, px, "Right padding", "pr(8)"),
		scalar("pb", CategorySpacing, style.PaddingBottom, px, "Bottom padding", "pb(8)"),
		scalar("pl", CategorySpacing, style.PaddingLeft, px, "Left padding", "pl(8)"),

		scalar("b", CategoryBorder, style.Border, border, "Border on all sides", "b(1+solid+red)", "b(none)"),
		scalar("bt", CategoryBorder, style.BorderTop, border, "Top border", "bt(1)"),
		scalar("br", CategoryBorder, style.BorderRight, border, "Right border", "br(1)"),
		scalar("bb", CategoryBorder, style.BorderBottom, border, "Bottom border", "bb(2+dashed)"),
		scalar("bl", CategoryBorder, style.BorderLeft, border, "Left border", "bl(1)"),

		scalar("r", CategoryBorder, style.BorderRadius, side, "Border radius", "r(4)", "r(50%)"),
		corners("rt", style.BorderTopLeftRadius, style.BorderTopRightRadius, "Round the top corners", "rt(4)"),
		corners("rr", style.BorderTopRightRadius, style.BorderBottomRightRadius, "Round the right corners", "rr(4)"),
		corners("rb", style.BorderBottomLeftRadius, style.BorderBottomRightRadius, "Round the bottom corners", "rb(4)"),
		corners("rl", style.BorderTopLeftRadius, style.BorderBottomLeftRadius, "Round the left corners", "rl(4)"),

		unitless("z", CategoryPosition, style.ZIndex, "Stacking order", "z(10)", "z(modal)"),
		sizeRange("w", style.Width, style.MinWidth, style.MaxWidth, "Width, or min~max width", "w(200)", "w(100~300)", "w(~300)"),
		sizeRange("h", style.Height, style.MinHeight, style.MaxHeight, "Height, or min~max height", "h(40)", "h(100~)"),

		scalar("top", CategoryPosition, style.Top, px, "Top offset", "top(0)"),
		scalar("left", CategoryPosition, style.Left, px, "Left offset", "left(10)"),
		scalar("right", CategoryPosition, style.Right, px, "Right offset", "right(10)"),
		scalar("bottom", CategoryPosition, style.Bottom, px, "Bottom offset", "bottom(10)"),

		{
			Name:        "font",
			Category:    CategoryTypography,
			Shape:       Call,
			Description: "Font size, line height and letter spacing: size/lineHeight/letterSpacing",
			Examples:    []string{"font(14/1.4/2%)", "font(14/20)", "font(14/-/2%)"},
			generate:    font,
		},

		weight("thin", "200"),
		weight("light", "300"),
		weight("regular", "normal"),
		weight("medium", "500"),
		weight("semibold", "600"),
		weight("bold", "bold"),
		weight("heavy", "900"),

		scalar("box-shadow", CategoryEffects, style.BoxShadow, values, "Box shadow, components joined by +", "box-shadow(0+2+4+#000.2)"),
		scalar("caret-color", CategoryColor, style.CaretColor, color, "Caret color", "caret-color(primary)"),
		function("backdrop-blur", style.BackdropFilter, "blur", px, "Backdrop blur radius", "backdrop-blur(8)"),
		function("invert", style.Filter, "invert", cssvar, "Invert filter amount", "invert(1)"),
		unitless("opacity", CategoryEffects, style.Opacity, "Opacity", "opacity(.5)"),
		scalar("bg", CategoryColor, style.BackgroundColor, color, "Background color", "bg(#fff)", "bg(surface)"),

		{
			Name:        "layer",
			Category:    CategoryPosition,
			Shape:       OptionalCall,
			Description: "Absolute overlay pinned to all edges; side flags anchor to an edge",
			Examples:    []string{"layer", "layer(top+left)"},
			generate:    layer,
		},
		{
			Name:        "hbox",
			Category:    CategoryLayout,
			Shape:       OptionalCall,
			Description: "Horizontal flex container: top, bottom, fill, stretch, left, right, center, space-between, reverse",
			Examples:    []string{"hbox", "hbox(left+reverse)", "hbox(space-between)"},
			generate:    hbox,
		},
		{
			Name:        "vbox",
			Category:    CategoryLayout,
			Shape:       OptionalCall,
			Description: "Vertical flex container: left, center, right, top, middle, bottom, reverse",
			Examples:    []string{"vbox", "vbox(top+reverse)", "vbox(bottom)"},
			generate:    vbox,
		},
		keyword("pack", CategoryLayout, "Center content on both axes",
			decl(style.Display, "flex"),
			decl(style.JustifyContent, "center"),
			decl(style.AlignItems, "center"),
		),
		{
			Name:        "space",
			Category:    CategorySizing,
			Shape:       Call,
			Description: "Square spacer: equal width and height",
			Examples:    []string{"space(16)"},
			generate:    space,
		},
		keyword("nowrap", CategoryTypography, "Prevent wrapping",
			decl(style.WhiteSpace, "nowrap"),
		),
		keyword("nowrap...", CategoryTypography, "Single line with ellipsis",
			decl(style.WhiteSpace, "nowrap"),
			decl(style.TextOverflow, "ellipsis"),
			decl(style.Overflow, "hidden"),
		),
		keyword("no-border", CategoryBorder, "Remove border and outline",
			decl(style.Border, "none"),
			decl(style.Outline, "none"),
		),
		keyword("none", CategoryLayout, "Hide the element",
			decl(style.Display, "none"),
		),
		keyword("cover", CategoryEffects, "Cover-fit background and media",
			decl(style.BackgroundSize, "cover"),
			decl(style.BackgroundPosition, "center"),
			decl(style.BackgroundRepeat, "no-repeat"),
			decl(style.ObjectFit, "cover"),
		),
	}
}

// keyword is a bare token with fixed declarations.
func keyword(name string, cat Category, desc string, decls ...style.Declaration) *Rule {
	return &Rule{
		Name:        name,
		Category:    cat,
		Shape:       Keyword,
		Description: desc,
		Examples:    []string{name},
		generate:    fixed(decls...),
	}
}

// weight is a font-weight keyword.
func weight(name, w string) *Rule {
	return keyword(name, CategoryTypography, "font-weight: "+w, decl(style.FontWeight, w))
}
