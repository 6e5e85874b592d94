/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package style

// Property is a CSS property name.
type Property string

// Color and background.
const (
	Color              Property = "color"
	BackgroundColor    Property = "background-color"
	CaretColor         Property = "caret-color"
	BackgroundSize     Property = "background-size"
	BackgroundPosition Property = "background-position"
	BackgroundRepeat   Property = "background-repeat"
	ObjectFit          Property = "object-fit"
)

// Box model.
const (
	Margin       Property = "margin"
	MarginTop    Property = "margin-top"
	MarginRight  Property = "margin-right"
	MarginBottom Property = "margin-bottom"
	MarginLeft   Property = "margin-left"

	Padding       Property = "padding"
	PaddingTop    Property = "padding-top"
	PaddingRight  Property = "padding-right"
	PaddingBottom Property = "padding-bottom"
	PaddingLeft   Property = "padding-left"

	Border       Property = "border"
	BorderTop    Property = "border-top"
	BorderRight  Property = "border-right"
	BorderBottom Property = "border-bottom"
	BorderLeft   Property = "border-left"
	Outline      Property = "outline"

	BorderRadius            Property = "border-radius"
	BorderTopLeftRadius     Property = "border-top-left-radius"
	BorderTopRightRadius    Property = "border-top-right-radius"
	BorderBottomRightRadius Property = "border-bottom-right-radius"
	BorderBottomLeftRadius  Property = "border-bottom-left-radius"

	Width     Property = "width"
	Height    Property = "height"
	MinWidth  Property = "min-width"
	MaxWidth  Property = "max-width"
	MinHeight Property = "min-height"
	MaxHeight Property = "max-height"
)

// Positioning.
const (
	Position Property = "position"
	Top      Property = "top"
	Right    Property = "right"
	Bottom   Property = "bottom"
	Left     Property = "left"
	ZIndex   Property = "z-index"
)

// Typography.
const (
	FontSize      Property = "font-size"
	FontWeight    Property = "font-weight"
	LineHeight    Property = "line-height"
	LetterSpacing Property = "letter-spacing"
	WhiteSpace    Property = "white-space"
	TextOverflow  Property = "text-overflow"
)

// Layout and effects.
const (
	Display        Property = "display"
	FlexFlow       Property = "flex-flow"
	FlexDirection  Property = "flex-direction"
	AlignItems     Property = "align-items"
	JustifyContent Property = "justify-content"
	Overflow       Property = "overflow"
	BoxShadow      Property = "box-shadow"
	BackdropFilter Property = "backdrop-filter"
	Filter         Property = "filter"
	Opacity        Property = "opacity"
)
