/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/adorable/rule"
	"bennypowers.dev/adorable/style"
)

// match runs token through the default table and returns the declarations as text.
func match(t *testing.T, token string) map[string]string {
	t.Helper()
	decls, ok := rule.Match(token)
	require.True(t, ok, "expected %q to match a rule", token)
	return decls.Map()
}

func TestMatch_Scalars(t *testing.T) {
	tests := []struct {
		token    string
		expected map[string]string
	}{
		{"c(red)", map[string]string{"color": "red"}},
		{"c(primary)", map[string]string{"color": "var(--primary)"}},
		{"c(#000.5)", map[string]string{"color": "rgba(0,0,0,0.5)"}},
		{"bg(#fff)", map[string]string{"background-color": "#fff"}},
		{"caret-color(accent)", map[string]string{"caret-color": "var(--accent)"}},
		{"m(10/auto)", map[string]string{"margin": "10px auto"}},
		{"mt(8)", map[string]string{"margin-top": "8px"}},
		{"mr(-4)", map[string]string{"margin-right": "-4px"}},
		{"mb(1em)", map[string]string{"margin-bottom": "1em"}},
		{"ml(gap)", map[string]string{"margin-left": "var(--gap)"}},
		{"p(8/16/8/16)", map[string]string{"padding": "8px 16px 8px 16px"}},
		{"pt(0)", map[string]string{"padding-top": "0"}},
		{"pr(4)", map[string]string{"padding-right": "4px"}},
		{"pb(4)", map[string]string{"padding-bottom": "4px"}},
		{"pl(4)", map[string]string{"padding-left": "4px"}},
		{"b(1+solid+red)", map[string]string{"border": "1px solid red"}},
		{"bt(2)", map[string]string{"border-top": "2px solid currentColor"}},
		{"br(dashed)", map[string]string{"border-right": "1px dashed currentColor"}},
		{"bb(none)", map[string]string{"border-bottom": "none"}},
		{"bl(#ccc)", map[string]string{"border-left": "1px solid #ccc"}},
		{"r(4)", map[string]string{"border-radius": "4px"}},
		{"r(50%)", map[string]string{"border-radius": "50%"}},
		{"top(10)", map[string]string{"top": "10px"}},
		{"left(50%)", map[string]string{"left": "50%"}},
		{"right(0)", map[string]string{"right": "0"}},
		{"bottom(gutter)", map[string]string{"bottom": "var(--gutter)"}},
		{"box-shadow(0+2px+4px+#000.2)", map[string]string{"box-shadow": "0 2px 4px #000.2"}},
		{"backdrop-blur(8)", map[string]string{"backdrop-filter": "blur(8px)"}},
		{"invert(1)", map[string]string{"filter": "invert(1)"}},
		{"invert(dim)", map[string]string{"filter": "invert(var(--dim))"}},
		{"space(16)", map[string]string{"width": "16px", "height": "16px"}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, match(t, tt.token))
		})
	}
}

func TestMatch_CornerPairs(t *testing.T) {
	tests := []struct {
		token string
		a, b  style.Property
	}{
		{"rt(6)", style.BorderTopLeftRadius, style.BorderTopRightRadius},
		{"rr(6)", style.BorderTopRightRadius, style.BorderBottomRightRadius},
		{"rb(6)", style.BorderBottomLeftRadius, style.BorderBottomRightRadius},
		{"rl(6)", style.BorderTopLeftRadius, style.BorderBottomLeftRadius},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			decls, ok := rule.Match(tt.token)
			require.True(t, ok)
			assert.Equal(t, []style.Property{tt.a, tt.b}, decls.Properties())
			a, _ := decls.Get(tt.a)
			b, _ := decls.Get(tt.b)
			assert.Equal(t, "6px", a.String())
			assert.Equal(t, a, b)
		})
	}
}

func TestMatch_Unitless(t *testing.T) {
	decls, ok := rule.Match("z(10)")
	require.True(t, ok)
	z, _ := decls.Get(style.ZIndex)
	assert.Equal(t, style.Number(10), z)

	decls, ok = rule.Match("opacity(.5)")
	require.True(t, ok)
	o, _ := decls.Get(style.Opacity)
	assert.Equal(t, style.Number(0.5), o)

	decls, ok = rule.Match("z(modal)")
	require.True(t, ok)
	z, _ = decls.Get(style.ZIndex)
	assert.Equal(t, style.String("var(--modal)"), z)
}

func TestMatch_SizeRange(t *testing.T) {
	tests := []struct {
		token    string
		expected map[string]string
	}{
		{"w(100~300)", map[string]string{"min-width": "100px", "max-width": "300px"}},
		{"w(~300)", map[string]string{"max-width": "300px"}},
		{"w(100~)", map[string]string{"min-width": "100px"}},
		{"w(200)", map[string]string{"width": "200px"}},
		{"w(50%)", map[string]string{"width": "50%"}},
		{"h(100~300)", map[string]string{"min-height": "100px", "max-height": "300px"}},
		{"h(~50vh)", map[string]string{"max-height": "50vh"}},
		{"h(40~)", map[string]string{"min-height": "40px"}},
		{"h(auto)", map[string]string{"height": "auto"}},
		{"w(~)", map[string]string{}},
		{"w(1~2~3)", map[string]string{"min-width": "1px", "max-width": "2px"}},
		{"h(~50~)", map[string]string{"max-height": "50px"}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, match(t, tt.token))
		})
	}
}

func TestMatch_Font(t *testing.T) {
	tests := []struct {
		token    string
		expected map[string]string
	}{
		{"font(14/1.4/2%)", map[string]string{"font-size": "14px", "line-height": "1.4", "letter-spacing": "0.02em"}},
		{"font(14/20)", map[string]string{"font-size": "14px", "line-height": "20px"}},
		{"font(14/4)", map[string]string{"font-size": "14px", "line-height": "4px"}},
		{"font(14/3.99)", map[string]string{"font-size": "14px", "line-height": "3.99"}},
		{"font(14/-/2%)", map[string]string{"font-size": "14px", "letter-spacing": "0.02em"}},
		{"font(-/1.5)", map[string]string{"line-height": "1.5"}},
		{"font(14)", map[string]string{"font-size": "14px"}},
		{"font(1rem/1.5em)", map[string]string{"font-size": "1rem", "line-height": "1.5em"}},
		{"font(body/leading)", map[string]string{"font-size": "var(--body)", "line-height": "var(--leading)"}},
		{"font(-)", map[string]string{}},
		{"font(14//2%)", map[string]string{"font-size": "14px", "letter-spacing": "0.02em"}},
		{"font(12/1/1%/extra)", map[string]string{"font-size": "12px", "line-height": "1", "letter-spacing": "0.01em"}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, match(t, tt.token))
		})
	}
}

func TestMatch_FontWeights(t *testing.T) {
	weights := map[string]string{
		"thin":     "200",
		"light":    "300",
		"regular":  "normal",
		"medium":   "500",
		"semibold": "600",
		"bold":     "bold",
		"heavy":    "900",
	}

	for token, w := range weights {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, map[string]string{"font-weight": w}, match(t, token))
		})
	}
}

func TestMatch_Layer(t *testing.T) {
	tests := []struct {
		token    string
		expected []style.Property
	}{
		{"layer", []style.Property{style.Position, style.Top, style.Right, style.Bottom, style.Left}},
		{"layer(top)", []style.Property{style.Position, style.Top, style.Right, style.Left}},
		{"layer(top+left)", []style.Property{style.Position, style.Top, style.Left}},
		{"layer(left+top)", []style.Property{style.Position, style.Top, style.Left}},
		{"layer(right)", []style.Property{style.Position, style.Top, style.Right, style.Bottom}},
		{"layer(top+top)", []style.Property{style.Position, style.Top, style.Right, style.Left}},
		{"layer(bottom+right)", []style.Property{style.Position, style.Right, style.Bottom}},
		{"layer(top+bottom+left+right)", []style.Property{style.Position}},
		{"layer(unknown)", []style.Property{style.Position, style.Top, style.Right, style.Bottom, style.Left}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			decls, ok := rule.Match(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.expected, decls.Properties())

			pos, _ := decls.Get(style.Position)
			assert.Equal(t, style.String("absolute"), pos)
			for _, p := range tt.expected[1:] {
				v, _ := decls.Get(p)
				assert.Equal(t, style.Number(0), v, "offset %s", p)
			}
		})
	}
}

func TestMatch_Keywords(t *testing.T) {
	tests := []struct {
		token    string
		expected map[string]string
	}{
		{"pack", map[string]string{"display": "flex", "justify-content": "center", "align-items": "center"}},
		{"nowrap", map[string]string{"white-space": "nowrap"}},
		{"nowrap...", map[string]string{"white-space": "nowrap", "text-overflow": "ellipsis", "overflow": "hidden"}},
		{"no-border", map[string]string{"border": "none", "outline": "none"}},
		{"none", map[string]string{"display": "none"}},
		{"cover", map[string]string{
			"background-size":     "cover",
			"background-position": "center",
			"background-repeat":   "no-repeat",
			"object-fit":          "cover",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, match(t, tt.token))
		})
	}
}

func TestMatch_NoMatch(t *testing.T) {
	tokens := []string{
		"",
		"unknown",
		"unknown(1)",
		"c",
		"c()",
		"c(red",
		"c(red blue)",
		"w(1 2)",
		"pack(1)",
		"nowrap..",
		"layer()",
		" c(red)",
		"C(red)",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			decls, ok := rule.Match(token)
			assert.False(t, ok)
			assert.Equal(t, 0, decls.Len())
		})
	}
}

func TestMatch_NestedParens(t *testing.T) {
	assert.Equal(t, map[string]string{"color": "rgb(0,0,0)"}, match(t, "c(rgb(0,0,0))"))
	assert.Equal(t, map[string]string{"width": "calc(100%-20px)"}, match(t, "w(calc(100%-20px))"))
}
