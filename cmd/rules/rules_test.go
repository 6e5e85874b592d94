/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rules

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"bennypowers.dev/adorable/rule"
)

func filter(t *testing.T, pattern string) []*rule.Rule {
	t.Helper()
	rules, err := rule.Default.Filter(pattern)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rules
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"pack", "pack"},
		{"c", "c(…)"},
		{"layer", "layer[(…)]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := rule.Default.Lookup(tt.name)
			if !ok {
				t.Fatalf("rule %q not found", tt.name)
			}
			if got := usage(r); got != tt.expected {
				t.Errorf("usage(%s) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestOutputTable(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	if err := outputTable(&buf, filter(t, "nowrap*")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "nowrap ") || !strings.Contains(lines[0], "typography") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "nowrap... ") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestGroupByCategory(t *testing.T) {
	order, groups := groupByCategory(rule.Default.Rules())

	if len(order) == 0 || order[0] != rule.CategoryColor {
		t.Fatalf("expected color first, got %v", order)
	}
	seen := map[rule.Category]bool{}
	for _, cat := range order {
		if seen[cat] {
			t.Errorf("category %s listed twice", cat)
		}
		seen[cat] = true
	}

	total := 0
	for _, rs := range groups {
		total += len(rs)
	}
	if total != len(rule.Default.Rules()) {
		t.Errorf("expected %d grouped rules, got %d", len(rule.Default.Rules()), total)
	}
}

func TestOutputMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := outputMarkdown(&buf, filter(t, "{bg,pack}")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "## Color\n\n" +
		"| Rule | Description | Examples |\n" +
		"|------|-------------|----------|\n" +
		"| `bg(…)` | Background color | `bg(#fff)`, `bg(surface)` |\n" +
		"\n" +
		"## Layout\n\n" +
		"| Rule | Description | Examples |\n" +
		"|------|-------------|----------|\n" +
		"| `pack` | Center content on both axes | `pack` |\n"
	if buf.String() != expected {
		t.Errorf("markdown mismatch\ngot:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, filter(t, "w")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []struct {
		Name     string   `json:"name"`
		Category string   `json:"category"`
		Shape    string   `json:"shape"`
		Pattern  string   `json:"pattern"`
		Examples []string `json:"examples"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(decoded))
	}
	got := decoded[0]
	if got.Name != "w" || got.Category != "sizing" || got.Shape != "call" {
		t.Errorf("unexpected rule: %+v", got)
	}
	if got.Pattern != `^w\((\S+)\)$` {
		t.Errorf("unexpected pattern %q", got.Pattern)
	}
	if len(got.Examples) == 0 {
		t.Error("expected examples")
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	if err := Cmd.Flags().Set("format", "xml"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = Cmd.Flags().Set("format", "table") })

	if err := run(Cmd, nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
