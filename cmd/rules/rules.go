/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rules provides the rules command for adorable.
package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/adorable/config"
	"bennypowers.dev/adorable/fs"
	"bennypowers.dev/adorable/rule"
)

// Cmd is the rules cobra command.
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule table",
	Long: `List the rules tokens are matched against, in match order.

Examples:
  adorable rules
  adorable rules --match 'b?'
  adorable rules --format markdown > RULES.md`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("match", "", "Only list rules whose name matches this glob")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, markdown, json")
}

var categoryColors = map[rule.Category]color.Attribute{
	rule.CategoryColor:      color.FgMagenta,
	rule.CategorySpacing:    color.FgGreen,
	rule.CategoryBorder:     color.FgYellow,
	rule.CategoryPosition:   color.FgBlue,
	rule.CategorySizing:     color.FgCyan,
	rule.CategoryTypography: color.FgRed,
	rule.CategoryEffects:    color.FgHiMagenta,
	rule.CategoryLayout:     color.FgHiBlue,
}

func run(cmd *cobra.Command, args []string) error {
	match, _ := cmd.Flags().GetString("match")
	format, _ := cmd.Flags().GetString("format")

	cfg := config.LoadOrDefault(fs.NewOSFileSystem(), ".").WithPrefix(viper.GetString("prefix"))
	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("building rule table: %w", err)
	}

	rules, err := table.Filter(match)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "table":
		return outputTable(out, rules)
	case "markdown":
		return outputMarkdown(out, rules)
	case "json":
		return outputJSON(out, rules)
	default:
		return fmt.Errorf("unknown format %q: want table, markdown or json", format)
	}
}

// usage shows the token form a rule accepts.
func usage(r *rule.Rule) string {
	switch r.Shape {
	case rule.Call:
		return r.Name + "(…)"
	case rule.OptionalCall:
		return r.Name + "[(…)]"
	default:
		return r.Name
	}
}

func outputTable(w io.Writer, rules []*rule.Rule) error {
	for _, r := range rules {
		cat := color.New(categoryColors[r.Category]).Sprintf("%-10s", r.Category)
		if _, err := fmt.Fprintf(w, "%-16s %s %s\n", usage(r), cat, r.Description); err != nil {
			return err
		}
	}
	return nil
}

// groupByCategory groups rules by category, in order of first appearance.
func groupByCategory(rules []*rule.Rule) ([]rule.Category, map[rule.Category][]*rule.Rule) {
	var order []rule.Category
	groups := make(map[rule.Category][]*rule.Rule)
	for _, r := range rules {
		if _, ok := groups[r.Category]; !ok {
			order = append(order, r.Category)
		}
		groups[r.Category] = append(groups[r.Category], r)
	}
	return order, groups
}

func outputMarkdown(w io.Writer, rules []*rule.Rule) error {
	title := cases.Title(language.English)
	order, groups := groupByCategory(rules)

	var b strings.Builder
	for i, cat := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", title.String(string(cat)))
		b.WriteString("| Rule | Description | Examples |\n")
		b.WriteString("|------|-------------|----------|\n")
		for _, r := range groups[cat] {
			examples := make([]string, len(r.Examples))
			for j, ex := range r.Examples {
				examples[j] = "`" + ex + "`"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n",
				usage(r),
				strings.ReplaceAll(r.Description, "|", `\|`),
				strings.Join(examples, ", "),
			)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func outputJSON(w io.Writer, rules []*rule.Rule) error {
	type ruleOutput struct {
		Name        string   `json:"name"`
		Category    string   `json:"category"`
		Shape       string   `json:"shape"`
		Pattern     string   `json:"pattern"`
		Description string   `json:"description"`
		Examples    []string `json:"examples,omitempty"`
	}

	output := make([]ruleOutput, 0, len(rules))
	for _, r := range rules {
		output = append(output, ruleOutput{
			Name:        r.Name,
			Category:    string(r.Category),
			Shape:       r.Shape.String(),
			Pattern:     r.Pattern().String(),
			Description: r.Description,
			Examples:    r.Examples,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
