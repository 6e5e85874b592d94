/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the render command for adorable.
package render

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/adorable/config"
	"bennypowers.dev/adorable/fs"
	"bennypowers.dev/adorable/internal/logger"
	"bennypowers.dev/adorable/rule"
	"bennypowers.dev/adorable/style"
)

// Output formats.
const (
	FormatCSS  = "css"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render [tokens...]",
	Short: "Render style tokens as CSS",
	Long: `Render style tokens as CSS rules, JSON or YAML.

Tokens are read from the arguments, or from whitespace-separated words on
stdin when no arguments are given.

Examples:
  adorable render 'c(red)' 'w(100~300)' hbox
  echo 'font(14/1.4) bold' | adorable render --format yaml`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", FormatCSS, "Output format: css, json, yaml")
	Cmd.Flags().Bool("strict", false, "Fail when a token matches no rule")
}

// Result is a matched token and the declarations it expands to.
type Result struct {
	Token        string
	Declarations style.Set
}

// NoMatchError reports a token that matched no rule.
type NoMatchError struct {
	Token string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no rule matches %q", e.Token)
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")

	switch format {
	case FormatCSS, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q: want css, json or yaml", format)
	}

	tokens := args
	if len(tokens) == 0 {
		var err error
		tokens, err = readTokens(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading tokens: %w", err)
		}
	}

	cfg := config.LoadOrDefault(fs.NewOSFileSystem(), ".").WithPrefix(viper.GetString("prefix"))
	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("building rule table: %w", err)
	}

	results, err := Render(table, tokens, strict)
	if err != nil {
		return err
	}
	return Write(cmd.OutOrStdout(), format, results)
}

// readTokens splits r into whitespace-separated tokens.
func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	return tokens, scanner.Err()
}

// Render matches each distinct token against table, in input order.
// Unmatched tokens are logged, or collected into the returned error when
// strict is set.
func Render(table *rule.Table, tokens []string, strict bool) ([]Result, error) {
	var (
		results []Result
		errs    error
	)
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true

		r, decls, ok := table.MatchRule(token)
		if !ok {
			if strict {
				errs = multierr.Append(errs, &NoMatchError{Token: token})
			} else {
				logger.Warn("no rule matches %q", token)
			}
			continue
		}
		logger.Debug("%s matched rule %s", token, r.Name)
		results = append(results, Result{Token: token, Declarations: decls})
	}
	if errs != nil {
		return nil, errs
	}
	return results, nil
}

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatYAML:
		return writeYAML(w, results)
	default:
		return writeCSS(w, results)
	}
}

// Selector returns token as a class selector, escaping every character
// outside [A-Za-z0-9_-].
func Selector(token string) string {
	var b strings.Builder
	b.WriteByte('.')
	for _, r := range token {
		if isNameChar(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}

func isNameChar(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func writeCSS(w io.Writer, results []Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s {\n", Selector(r.Token)); err != nil {
			return err
		}
		if err := r.Declarations.WriteCSS(w, "  "); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}
	return nil
}

// document is the ordered token -> declarations mapping.
type document []Result

func (d document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Token)
		if err != nil {
			return nil, err
		}
		val, err := r.Declarations.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w io.Writer, results []Result) error {
	data, err := json.MarshalIndent(document(results), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, results []Result) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range results {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Token},
			r.Declarations.YAMLNode(),
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
