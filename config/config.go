/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the adorable rule table.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/adorable/rule"
)

// Config represents the adorable configuration.
type Config struct {
	// Prefix is the CSS variable prefix for design token references.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Disable lists glob patterns of rule names to leave out of the table.
	Disable Patterns `yaml:"disable" json:"disable"`
}

// Patterns is a list of glob patterns.
// It can be written as a single string or as a list.
type Patterns []string

// UnmarshalYAML handles both string and list forms for Patterns.
func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = Patterns{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*p = list
	return nil
}

// UnmarshalJSON handles both string and list forms for Patterns.
func (p *Patterns) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Patterns{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*p = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// RuleOptions returns the rule table options for this configuration.
func (c *Config) RuleOptions() rule.Options {
	return rule.Options{
		Prefix:  c.Prefix,
		Disable: append([]string(nil), c.Disable...),
	}
}

// Table builds the rule table described by this configuration.
func (c *Config) Table() (*rule.Table, error) {
	return rule.New(c.RuleOptions())
}

// WithPrefix returns a copy of c using prefix, or c itself when prefix is empty.
func (c *Config) WithPrefix(prefix string) *Config {
	if prefix == "" {
		return c
	}
	out := *c
	out.Prefix = prefix
	return &out
}
