/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package style provides the ordered declaration set produced by rules.
package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a declaration value: either a string, which already carries any
// unit or function wrapper, or a bare number.
type Value struct {
	str   string
	num   float64
	isNum bool
}

// String returns a string value.
func String(s string) Value {
	return Value{str: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{num: f, isNum: true}
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.isNum
}

// Float returns the numeric value and whether v holds a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.isNum
}

// String returns the CSS text of the value.
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON encodes numbers as JSON numbers and everything else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return []byte(v.String()), nil
	}
	return json.Marshal(v.str)
}

// Declaration is a single property/value pair.
type Declaration struct {
	Property Property
	Value    Value
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s;", d.Property, d.Value)
}

// Set is an ordered list of declarations with unique properties.
// The zero value is an empty set.
type Set struct {
	decls []Declaration
}

// New returns a set holding decls. Later duplicates replace earlier ones.
func New(decls ...Declaration) Set {
	var s Set
	for _, d := range decls {
		s.Put(d.Property, d.Value)
	}
	return s
}

// Put sets p to v. An existing property keeps its position.
func (s *Set) Put(p Property, v Value) {
	for i := range s.decls {
		if s.decls[i].Property == p {
			s.decls[i].Value = v
			return
		}
	}
	s.decls = append(s.decls, Declaration{Property: p, Value: v})
}

// Delete removes p. Deleting a missing property is a no-op.
func (s *Set) Delete(p Property) {
	for i := range s.decls {
		if s.decls[i].Property == p {
			s.decls = append(s.decls[:i:i], s.decls[i+1:]...)
			return
		}
	}
}

// Get returns the value of p.
func (s Set) Get(p Property) (Value, bool) {
	for _, d := range s.decls {
		if d.Property == p {
			return d.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether p is set.
func (s Set) Has(p Property) bool {
	_, ok := s.Get(p)
	return ok
}

// Len returns the number of declarations.
func (s Set) Len() int {
	return len(s.decls)
}

// Declarations returns a copy of the declarations in order.
func (s Set) Declarations() []Declaration {
	out := make([]Declaration, len(s.decls))
	copy(out, s.decls)
	return out
}

// Properties returns the property names in order.
func (s Set) Properties() []Property {
	out := make([]Property, len(s.decls))
	for i, d := range s.decls {
		out[i] = d.Property
	}
	return out
}

// Map returns the declarations as a map of CSS text values.
func (s Set) Map() map[string]string {
	out := make(map[string]string, len(s.decls))
	for _, d := range s.decls {
		out[string(d.Property)] = d.Value.String()
	}
	return out
}

// WriteCSS writes one "property: value;" line per declaration, each prefixed by indent.
func (s Set) WriteCSS(w io.Writer, indent string) error {
	for _, d := range s.decls {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, d); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the set as a JSON object, preserving declaration order.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range s.decls {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(d.Property))
		if err != nil {
			return nil, err
		}
		val, err := d.Value.MarshalJSON()
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

// YAMLNode returns the set as an ordered YAML mapping node.
func (s Set) YAMLNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, d := range s.decls {
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.Value.String()}
		if f, ok := d.Value.Float(); ok {
			val.Tag = "!!float"
			if f == math.Trunc(f) {
				val.Tag = "!!int"
			}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(d.Property)},
			val,
		)
	}
	return node
}

// MarshalYAML implements yaml.Marshaler.
func (s Set) MarshalYAML() (any, error) {
	return s.YAMLNode(), nil
}
