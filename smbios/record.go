// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smbios

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// A Field is a single named value decoded from a Structure.
type Field struct {
	Key   string
	Value interface{}
}

// Fields is an ordered set of decoded values. Values are strings, integers,
// floats, or string slices. Fields serialize as objects whose keys keep
// their decode order.
type Fields []Field

// Get returns the value stored under key.
func (fs Fields) Get(key string) (interface{}, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set stores v under key, replacing an existing value in place.
func (fs *Fields) Set(key string, v interface{}) {
	for i := range *fs {
		if (*fs)[i].Key == key {
			(*fs)[i].Value = v
			return
		}
	}
	*fs = append(*fs, Field{Key: key, Value: v})
}

// Add stores v under key unless key is already present.
func (fs *Fields) Add(key string, v interface{}) {
	if _, ok := fs.Get(key); ok {
		return
	}
	*fs = append(*fs, Field{Key: key, Value: v})
}

// Map returns fs as an unordered map.
func (fs Fields) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Value
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (fs Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (fs Fields) MarshalYAML() (interface{}, error) {
	return fs.yamlNode()
}

func (fs Fields) yamlNode() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fs {
		v, err := yamlValue(f.Value)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, yamlString(f.Key), v)
	}

	return n, nil
}

// yamlValue builds the node for a field value. Strings must not go through
// yaml.Node.Encode, which rejects some of them, such as "\n8".
func yamlValue(v interface{}) (*yaml.Node, error) {
	switch v := v.(type) {
	case string:
		return yamlString(v), nil
	case []string:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, s := range v {
			n.Content = append(n.Content, yamlString(s))
		}
		return n, nil
	case Fields:
		return v.yamlNode()
	case []Fields:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, fs := range v {
			c, err := fs.yamlNode()
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	}

	n := new(yaml.Node)
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// yamlString returns a string scalar, double quoted when it holds control
// characters so they are escaped rather than folded into block scalars.
func yamlString(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// A Record is one decoded Structure: its object type name and its fields.
// The fields include the object_type tag and the structure's type and
// handle.
type Record struct {
	ObjectType string `json:"object_type" yaml:"object_type"`
	Fields     Fields `json:"fields" yaml:"fields"`
}
