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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/digitalocean/go-dmidecode/smbios"
)

// Output formats.
const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

var renderers = map[string]func(io.Writer, []smbios.Record) error{
	formatJSON:  renderJSON,
	formatYAML:  renderYAML,
	formatTable: renderTable,
}

// renderJSON writes one indented JSON object per record.
func renderJSON(w io.Writer, records []smbios.Record) error {
	for _, r := range records {
		b, err := json.MarshalIndent(r.Fields, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", r.ObjectType, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}

	return nil
}

// renderYAML writes the records as a single YAML sequence.
func renderYAML(w io.Writer, records []smbios.Record) error {
	fields := make([]smbios.Fields, 0, len(records))
	for _, r := range records {
		fields = append(fields, r.Fields)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fields); err != nil {
		return err
	}

	return enc.Close()
}

// renderTable writes one table per record.
func renderTable(w io.Writer, records []smbios.Record) error {
	for _, r := range records {
		t := table.NewWriter()
		t.SetTitle(r.ObjectType)
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, f := range r.Fields {
			if f.Key == "object_type" {
				continue
			}
			t.AppendRow(table.Row{f.Key, cell(f.Value)})
		}
		t.SetStyle(table.StyleLight)

		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	return nil
}

// cell renders a field value for a table cell, one list element per line.
func cell(v interface{}) string {
	switch v := v.(type) {
	case []string:
		return strings.Join(v, "\n")
	case []smbios.Fields:
		lines := make([]string, 0, len(v))
		for _, fs := range v {
			parts := make([]string, 0, len(fs))
			for _, f := range fs {
				parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
			}
			lines = append(lines, strings.Join(parts, " "))
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprint(v)
	}
}
