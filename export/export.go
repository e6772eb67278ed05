// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes generated palettes as design tokens:
// JSON, CSS custom properties, or a PNG swatch sheet.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/tonescale/tonescale/palette"
)

// Formats are the supported export formats.
type Formats int32 //enums:enum -trim-prefix Format -transform lower

const (
	// FormatJSON is a JSON object mapping each color name
	// to an object mapping each step id to its hex.
	FormatJSON Formats = iota

	// FormatCSS is a :root rule declaring one
	// custom property per shade.
	FormatCSS

	// FormatPNG is a swatch sheet image; see [Sheet].
	FormatPNG
)

// Write writes the palette in the given format.
func Write(w io.Writer, f Formats, bases []palette.BaseColor, results []palette.Result) error {
	switch f {
	case FormatJSON:
		return JSON(w, bases, results)
	case FormatCSS:
		return CSS(w, bases, results)
	case FormatPNG:
		return PNG(w, Sheet(bases, results, DefaultSheetOptions()))
	}
	return fmt.Errorf("export: unknown format %v", f)
}

// FormatOf returns the format named by the extension of the given filename.
func FormatOf(filename string) (Formats, error) {
	var f Formats
	err := f.SetString(strings.TrimPrefix(filepath.Ext(filename), "."))
	return f, err
}

// Name returns the name that the results of the given base color
// are exported under: its name, or "color-" followed by the first
// four characters of its id if it has none.
func Name(bases []palette.BaseColor, id string) string {
	for _, b := range bases {
		if b.ID == id && b.Name != "" {
			return b.Name
		}
	}
	if len(id) > 4 {
		id = id[:4]
	}
	return "color-" + id
}

// JSON writes the palette as a JSON object of the form
// {"name": {"stepId": "#hex"}}, indented by two spaces. Colors and
// steps are written in palette order, so numeric step ids such as
// "160" ... "10" keep that order rather than being sorted; a later
// color with the same name as an earlier one replaces it.
func JSON(w io.Writer, bases []palette.BaseColor, results []palette.Result) error {
	type column struct {
		name  string
		steps []palette.StepResult
	}
	var cols []column
	index := map[string]int{}
	for _, r := range results {
		name := Name(bases, r.BaseColorID)
		if i, ok := index[name]; ok {
			cols[i].steps = r.Steps
			continue
		}
		index[name] = len(cols)
		cols = append(cols, column{name, r.Steps})
	}

	var b bytes.Buffer
	key := func(s string) {
		k, _ := json.Marshal(s)
		b.Write(k)
		b.WriteString(": ")
	}
	b.WriteString("{")
	for i, c := range cols {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n  ")
		key(c.name)
		if len(c.steps) == 0 {
			b.WriteString("{}")
			continue
		}
		b.WriteString("{")
		for j, s := range c.steps {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString("\n    ")
			key(s.StepID)
			v, _ := json.Marshal(s.Hex)
			b.Write(v)
		}
		b.WriteString("\n  }")
	}
	if len(cols) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

// CSSName returns the name that the results of the given base color
// are exported under in CSS: its name in kebab case, or the fallback
// of [Name] if it has none.
func CSSName(bases []palette.BaseColor, id string) string {
	for _, b := range bases {
		if b.ID == id && b.Name != "" {
			return strcase.ToKebab(b.Name)
		}
	}
	return Name(bases, id)
}

// Variable returns the name of the CSS custom property
// for the given color name and step id.
func Variable(name, stepID string) string {
	return "--" + name + "-" + stepID
}

// CSS writes the palette as custom properties of the :root rule.
func CSS(w io.Writer, bases []palette.BaseColor, results []palette.Result) error {
	var b bytes.Buffer
	b.WriteString(":root {\n")
	for _, r := range results {
		name := CSSName(bases, r.BaseColorID)
		for _, s := range r.Steps {
			fmt.Fprintf(&b, "  %s: %s;\n", Variable(name, s.StepID), s.Hex)
		}
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}
