// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"strconv"
	"strings"
)

var _FormatsValues = []Formats{FormatJSON, FormatCSS, FormatPNG}

var _FormatsNames = map[Formats]string{FormatJSON: `json`, FormatCSS: `css`, FormatPNG: `png`}

var _FormatsNameToValueMap = map[string]Formats{`json`: FormatJSON, `css`: FormatCSS, `png`: FormatPNG}

var _FormatsDescMap = map[Formats]string{
	FormatJSON: `FormatJSON is a JSON object mapping each color name to an object mapping each step id to its hex.`,
	FormatCSS:  `FormatCSS is a :root rule declaring one custom property per shade.`,
	FormatPNG:  `FormatPNG is a swatch sheet image; see [Sheet].`,
}

// String returns the string representation of this Formats value.
func (i Formats) String() string {
	if s, ok := _FormatsNames[i]; ok {
		return s
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Formats value from its string representation,
// and returns an error if the string is invalid.
func (i *Formats) SetString(s string) error {
	if v, ok := _FormatsNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Formats", s)
}

// Desc returns the description of the Formats value.
func (i Formats) Desc() string {
	return _FormatsDescMap[i]
}

// Values returns all possible values for the type Formats.
func (i Formats) Values() []Formats {
	return _FormatsValues
}

// IsValid returns whether the value is a valid option for type Formats.
func (i Formats) IsValid() bool {
	_, ok := _FormatsNames[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Formats) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Formats) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
