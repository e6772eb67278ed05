// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorimetry

import (
	"fmt"
	"strconv"
	"strings"
)

var _SpaceValues = []Space{LCh, OKLCh}

var _SpaceNames = map[Space]string{LCh: `lch`, OKLCh: `oklch`}

var _SpaceNameToValueMap = map[string]Space{`lch`: LCh, `oklch`: OKLCh}

var _SpaceDescMap = map[Space]string{
	LCh:   `LCh is the CIE L*C*h° space (cylindrical CIELAB), with lightness 0-100 and chroma up to about 150.`,
	OKLCh: `OKLCh is the cylindrical form of the perceptually uniform OKLab space, with lightness 0-1 and chroma up to about 0.37.`,
}

// String returns the string representation of this Space value.
func (i Space) String() string {
	if s, ok := _SpaceNames[i]; ok {
		return s
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Space value from its string representation,
// and returns an error if the string is invalid.
func (i *Space) SetString(s string) error {
	if v, ok := _SpaceNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Space", s)
}

// Desc returns the description of the Space value.
func (i Space) Desc() string {
	return _SpaceDescMap[i]
}

// Values returns all possible values for the type Space.
func (i Space) Values() []Space {
	return _SpaceValues
}

// IsValid returns whether the value is a valid option for type Space.
func (i Space) IsValid() bool {
	_, ok := _SpaceNames[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Space) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Space) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
