// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"fmt"
	"strconv"
	"strings"
)

var _StrategiesValues = []Strategies{Analytic, Bisect}

var _StrategiesNames = map[Strategies]string{Analytic: `analytic`, Bisect: `bisect`}

var _StrategiesNameToValueMap = map[string]Strategies{`analytic`: Analytic, `bisect`: Bisect}

var _StrategiesDescMap = map[Strategies]string{
	Analytic: `Analytic derives the lightness directly from the target luminance. It only applies to solid CIE LCh colors, where luminance depends on lightness alone.`,
	Bisect:   `Bisect searches the lightness axis for the closest contrast, reducing chroma at each candidate until it is in gamut.`,
}

// String returns the string representation of this Strategies value.
func (i Strategies) String() string {
	if s, ok := _StrategiesNames[i]; ok {
		return s
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Strategies value from its string representation,
// and returns an error if the string is invalid.
func (i *Strategies) SetString(s string) error {
	if v, ok := _StrategiesNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Strategies", s)
}

// Desc returns the description of the Strategies value.
func (i Strategies) Desc() string {
	return _StrategiesDescMap[i]
}

// Values returns all possible values for the type Strategies.
func (i Strategies) Values() []Strategies {
	return _StrategiesValues
}

// IsValid returns whether the value is a valid option for type Strategies.
func (i Strategies) IsValid() bool {
	_, ok := _StrategiesNames[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Strategies) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Strategies) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
