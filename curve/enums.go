// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"strconv"
	"strings"
)

var _ShapesValues = []Shapes{ShapeLinear, ShapeQuadratic, ShapeCubic, ShapeSine, ShapeExponential}

var _ShapesNames = map[Shapes]string{ShapeLinear: `linear`, ShapeQuadratic: `quadratic`, ShapeCubic: `cubic`, ShapeSine: `sine`, ShapeExponential: `exponential`}

var _ShapesNameToValueMap = map[string]Shapes{`linear`: ShapeLinear, `quadratic`: ShapeQuadratic, `cubic`: ShapeCubic, `sine`: ShapeSine, `exponential`: ShapeExponential}

var _ShapesDescMap = map[Shapes]string{ShapeLinear: `ShapeLinear is the identity, t.`, ShapeQuadratic: `ShapeQuadratic is t².`, ShapeCubic: `ShapeCubic is t³.`, ShapeSine: `ShapeSine is 1-cos(tπ/2).`, ShapeExponential: `ShapeExponential is 2^(10(t-1)), and exactly 0 at t = 0.`}

var _ShapesLabels = map[Shapes]string{ShapeLinear: `Linear`, ShapeQuadratic: `Quadratic`, ShapeCubic: `Cubic`, ShapeSine: `Sine`, ShapeExponential: `Exponential`}

// String returns the string representation of this Shapes value.
func (i Shapes) String() string {
	if s, ok := _ShapesNames[i]; ok {
		return s
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Shapes value from its string representation,
// and returns an error if the string is invalid.
func (i *Shapes) SetString(s string) error {
	if v, ok := _ShapesNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Shapes", s)
}

// Desc returns the description of the Shapes value.
func (i Shapes) Desc() string {
	return _ShapesDescMap[i]
}

// Label returns the human readable label of the Shapes value.
func (i Shapes) Label() string {
	if l, ok := _ShapesLabels[i]; ok {
		return l
	}
	return i.String()
}

// Values returns all possible values for the type Shapes.
func (i Shapes) Values() []Shapes {
	return _ShapesValues
}

// IsValid returns whether the value is a valid option for type Shapes.
func (i Shapes) IsValid() bool {
	_, ok := _ShapesNames[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Shapes) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Shapes) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

var _DirectionsValues = []Directions{EaseIn, EaseOut, EaseInOut}

var _DirectionsNames = map[Directions]string{EaseIn: `ease-in`, EaseOut: `ease-out`, EaseInOut: `ease-in-out`}

var _DirectionsNameToValueMap = map[string]Directions{`ease-in`: EaseIn, `ease-out`: EaseOut, `ease-in-out`: EaseInOut}

var _DirectionsDescMap = map[Directions]string{EaseIn: `EaseIn applies the shape as is: f(t).`, EaseOut: `EaseOut mirrors the shape: 1-f(1-t).`, EaseInOut: `EaseInOut applies the shape on the first half and its mirror on the second half.`}

var _DirectionsLabels = map[Directions]string{EaseIn: `Ease In`, EaseOut: `Ease Out`, EaseInOut: `Ease In-Out`}

// String returns the string representation of this Directions value.
func (i Directions) String() string {
	if s, ok := _DirectionsNames[i]; ok {
		return s
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Directions value from its string representation,
// and returns an error if the string is invalid.
func (i *Directions) SetString(s string) error {
	if v, ok := _DirectionsNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Directions", s)
}

// Desc returns the description of the Directions value.
func (i Directions) Desc() string {
	return _DirectionsDescMap[i]
}

// Label returns the human readable label of the Directions value.
func (i Directions) Label() string {
	if l, ok := _DirectionsLabels[i]; ok {
		return l
	}
	return i.String()
}

// Values returns all possible values for the type Directions.
func (i Directions) Values() []Directions {
	return _DirectionsValues
}

// IsValid returns whether the value is a valid option for type Directions.
func (i Directions) IsValid() bool {
	_, ok := _DirectionsNames[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Directions) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Directions) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

var _EasingsValues = []Easings{EasingLinear, EasingIn, EasingOut, EasingInOut}

var _EasingsNames = map[Easings]string{EasingLinear: `linear`, EasingIn: `ease-in`, EasingOut: `ease-out`, EasingInOut: `ease-in-out`}

var _EasingsNameToValueMap = map[string]Easings{`linear`: EasingLinear, `ease-in`: EasingIn, `ease-out`: EasingOut, `ease-in-out`: EasingInOut}

var _EasingsDescMap = map[Easings]string{EasingLinear: `EasingLinear spaces the contrasts evenly: t.`, EasingIn: `EasingIn bunches the contrasts toward the low end: t².`, EasingOut: `EasingOut bunches the contrasts toward the high end: 1-(1-t)².`, EasingInOut: `EasingInOut bunches the contrasts toward both ends.`}

var _EasingsLabels = map[Easings]string{EasingLinear: `Linear`, EasingIn: `Ease In`, EasingOut: `Ease Out`, EasingInOut: `Ease In-Out`}

// String returns the string representation of this Easings value.
func (i Easings) String() string {
	if s, ok := _EasingsNames[i]; ok {
		return s
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Easings value from its string representation,
// and returns an error if the string is invalid.
func (i *Easings) SetString(s string) error {
	if v, ok := _EasingsNameToValueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Easings", s)
}

// Desc returns the description of the Easings value.
func (i Easings) Desc() string {
	return _EasingsDescMap[i]
}

// Label returns the human readable label of the Easings value.
func (i Easings) Label() string {
	if l, ok := _EasingsLabels[i]; ok {
		return l
	}
	return i.String()
}

// Values returns all possible values for the type Easings.
func (i Easings) Values() []Easings {
	return _EasingsValues
}

// IsValid returns whether the value is a valid option for type Easings.
func (i Easings) IsValid() bool {
	_, ok := _EasingsNames[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Easings) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Easings) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
