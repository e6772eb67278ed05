// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the version of the config file format that
// [Save] writes. Files of a later major version can not be opened.
const FormatVersion = "1.0.0"

// ErrVersion is returned when opening a config file
// of an unsupported format version.
var ErrVersion = errors.New("config: unsupported format version")

// CheckVersion returns an error if the given format version can not be
// read by this package. An empty version is taken to be [FormatVersion].
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrVersion, version, err)
	}
	if cur := semver.MustParse(FormatVersion); v.Major() > cur.Major() {
		return fmt.Errorf("%w: %s is newer than %s", ErrVersion, v, cur)
	}
	return nil
}
