// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// Encoder is an interface for standard encoder types
type Encoder interface {
	// Encode encodes to io.Writer specified at creation
	Encode(v any) error
}

// EncoderFunc is a function that creates a new Encoder for given writer
type EncoderFunc func(w io.Writer) Encoder

// ErrFormat is returned for files whose extension is
// not one of .toml, .yaml or .yml.
var ErrFormat = errors.New("config: unsupported file format")

// DefaultPath is the config file used when none is given.
const DefaultPath = "~/.config/tonescale/config.toml"

// Format returns the decoder and encoder functions for the given
// filename, based on its extension. Unknown fields are an error
// when decoding, so that misspelled keys are not silently ignored.
func Format(filename string) (DecoderFunc, EncoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return func(r io.Reader) Decoder {
				return toml.NewDecoder(r).DisallowUnknownFields()
			}, func(w io.Writer) Encoder {
				return toml.NewEncoder(w)
			}, nil
	case ".yaml", ".yml":
		return func(r io.Reader) Decoder {
				d := yaml.NewDecoder(r)
				d.KnownFields(true)
				return d
			}, func(w io.Writer) Encoder {
				e := yaml.NewEncoder(w)
				e.SetIndent(2)
				return e
			}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrFormat, filename)
}

// Expand expands a leading ~ in the given path to the home directory.
func Expand(path string) (string, error) {
	return homedir.Expand(path)
}

// Open reads a config from the given file, choosing the format by
// extension. Values missing from the file keep their defaults (see [New]).
func Open(filename string) (*Config, error) {
	fn, err := Expand(filename)
	if err != nil {
		return nil, err
	}
	df, _, err := Format(fn)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	cfg := New()
	if err := Read(cfg, bufio.NewReader(fp), df); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	if err := CheckVersion(cfg.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	slog.Debug("opened config", "file", fn, "colors", len(cfg.Colors), "steps", len(cfg.Steps))
	return cfg, nil
}

// Read reads object encoding from the given reader,
// using the given [DecoderFunc]. An empty document is not an error.
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	err := d.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReadBytes reads object encoding from the given bytes,
// using the given [DecoderFunc]
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}

// Save writes the given config to the given file, choosing the format
// by extension and stamping it with [FormatVersion]. Missing parent
// directories are created.
func Save(filename string, cfg *Config) error {
	fn, err := Expand(filename)
	if err != nil {
		return err
	}
	_, ef, err := Format(fn)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return err
	}
	fp, err := os.Create(fn)
	if err != nil {
		return err
	}
	stamped := *cfg
	stamped.Version = FormatVersion
	bw := bufio.NewWriter(fp)
	err = Write(&stamped, bw, ef)
	if err == nil {
		err = bw.Flush()
	}
	return errors.Join(err, fp.Close())
}

// Write writes the object encoding to the given writer,
// using the given [EncoderFunc]
func Write(v any, writer io.Writer, f EncoderFunc) error {
	e := f(writer)
	if err := e.Encode(v); err != nil {
		return err
	}
	if c, ok := e.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
