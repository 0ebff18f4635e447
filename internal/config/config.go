// Package config loads table formatting options from TOML files and
// watches them for live reload.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/tablestorm/internal/table"
)

// Options are the host-supplied table formatting settings.
type Options struct {
	// DefaultAlignment applies to data columns without explicit alignment.
	DefaultAlignment table.Alignment `toml:"default_alignment"`

	// CustomBorders overrides border characters per role. Recognized keys:
	// "vline", "hline_out", "hline_in".
	CustomBorders map[string]string `toml:"custom_border_chars"`

	// SpacesInsideBorder pads data cells with a space on each side.
	SpacesInsideBorder bool `toml:"spaces_inside_border"`
}

// Default returns the built-in options.
func Default() *Options {
	return &Options{
		DefaultAlignment:   table.AlignNone,
		SpacesInsideBorder: true,
	}
}

// ApplyBorders overlays any configured custom border characters onto a
// dialect's defaults.
func (o *Options) ApplyBorders(b table.Borders) table.Borders {
	if v, ok := o.CustomBorders["vline"]; ok {
		b.Vline = v
	}
	if v, ok := o.CustomBorders["hline_out"]; ok {
		b.HlineOut = v
	}
	if v, ok := o.CustomBorders["hline_in"]; ok {
		b.HlineIn = v
	}
	return b
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads options from a TOML file. A missing file is not an error and
// yields the defaults; a malformed file fails with a ParseError.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes options from TOML data, filling unset fields with defaults.
func Parse(path string, data []byte) (*Options, error) {
	opts := Default()
	if err := toml.Unmarshal(data, opts); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return opts, nil
}
