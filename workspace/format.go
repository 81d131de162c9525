// SPDX-License-Identifier: MIT

package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a workspace file.
type Format int

const (
	// FormatAuto picks the format from the file extension (Load only).
	FormatAuto Format = iota
	// FormatYAML is YAML 1.2 via gopkg.in/yaml.v3.
	FormatYAML
	// FormatTOML is TOML 1.0 via github.com/BurntSushi/toml.
	FormatTOML
)

// String returns "auto", "yaml" or "toml".
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// decode fills f from content. Unknown keys are rejected in both formats.
func decode(content []byte, format Format, f *File) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: yaml: %w", ErrDecode, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(content), f)
		if err != nil {
			return fmt.Errorf("%w: toml: %w", ErrDecode, err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("%w: toml: unknown key %q", ErrDecode, undec[0].String())
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return nil
}
