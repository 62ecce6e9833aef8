// SPDX-License-Identifier: EPL-2.0

package palette

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type schemeFile struct {
	Schemes map[string]Scheme `toml:"schemes" yaml:"schemes"`
}

// LoadSchemes decodes a scheme file. format is "toml", "yaml" or "yml".
//
//	[schemes."Night".normal]
//	hue_offset = 160
//	lightness_scale = 255
func LoadSchemes(r io.Reader, format string) (map[string]Scheme, error) {
	var file schemeFile

	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("decoding toml schemes: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml schemes: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if file.Schemes == nil {
		file.Schemes = map[string]Scheme{}
	}

	return file.Schemes, nil
}

// LoadSchemesFile reads a scheme file, choosing the format by extension.
func LoadSchemesFile(path string) (map[string]Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scheme file: %w", err)
	}
	defer f.Close()

	return LoadSchemes(f, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Merge returns base overlaid with extra; extra wins on name clashes.
func Merge(base, extra map[string]Scheme) map[string]Scheme {
	out := make(map[string]Scheme, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}

	return out
}
