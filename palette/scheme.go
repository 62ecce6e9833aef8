// SPDX-License-Identifier: EPL-2.0

package palette

import (
	"maps"
	"slices"
	"strings"
)

// StyleParams describes an HSL ramp on a 0-255 scale. Entry t in [0,1]
// of the ramp is (HueOffset + t*HueScale, SaturationOffset +
// t*SaturationScale, LightnessOffset + t*LightnessScale), each
// truncated and clamped to 0-255.
type StyleParams struct {
	HueOffset        float64 `toml:"hue_offset" yaml:"hue_offset"`
	HueScale         float64 `toml:"hue_scale" yaml:"hue_scale"`
	SaturationOffset float64 `toml:"saturation_offset" yaml:"saturation_offset"`
	SaturationScale  float64 `toml:"saturation_scale" yaml:"saturation_scale"`
	LightnessOffset  float64 `toml:"lightness_offset" yaml:"lightness_offset"`
	LightnessScale   float64 `toml:"lightness_scale" yaml:"lightness_scale"`
}

// Scheme holds one ramp per rendering style.
type Scheme struct {
	Normal   StyleParams `toml:"normal" yaml:"normal"`
	Inactive StyleParams `toml:"inactive" yaml:"inactive"`
	Selected StyleParams `toml:"selected" yaml:"selected"`
	Primary  StyleParams `toml:"primary" yaml:"primary"`
}

// Params returns the ramp for style.
func (s Scheme) Params(style Style) (StyleParams, error) {
	switch style {
	case Normal:
		return s.Normal, nil
	case Inactive:
		return s.Inactive, nil
	case Selected:
		return s.Selected, nil
	case Primary:
		return s.Primary, nil
	}

	return StyleParams{}, ErrUnknownStyle
}

// DefaultScheme is used when no scheme name is given.
const DefaultScheme = "Default"

var builtin = map[string]Scheme{
	"Icy Blue": {
		Normal:   StyleParams{HueOffset: 150, SaturationOffset: 180, SaturationScale: 40, LightnessScale: 255},
		Inactive: StyleParams{HueOffset: 150, SaturationOffset: 40, LightnessScale: 160},
		Selected: StyleParams{HueOffset: 150, SaturationOffset: 200, SaturationScale: 55, LightnessOffset: 40, LightnessScale: 215},
		Primary:  StyleParams{HueOffset: 135, SaturationOffset: 160, LightnessOffset: 20, LightnessScale: 235},
	},
	"Green": {
		Normal:   StyleParams{HueOffset: 85, SaturationOffset: 180, LightnessScale: 255},
		Inactive: StyleParams{HueOffset: 85, SaturationOffset: 40, LightnessScale: 160},
		Selected: StyleParams{HueOffset: 85, SaturationOffset: 220, LightnessOffset: 45, LightnessScale: 210},
		Primary:  StyleParams{HueOffset: 70, SaturationOffset: 200, LightnessOffset: 20, LightnessScale: 235},
	},
	"Default": {
		Normal:   StyleParams{HueOffset: 170, HueScale: -170, SaturationOffset: 255, LightnessScale: 200},
		Inactive: StyleParams{HueOffset: 170, HueScale: -170, SaturationOffset: 80, LightnessScale: 160},
		Selected: StyleParams{HueOffset: 170, HueScale: -170, SaturationOffset: 255, LightnessOffset: 40, LightnessScale: 180},
		Primary:  StyleParams{HueOffset: 150, HueScale: -150, SaturationOffset: 255, LightnessOffset: 20, LightnessScale: 200},
	},
}

// Builtin returns a copy of the bundled schemes.
func Builtin() map[string]Scheme {
	return maps.Clone(builtin)
}

// Names returns the scheme names of schemes in sorted order.
func Names(schemes map[string]Scheme) []string {
	return slices.Sorted(maps.Keys(schemes))
}

// Lookup finds a scheme by exact name, then case-insensitively.
func Lookup(schemes map[string]Scheme, name string) (Scheme, bool) {
	if s, ok := schemes[name]; ok {
		return s, true
	}
	for k, s := range schemes {
		if strings.EqualFold(k, name) {
			return s, true
		}
	}

	return Scheme{}, false
}
