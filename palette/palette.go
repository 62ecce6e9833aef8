// SPDX-License-Identifier: EPL-2.0

package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPrecision gives 65-entry ramps.
const DefaultPrecision = 6

// Palette is a precomputed colour ramp indexed by intensity.
type Palette struct {
	colors []color.RGBA
	factor int
}

// New builds a ramp of (1<<prec)+1 colours from p.
func New(p StyleParams, prec int) *Palette {
	factor := 1 << prec
	colors := make([]color.RGBA, factor+1)

	for i := range colors {
		t := float64(i) / float64(factor)
		h := channel(p.HueOffset + t*p.HueScale)
		s := channel(p.SaturationOffset + t*p.SaturationScale)
		l := channel(p.LightnessOffset + t*p.LightnessScale)

		c := colorful.Hsl(float64(h)*360/256, float64(s)/255, float64(l)/255).Clamped()
		r, g, b := c.RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}

	return &Palette{colors: colors, factor: factor}
}

// channel truncates toward zero and clamps to 0-255.
func channel(v float64) int {
	return min(max(int(v), 0), 255)
}

// ColorAt maps an intensity in [0,1] to a colour; values outside the
// range are clamped.
func (p *Palette) ColorAt(v float32) color.RGBA {
	i := min(max(int(v*float32(p.factor)), 0), p.factor)
	return p.colors[i]
}

// Len is the number of ramp entries.
func (p *Palette) Len() int { return len(p.colors) }

// Set holds one palette per Style, built from a single scheme.
type Set struct {
	name     string
	palettes [StyleCount]*Palette
}

// NewSet builds the palettes of the named scheme. A prec of 0 or less
// uses DefaultPrecision.
func NewSet(name string, schemes map[string]Scheme, prec int) (*Set, error) {
	scheme, ok := Lookup(schemes, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	if prec <= 0 {
		prec = DefaultPrecision
	}

	set := &Set{name: name}
	for _, style := range Styles() {
		params, err := scheme.Params(style)
		if err != nil {
			return nil, err
		}
		set.palettes[style] = New(params, prec)
	}

	return set, nil
}

// Name is the scheme the set was built from.
func (s *Set) Name() string { return s.name }

// Palette returns the ramp of style. It panics on an invalid style.
func (s *Set) Palette(style Style) *Palette {
	if !style.Valid() {
		panic(fmt.Sprintf("palette: %v", style))
	}
	return s.palettes[style]
}

// ColorAt is Palette(style).ColorAt(intensity).
func (s *Set) ColorAt(style Style, intensity float32) color.RGBA {
	return s.Palette(style).ColorAt(intensity)
}
