// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/palette"
)

// Renderer draws audio onto a Surface one pixel column at a time.
type Renderer interface {
	// Render draws the audio starting at column start over the whole
	// surface.
	Render(s Surface, start int, style palette.Style)
	// RenderBlank draws the empty-audio look into rect.
	RenderBlank(s Surface, rect image.Rectangle, style palette.Style)
	// AgeCache trims any rendering cache to maxSize.
	AgeCache(maxSize int)

	SetProvider(p audio.Provider)
	SetMillisecondsPerPixel(ms float64)
	SetAmplitudeScale(scale float32)
}

// ColorSource maps a style and an intensity in [0,1] to a colour.
// *palette.Set implements it.
type ColorSource interface {
	ColorAt(style palette.Style, intensity float32) color.RGBA
}

var (
	_ Renderer    = (*WaveformRenderer)(nil)
	_ ColorSource = (*palette.Set)(nil)
)
