// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ik5/audwave/palette"
)

// levels encodes the intensity in R and the style in G.
type levels struct{}

func (levels) ColorAt(style palette.Style, v float32) color.RGBA {
	return color.RGBA{R: uint8(math.Round(float64(v) * 100)), G: uint8(style), A: 0xff}
}

func level(img *image.RGBA, x, y int) int {
	return int(img.RGBAAt(x, y).R)
}

// column returns the intensity level of every row of column x.
func column(img *image.RGBA, x int) []int {
	out := make([]int, 0, img.Rect.Dy())
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		out = append(out, level(img, x, y))
	}

	return out
}

// countingSurface counts writes per pixel.
type countingSurface struct {
	*ImageSurface
	hits map[image.Point]int
}

func newCountingSurface(w, h int) *countingSurface {
	return &countingSurface{ImageSurface: NewImageSurface(w, h), hits: map[image.Point]int{}}
}

func (s *countingSurface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(s.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.hits[image.Pt(x, y)]++
		}
	}
	s.ImageSurface.FillRect(r, c)
}

func (s *countingSurface) DrawPoint(x, y int, c color.Color) {
	if image.Pt(x, y).In(s.Bounds()) {
		s.hits[image.Pt(x, y)]++
	}
	s.ImageSurface.DrawPoint(x, y, c)
}

func (s *countingSurface) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	if y0 != y1 && x0 != x1 {
		panic("countingSurface: diagonal line")
	}
	for y := min(y0, y1); y <= max(y0, y1); y++ {
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			s.DrawPoint(x, y, c)
		}
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
