// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a raster the renderer draws on. The origin is the top-left
// corner of Bounds.
type Surface interface {
	Bounds() image.Rectangle
	FillRect(r image.Rectangle, c color.Color)
	DrawPoint(x, y int, c color.Color)
	// DrawLine draws both endpoints.
	DrawLine(x0, y0, x1, y1 int, c color.Color)
}

// ImageSurface draws on an *image.RGBA, clipping to its bounds.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a w x h image.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// WrapImage draws directly on img.
func WrapImage(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

func (s *ImageSurface) Image() *image.RGBA      { return s.img }
func (s *ImageSurface) Bounds() image.Rectangle { return s.img.Rect }

func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}

	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *ImageSurface) DrawPoint(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}

	s.img.Set(x, y, c)
}

func (s *ImageSurface) DrawLine(x0, y0, x1, y1 int, c color.Color) {
	switch {
	case y0 == y1:
		s.FillRect(image.Rect(min(x0, x1), y0, max(x0, x1)+1, y0+1), c)
		return
	case x0 == x1:
		s.FillRect(image.Rect(x0, min(y0, y1), x0+1, max(y0, y1)+1), c)
		return
	}

	// Bresenham
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		s.DrawPoint(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
