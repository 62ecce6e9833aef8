// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/palette"
	"github.com/ik5/audwave/utils"
)

const (
	intensityBackground = 0.0
	intensityPeak       = 0.4
	intensitySeparator  = 0.5
	intensityAverage    = 0.7
	intensityBaseline   = 1.0
)

type pens struct {
	background color.Color
	peak       color.Color
	average    color.Color
	baseline   color.Color
	separator  color.Color
}

// WaveformRenderer draws a min/max envelope per pixel column. It is not
// safe for concurrent use.
type WaveformRenderer struct {
	colors   ColorSource
	cfg      Config
	log      *zap.Logger
	provider audio.Provider

	buf    []byte
	column []EnvelopeSample
}

// NewWaveformRenderer returns a renderer with no provider attached.
func NewWaveformRenderer(colors ColorSource, cfg Config) *WaveformRenderer {
	cfg = cfg.withDefaults()

	return &WaveformRenderer{
		colors: colors,
		cfg:    cfg,
		log:    cfg.Logger,
	}
}

// Config returns the current settings.
func (r *WaveformRenderer) Config() Config { return r.cfg }

func (r *WaveformRenderer) SetProvider(p audio.Provider) {
	r.provider = p
	r.buf = nil
}

// SetMillisecondsPerPixel changes the time scale. Non-positive values
// select DefaultMillisecondsPerPixel.
func (r *WaveformRenderer) SetMillisecondsPerPixel(ms float64) {
	if ms <= 0 {
		ms = DefaultMillisecondsPerPixel
	}
	r.cfg.MillisecondsPerPixel = ms
	r.buf = nil
}

func (r *WaveformRenderer) SetAmplitudeScale(scale float32) {
	r.cfg.AmplitudeScale = scale
}

// AgeCache does nothing; columns are computed on every render.
func (r *WaveformRenderer) AgeCache(int) {}

// Render fills the surface with the background colour and draws the
// envelope of the audio from column start onwards. It panics when no
// provider is attached or the provider is not 16-bit.
func (r *WaveformRenderer) Render(s Surface, start int, style palette.Style) {
	p := r.mustProvider()
	b := s.Bounds()
	pen := r.pens(style)

	s.FillRect(b, pen.background)

	bands := r.layout(b.Dy(), p.Channels())
	if r.cfg.SeparateChannels {
		r.renderSeparate(s, b, start, bands, pen)
	} else {
		r.renderSingle(s, b, start, bands, pen)
	}
}

func (r *WaveformRenderer) renderSingle(s Surface, b image.Rectangle, start int, bands []Band, pen pens) {
	mid := b.Min.Y + bands[0].Mid

	r.walk(start, b.Dx(), bands, func(x int, col []EnvelopeSample) {
		s.DrawPoint(b.Min.X+x, mid-col[0].PeakMax, pen.peak)
		s.DrawPoint(b.Min.X+x, mid-col[0].PeakMin, pen.peak)
	})

	r.drawLines(s, b, bands, pen)
}

func (r *WaveformRenderer) renderSeparate(s Surface, b image.Rectangle, start int, bands []Band, pen pens) {
	averages := r.cfg.WaveformStyle == MaxAvg

	r.walk(start, b.Dx(), bands, func(x int, col []EnvelopeSample) {
		x += b.Min.X
		for c, e := range col {
			mid := b.Min.Y + bands[c].Mid
			s.DrawLine(x, mid-e.PeakMax, x, mid-e.PeakMin, pen.peak)
			if averages {
				s.DrawLine(x, mid-e.AvgMax, x, mid-e.AvgMin, pen.average)
			}
		}
	})

	r.drawLines(s, b, bands, pen)
}

// RenderBlank draws the look of silent audio into rect. The background
// is painted around the line rows so no pixel is drawn twice. The
// provider is only consulted for its channel count.
func (r *WaveformRenderer) RenderBlank(s Surface, rect image.Rectangle, style palette.Style) {
	if rect.Empty() {
		return
	}

	channels := 1
	if r.provider != nil {
		channels = r.provider.Channels()
	}

	pen := r.pens(style)
	bands := r.layout(rect.Dy(), channels)

	y := 0
	for _, row := range lineRows(bands) {
		if row > y {
			s.FillRect(image.Rect(rect.Min.X, rect.Min.Y+y, rect.Max.X, rect.Min.Y+row), pen.background)
		}
		y = row + 1
	}
	if y < rect.Dy() {
		s.FillRect(image.Rect(rect.Min.X, rect.Min.Y+y, rect.Max.X, rect.Max.Y), pen.background)
	}

	r.drawLines(s, rect, bands, pen)
}

// Envelope returns width columns starting at column start, each with
// one sample per trace of a surface height pixels tall.
func (r *WaveformRenderer) Envelope(start, width, height int) [][]EnvelopeSample {
	p := r.mustProvider()
	bands := r.layout(height, p.Channels())

	out := make([][]EnvelopeSample, 0, max(width, 0))
	r.walk(start, width, bands, func(_ int, col []EnvelopeSample) {
		out = append(out, slices.Clone(col))
	})

	return out
}

// Layout returns the traces of a surface height pixels tall.
func (r *WaveformRenderer) Layout(height int) []Band {
	channels := 1
	if r.provider != nil {
		channels = r.provider.Channels()
	}

	return r.layout(height, channels)
}

func (r *WaveformRenderer) layout(height, channels int) []Band {
	if r.cfg.SeparateChannels {
		return ChannelBands(height, channels)
	}
	return []Band{singleBand(height)}
}

// drawLines draws the zero line of every band, then the separators
// between bands.
func (r *WaveformRenderer) drawLines(s Surface, rect image.Rectangle, bands []Band, pen pens) {
	if rect.Empty() {
		return
	}

	x0, x1 := rect.Min.X, rect.Max.X-1
	for _, b := range bands {
		s.DrawLine(x0, rect.Min.Y+b.Mid, x1, rect.Min.Y+b.Mid, pen.baseline)
	}
	for _, b := range bands[min(1, len(bands)):] {
		s.DrawLine(x0, rect.Min.Y+b.Top, x1, rect.Min.Y+b.Top, pen.separator)
	}
}

func (r *WaveformRenderer) pens(style palette.Style) pens {
	at := func(v float32) color.Color { return r.colors.ColorAt(style, v) }

	p := pens{
		background: at(intensityBackground),
		peak:       at(intensityPeak),
		average:    at(intensityAverage),
		separator:  at(intensitySeparator),
	}
	if r.cfg.WaveformStyle == MaxAvg {
		p.baseline = at(intensityBaseline)
	} else {
		p.baseline = p.peak
	}

	return p
}

func (r *WaveformRenderer) samplesPerPixel() float64 {
	return r.cfg.MillisecondsPerPixel * float64(r.provider.SampleRate()) / 1000.0
}

// walk reads one window per column and hands fn the scaled envelope of
// every band. col is reused between calls.
func (r *WaveformRenderer) walk(start, width int, bands []Band, fn func(x int, col []EnvelopeSample)) {
	p := r.provider
	channels := p.Channels()
	spp := r.samplesPerPixel()
	frames := int64(spp)

	r.ensureBuffer(spp, channels)
	buf := r.buf[:int(frames)*channels*utils.BytesPerSample]

	if cap(r.column) < len(bands) {
		r.column = make([]EnvelopeSample, len(bands))
	}
	col := r.column[:len(bands)]

	div := 1
	if r.cfg.SeparateChannels {
		div = channels
	}

	cursor := float64(start) * spp
	for x := range width {
		p.GetAudio(buf, int64(cursor), frames)
		cursor += spp

		for c, band := range bands {
			var a accum
			switch {
			case r.cfg.SeparateChannels:
				a = reduceChannel(buf, int(frames), channels, c)
			case r.cfg.Downmix:
				a = reduceMean(buf, int(frames), channels)
			default:
				a = reduceChannel(buf, int(frames), channels, 0)
			}
			col[c] = a.scale(r.cfg.AmplitudeScale, div, band.Half, spp)
		}

		fn(x, col)
	}
}

// ensureBuffer sizes the scratch buffer for one column of audio.
func (r *WaveformRenderer) ensureBuffer(spp float64, channels int) {
	need := int(math.Ceil(spp)) * channels * utils.BytesPerSample
	if r.buf != nil && len(r.buf) >= need {
		return
	}

	r.buf = make([]byte, need)
	r.log.Debug("allocated column buffer",
		zap.Int("bytes", need),
		zap.Float64("samples_per_pixel", spp),
		zap.Int("channels", channels),
	)
}

func (r *WaveformRenderer) mustProvider() audio.Provider {
	if r.provider == nil {
		panic("render: no audio provider attached")
	}
	if n := r.provider.BytesPerSample(); n != utils.BytesPerSample {
		panic(fmt.Sprintf("render: provider has %d bytes per sample, want %d", n, utils.BytesPerSample))
	}
	if r.provider.Channels() < 1 {
		panic("render: provider has no channels")
	}

	return r.provider
}
