// SPDX-License-Identifier: EPL-2.0

// Package render draws the waveform of 16-bit PCM audio onto a raster
// surface, one pixel column at a time.
//
// Every column covers MillisecondsPerPixel of audio. The renderer reads
// that window from an audio.Provider, reduces it to a peak and average
// envelope and scales the result into pixels around a zero line:
//
//	r := render.NewWaveformRenderer(set, render.DefaultConfig())
//	r.SetProvider(provider)
//	r.Render(surface, firstColumn, palette.Normal)
//
// In the default layout one trace fills the surface and only its
// peaks are drawn, as two points per column. With SeparateChannels the
// height is split into one band per channel, each drawn as vertical
// peak segments (plus average segments for the MaxAvg style) with a
// zero line and separators between bands.
//
// RenderBlank draws what silence would look like without touching the
// audio, for regions past the end of the stream. For the same surface
// and settings it produces the same pixels as Render over silent audio.
//
// Envelope exposes the per-column numbers for callers that draw
// themselves.
package render
