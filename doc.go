// SPDX-License-Identifier: EPL-2.0

// Package audwave renders the waveform of audio files the way subtitle
// timing tools display them.
//
// The root package ties the pieces together: OpenFile decodes a file
// with the decoder registered for its extension and loads it into an
// in-memory 16-bit provider, ready for the renderer.
//
//	provider, err := audwave.OpenFile("speech.flac", audio.LoadOptions{})
//	set, err := palette.NewSet(palette.DefaultScheme, palette.Builtin(), 0)
//
//	r := render.NewWaveformRenderer(set, render.DefaultConfig())
//	r.SetProvider(provider)
//	r.Render(render.NewImageSurface(800, 120), 0, palette.Normal)
//
// # Packages
//
//   - audio: sources, the decoder registry, resampling, down-mixing and
//     the random-access Provider the renderer reads from
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff,
//     formats/flac: one Decoder per container
//   - palette: colour schemes and the per-style intensity ramps
//   - render: the waveform renderer and its raster Surface
//
// # Supported Formats
//
//   - WAV (PCM 16-bit)
//   - MP3
//   - Ogg Vorbis
//   - AIFF (PCM 16-bit)
//   - FLAC (4 to 32 bit, scaled to 16)
//
// The audwave command in cmd/audwave renders files to PNG, prints
// envelopes as JSON and lists the available styles.
package audwave
