// SPDX-License-Identifier: EPL-2.0

// Package audio holds the audio plumbing between decoders and the
// waveform renderer.
//
// # Sources
//
// A Source streams interleaved float32 samples in [-1, 1):
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders in the formats packages return Sources, and the Resampler
// and MonoMixer wrap one Source in another:
//
//	src = audio.NewResampler(src, 22050)
//	src = audio.NewMonoMixer(src)
//
// ReadSamples returns io.EOF together with the last samples, so check
// n before the error.
//
// # Providers
//
// The renderer needs random access by frame, which a stream cannot
// give. A Provider fills a byte buffer with little-endian 16-bit
// interleaved frames for any absolute range, zero-filling frames that
// lie outside the audio:
//
//	p.GetAudio(buf, start, count)
//
// Load drains a Source into a MemoryProvider, optionally resampling and
// down-mixing on the way:
//
//	p, err := audio.Load(src, audio.LoadOptions{Mono: true})
//
// # Registry
//
// A Registry maps file extensions to Decoders. ForPath picks the
// decoder for a file name, case-insensitively.
package audio
