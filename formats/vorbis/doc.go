// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	provider, err := audio.Load(src, audio.LoadOptions{})
//
// Samples are produced as interleaved float32 in [-1.0, 1.0]; reads are
// truncated to whole frames.
package vorbis
