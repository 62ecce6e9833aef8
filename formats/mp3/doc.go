// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo, so mono MP3 files come
// out as two identical channels.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	provider, err := audio.Load(src, audio.LoadOptions{})
package mp3
