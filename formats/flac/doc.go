// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio with github.com/mewkiz/flac.
//
// Samples of any bit depth are shifted to 16 bits before being
// normalised, so the output matches what the renderer sees after
// audio.Load.
//
//	src, err := flac.Decoder{}.Decode(file)
//	provider, err := audio.Load(src, audio.LoadOptions{})
package flac
