// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding and encoding are both backed by github.com/go-audio/wav.
// Only PCM 16-bit files are accepted; any channel count and sample
// rate is fine.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("dialogue.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder returns an audio.Source that yields float32 samples in
// [-1.0, 1.0). Inputs that are not an io.ReadSeeker are buffered in
// memory, since go-audio needs to seek between chunks.
//
// # Writing WAV Files
//
//	samples := []int16{100, -100, 200, -200} // interleaved L/R
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 48000, 2, samples)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCM16bitSupported: compressed or non 16-bit data
//   - ErrUnsupportedWavLayout: no usable fmt/data chunks
package wav
