// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// BytesPerSample is the width of a signed 16-bit PCM sample.
const BytesPerSample = 2

// FullScale is the magnitude of the most negative int16 sample.
const FullScale = 0x8000

// Float32ToInt16 scales x by FullScale and saturates to the int16 range,
// so Float32ToInt16(Int16ToFloat32(v)) == v for every v.
func Float32ToInt16(x float32) int16 {
	v := x * FullScale
	if v > 32767 {
		return 32767
	} else if v < -32768 {
		return -32768
	}

	return int16(v)
}

// Int16ToFloat32 maps v into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / FullScale
}

// SampleAt reads the i-th little-endian int16 sample of buf.
func SampleAt(buf []byte, i int) int16 {
	return int16(binary.LittleEndian.Uint16(buf[i*BytesPerSample:]))
}

// PutSamples encodes samples into dst as little-endian int16 and
// returns the number of bytes written.
func PutSamples(dst []byte, samples []int16) int {
	n := min(len(samples), len(dst)/BytesPerSample)
	for i := range n {
		binary.LittleEndian.PutUint16(dst[i*BytesPerSample:], uint16(samples[i]))
	}

	return n * BytesPerSample
}

// ShiftToInt16 rescales a sample of the given bit depth to 16 bits and
// saturates it to the int16 range.
func ShiftToInt16(sample int, bitDepth int) int16 {
	switch {
	case bitDepth > 16:
		sample >>= bitDepth - 16
	case bitDepth < 16:
		sample <<= 16 - bitDepth
	}

	if sample > 32767 {
		sample = 32767
	} else if sample < -32768 {
		sample = -32768
	}

	return int16(sample)
}
