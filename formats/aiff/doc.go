// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files with
// github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // 8, 24 and 32-bit files are rejected
//	}
//
// Inputs that are not an io.ReadSeeker are buffered in memory first.
package aiff
