// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrUnsupportedBitDepth is returned for streams outside 4..32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrNoChannels is returned for streams that declare zero channels.
	ErrNoChannels = errors.New("FLAC stream has no channels")
)
