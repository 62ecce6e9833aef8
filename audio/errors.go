// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat   = errors.New("no decoder registered for format")
	ErrNoChannels      = errors.New("source reports no channels")
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrEmptyBufferSize = errors.New("read buffer size must be positive")
)
