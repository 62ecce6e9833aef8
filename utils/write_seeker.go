// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("negative position")

// WriteSeekBuffer is an in-memory io.WriteSeeker, for encoders that
// patch their headers after writing the payload.
type WriteSeekBuffer struct {
	data []byte
	pos  int64
}

func (b *WriteSeekBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, end-int64(len(b.data)))...)
	}
	copy(b.data[b.pos:], p)
	b.pos = end

	return len(p), nil
}

func (b *WriteSeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.pos + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}

	if next < 0 {
		return 0, errNegativeOffset
	}
	b.pos = next

	return next, nil
}

// Bytes returns the buffer contents.
func (b *WriteSeekBuffer) Bytes() []byte { return b.data }
