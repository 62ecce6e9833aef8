// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audwave/utils"
)

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV file.
// When w is not an io.WriteSeeker the file is assembled in memory first,
// since the header sizes are patched after the payload.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}

	ws, direct := w.(io.WriteSeeker)
	var mem *utils.WriteSeekBuffer
	if !direct {
		mem = &utils.WriteSeekBuffer{}
		ws = mem
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, pcmFormat)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if mem != nil {
		if _, err := w.Write(mem.Bytes()); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
