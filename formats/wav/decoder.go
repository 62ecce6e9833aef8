// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

const pcmFormat = 1

type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
	done       bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int    { return cap(s.intBuf.Data) }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.Int16ToFloat32(int16(v))
	}

	// go-audio signals the end of data with a short read
	if n < len(dst) || err != nil {
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != pcmFormat || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	if dec.NumChans == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	format := &goaudio.Format{
		NumChannels: int(dec.NumChans),
		SampleRate:  int(dec.SampleRate),
	}

	return &wavSource{
		dec:        dec,
		format:     format,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		intBuf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 4096),
			SourceBitDepth: 16,
		},
	}, nil
}
