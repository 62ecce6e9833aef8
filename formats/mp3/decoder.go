// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

// go-mp3 always decodes to interleaved stereo.
const channels = 2

type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// carry holds an odd trailing byte from the previous read
	carry    []byte
	finished bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / utils.BytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.finished {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * utils.BytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	have := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(s.buf[have:])
	n += have
	if err == io.EOF {
		s.finished = true
	} else if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	whole := n / utils.BytesPerSample * utils.BytesPerSample
	s.carry = append(s.carry, s.buf[whole:n]...)

	samples := whole / utils.BytesPerSample
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(utils.SampleAt(s.buf, i))
	}

	if s.finished {
		if samples == 0 {
			return 0, io.EOF
		}
		return samples, io.EOF
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}
