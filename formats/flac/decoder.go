// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int
	// pending holds decoded samples not yet handed out
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) decodeFrame() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		return err
	}
	if len(f.Subframes) < s.channels {
		return fmt.Errorf("frame has %d subframes, want %d", len(f.Subframes), s.channels)
	}

	n := int(f.Subframes[0].NSamples)
	for i := range n {
		for ch := range s.channels {
			v := utils.ShiftToInt16(int(f.Subframes[ch].Samples[i]), s.bitDepth)
			s.pending = append(s.pending, utils.Int16ToFloat32(v))
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for len(s.pending) < len(dst) && !s.eof {
		err := s.decodeFrame()
		if err == io.EOF {
			s.eof = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
	}

	n := copy(dst, s.pending)
	s.pending = append(s.pending[:0], s.pending[n:]...)

	if s.eof && len(s.pending) == 0 {
		return n, io.EOF
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}

	info := stream.Info
	bitDepth := int(info.BitsPerSample)
	channels := int(info.NChannels)

	if channels == 0 {
		return nil, ErrNoChannels
	}
	if bitDepth < 4 || bitDepth > 32 {
		return nil, ErrUnsupportedBitDepth
	}

	return &source{
		stream:     stream,
		closer:     stream,
		sampleRate: int(info.SampleRate),
		channels:   channels,
		bitDepth:   bitDepth,
	}, nil
}
