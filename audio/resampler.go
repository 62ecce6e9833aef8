// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audwave/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation over a four-frame window. Channel count is preserved.
// When downsampling, incoming frames pass through a one-pole low-pass
// filter first.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames advanced per output frame

	// window[1] and window[2] bracket the output position; window[0]
	// and window[3] are the outer neighbours.
	window [4][]float32
	// real counts the decoded (not padded) frames in window[1:].
	real   int
	primed bool
	eof    bool
	pos    float64

	frame  []float32
	lowUse bool
	lowMem []float32
}

// lowPassAlpha weights the newest frame in the anti-aliasing filter.
const lowPassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		step:     step,
		frame:    make([]float32, channels),
		lowUse:   step > 1,
		lowMem:   make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// pull decodes one frame into dst. It reports false once the source is
// exhausted.
func (r *Resampler) pull(dst []float32, first bool) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	ok := n == r.channels
	if ok {
		copy(dst, r.frame)
		r.filter(dst, first)
	}

	switch {
	case errors.Is(err, io.EOF):
		r.eof = true
	case err != nil:
		return false, fmt.Errorf("%w", err)
	case !ok:
		r.eof = true
	}

	return ok, nil
}

func (r *Resampler) filter(frame []float32, first bool) {
	if !r.lowUse {
		return
	}
	if first {
		copy(r.lowMem, frame)
	}

	for c := range frame {
		frame[c] = lowPassAlpha*frame[c] + (1-lowPassAlpha)*r.lowMem[c]
		r.lowMem[c] = frame[c]
	}
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.window[1], true)
	if err != nil || !ok {
		return err
	}
	copy(r.window[0], r.window[1])
	r.real = 1

	for i := 2; i < len(r.window); i++ {
		ok, err := r.pull(r.window[i], false)
		if err != nil {
			return err
		}
		if ok {
			r.real++
			continue
		}
		copy(r.window[i], r.window[i-1])
	}

	return nil
}

func (r *Resampler) shift() error {
	head := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = head

	ok, err := r.pull(r.window[3], false)
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
		r.real--
	}

	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 && r.real > 0 {
			r.pos--
			if err := r.shift(); err != nil {
				return written, err
			}
		}
		if r.real <= 0 {
			break
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	if r.real <= 0 {
		return written, io.EOF
	}

	return written, nil
}
