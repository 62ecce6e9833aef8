// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ik5/audwave/utils"

// EnvelopeSample is one column of one trace, in pixels relative to the
// trace's zero line. Positive values are above it. Every field lies
// within the band's Half either side.
type EnvelopeSample struct {
	PeakMin int `json:"peak_min"`
	PeakMax int `json:"peak_max"`
	AvgMin  int `json:"avg_min"`
	AvgMax  int `json:"avg_max"`
}

// accum collects a window of samples. Zero counts toward the minimum.
type accum struct {
	peakMin, peakMax int
	avgMin, avgMax   int64
}

func (a *accum) add(v int) {
	if v > 0 {
		a.peakMax = max(a.peakMax, v)
		a.avgMax += int64(v)
	} else {
		a.peakMin = min(a.peakMin, v)
		a.avgMin += int64(v)
	}
}

// reduceChannel accumulates channel c of frames interleaved frames.
func reduceChannel(buf []byte, frames, channels, c int) accum {
	var a accum
	for i := range frames {
		a.add(int(utils.SampleAt(buf, i*channels+c)))
	}

	return a
}

// reduceMean accumulates the per-frame mean of all channels.
func reduceMean(buf []byte, frames, channels int) accum {
	var a accum
	for i := range frames {
		sum := 0
		for c := range channels {
			sum += int(utils.SampleAt(buf, i*channels+c))
		}
		a.add(sum / channels)
	}

	return a
}

// scale converts the window to pixels. gain is divided by div before
// the multiply by bound, and the result truncates toward zero before
// the divide by full scale.
func (a accum) scale(gain float32, div, bound int, spp float64) EnvelopeSample {
	return EnvelopeSample{
		PeakMin: max(scalePeak(a.peakMin, gain, div, bound), -bound),
		PeakMax: min(scalePeak(a.peakMax, gain, div, bound), bound),
		AvgMin:  max(scaleAverage(a.avgMin, gain, div, bound, spp), -bound),
		AvgMax:  min(scaleAverage(a.avgMax, gain, div, bound, spp), bound),
	}
}

func scalePeak(v int, gain float32, div, bound int) int {
	return int(float32(v)*gain/float32(div)*float32(bound)) / utils.FullScale
}

func scaleAverage(acc int64, gain float32, div, bound int, spp float64) int {
	if spp <= 0 {
		return 0
	}
	return int(float64(float32(acc)*gain/float32(div)*float32(bound))/spp) / utils.FullScale
}
