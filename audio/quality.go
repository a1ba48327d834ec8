// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"

	resampler "github.com/tphakala/go-audio-resampler"
)

// Quality selects how a whole buffer is resampled.
// QualityCubic uses the streaming Resampler; the rest use the polyphase
// engine of github.com/tphakala/go-audio-resampler.
type Quality int

const (
	QualityCubic Quality = iota
	QualityLow
	QualityMedium
	QualityHigh
	QualityVeryHigh
)

var qualityNames = map[Quality]string{
	QualityCubic:    "cubic",
	QualityLow:      "low",
	QualityMedium:   "medium",
	QualityHigh:     "high",
	QualityVeryHigh: "veryhigh",
}

func (q Quality) String() string {
	if s, ok := qualityNames[q]; ok {
		return s
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// ParseQuality is the inverse of Quality.String.
func ParseQuality(s string) (Quality, error) {
	for q, name := range qualityNames {
		if strings.EqualFold(s, name) {
			return q, nil
		}
	}
	return QualityCubic, fmt.Errorf("unknown resample quality %q", s)
}

func (q Quality) preset() resampler.QualityPreset {
	switch q {
	case QualityLow:
		return resampler.QualityLow
	case QualityHigh:
		return resampler.QualityHigh
	case QualityVeryHigh:
		return resampler.QualityVeryHigh
	default:
		return resampler.QualityMedium
	}
}

// ResampleBuffer converts interleaved samples in format f to dstRate.
// The input is not modified; equal rates return a copy.
func ResampleBuffer(samples []float32, f Format, dstRate int, q Quality) ([]float32, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target %d Hz", ErrInvalidFormat, dstRate)
	}

	if f.SampleRate == dstRate {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out, nil
	}

	if q == QualityCubic {
		return Collect(NewResampler(NewBufferSource(samples, f), dstRate), 0)
	}

	planes := Deinterleave(samples, f.Channels)
	for c, p := range planes {
		out, err := resampler.ResampleMonoFloat32(p, float64(f.SampleRate), float64(dstRate), q.preset())
		if err != nil {
			return nil, fmt.Errorf("resample channel %d: %w", c, err)
		}
		planes[c] = out
	}

	return Interleave(planes), nil
}
