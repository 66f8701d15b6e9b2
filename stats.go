package tone

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of tone indices over many meetings.
type Summary struct {
	Count        int     `json:"count"`
	Mean         float64 `json:"mean"`
	Std          float64 `json:"std"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Median       float64 `json:"median"`
	HawkishCount int     `json:"hawkish_count"`
	DovishCount  int     `json:"dovish_count"`
	NeutralCount int     `json:"neutral_count"`
}

// Summarize computes population statistics of the tone index. Records above
// 0.1 count as hawkish, below -0.1 as dovish, the rest as neutral. An empty
// input gives the zero Summary.
func Summarize(records []ToneRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	tones := make([]float64, len(records))
	var s Summary
	for i, r := range records {
		tones[i] = r.ToneIndex
		switch {
		case r.ToneIndex > 0.1:
			s.HawkishCount++
		case r.ToneIndex < -0.1:
			s.DovishCount++
		default:
			s.NeutralCount++
		}
	}

	s.Count = len(tones)
	s.Mean, s.Std = stat.PopMeanStdDev(tones, nil)
	s.Min = floats.Min(tones)
	s.Max = floats.Max(tones)

	sort.Float64s(tones)
	mid := len(tones) / 2
	if len(tones)%2 == 1 {
		s.Median = tones[mid]
	} else {
		s.Median = (tones[mid-1] + tones[mid]) / 2
	}

	return s
}
