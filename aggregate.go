package tone

import (
	"math"
)

// DefaultEpsilon keeps ToneIndex defined when both scores are zero.
const DefaultEpsilon = 1e-6

// ToneIndex computes (h − d) / (h + d + ε) clipped to [−1, 1].
func ToneIndex(hawkish, dovish float64) float64 {
	return toneIndex(hawkish, dovish, DefaultEpsilon)
}

func toneIndex(hawkish, dovish, eps float64) float64 {
	return clip((hawkish-dovish)/(hawkish+dovish+eps), -1, 1)
}

func (a *Analyzer) toneIndex(hawkish, dovish float64) float64 {
	return toneIndex(hawkish, dovish, a.config.Epsilon)
}

// combine weighs the four document signals into the final index.
func (a *Analyzer) combine(r ToneResult) float64 {
	c := a.config
	return clip(c.ContextWeight*r.ContextAdjustedTone+
		c.NGramWeight*r.NGramTone+
		c.IntentWeight*r.PolicyIntentTone+
		c.KeywordWeight*r.RawKeywordTone, -1, 1)
}

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
