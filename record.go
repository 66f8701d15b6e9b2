package tone

import (
	"sort"
	"strings"
)

// TermWeight is one matched term and its total weight in a document.
type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// ToneRecord is the flat, serializable view of a ToneResult handed to
// storage and reporting layers.
type ToneRecord struct {
	MeetingID           string         `json:"meeting_id"`
	Date                string         `json:"date,omitempty"`
	ToneIndex           float64        `json:"tone_index"`
	HawkishScore        float64        `json:"hawkish_score"`
	DovishScore         float64        `json:"dovish_score"`
	Interpretation      Interpretation `json:"interpretation"`
	TotalSentences      int            `json:"total_sentences"`
	HawkishTermsCount   int            `json:"hawkish_terms_count"`
	DovishTermsCount    int            `json:"dovish_terms_count"`
	TopHawkishTerms     []TermWeight   `json:"top_hawkish_terms"`
	TopDovishTerms      []TermWeight   `json:"top_dovish_terms"`
	RawKeywordTone      float64        `json:"raw_keyword_tone"`
	NGramTone           float64        `json:"ngram_tone"`
	ContextAdjustedTone float64        `json:"context_adjusted_tone"`
	PolicyIntentTone    float64        `json:"policy_intent_tone"`
	DictionaryVersion   int            `json:"dictionary_version"`
}

// NewToneRecord flattens r for doc, keeping the topN heaviest terms per
// polarity. Dates written as 2024_01_11 are normalized to 2024-01-11.
func NewToneRecord(doc Document, r ToneResult, topN int) ToneRecord {
	return ToneRecord{
		MeetingID:           doc.MeetingID,
		Date:                strings.ReplaceAll(doc.Date, "_", "-"),
		ToneIndex:           r.ToneIndex,
		HawkishScore:        r.HawkishScore,
		DovishScore:         r.DovishScore,
		Interpretation:      r.Interpretation,
		TotalSentences:      r.TotalSentences,
		HawkishTermsCount:   len(r.HawkishTerms),
		DovishTermsCount:    len(r.DovishTerms),
		TopHawkishTerms:     TopTerms(r.HawkishTerms, topN),
		TopDovishTerms:      TopTerms(r.DovishTerms, topN),
		RawKeywordTone:      r.RawKeywordTone,
		NGramTone:           r.NGramTone,
		ContextAdjustedTone: r.ContextAdjustedTone,
		PolicyIntentTone:    r.PolicyIntentTone,
		DictionaryVersion:   r.DictionaryVersion,
	}
}

// Record is NewToneRecord with the analyzer's TopTerms setting.
func (a *Analyzer) Record(doc Document, r ToneResult) ToneRecord {
	return NewToneRecord(doc, r, a.config.TopTerms)
}

// TopTerms returns up to n terms ordered by weight, heaviest first; ties are
// broken alphabetically so the order is stable.
func TopTerms(terms map[string]float64, n int) []TermWeight {
	out := make([]TermWeight, 0, len(terms))
	for term, w := range terms {
		out = append(out, TermWeight{Term: term, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Term < out[j].Term
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
