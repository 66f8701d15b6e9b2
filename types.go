package tone

import (
	"strings"
)

// Polarity is the policy direction a term or phrase signals.
type Polarity string

// Supported polarities
const (
	Hawkish Polarity = "hawkish"
	Dovish  Polarity = "dovish"
)

// Valid reports whether p is one of the known polarities.
func (p Polarity) Valid() bool {
	return p == Hawkish || p == Dovish
}

// Opposite returns the reversed polarity, used when a match is negated.
func (p Polarity) Opposite() Polarity {
	if p == Hawkish {
		return Dovish
	}
	return Hawkish
}

// LexiconEntry represents a single policy term with its weight.
type LexiconEntry struct {
	Term        string   `json:"term"`
	Polarity    Polarity `json:"polarity"`
	Weight      float64  `json:"weight"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

// NGramEntry is an ordered phrase scored as one unit.
type NGramEntry struct {
	Words    []string
	Polarity Polarity
}

// Key returns the words joined by a single space.
func (n NGramEntry) Key() string {
	return strings.Join(n.Words, " ")
}

// TermMatch is the aggregate contribution of one term or phrase to a text.
type TermMatch struct {
	Term   string
	Weight float64 // entry weight × occurrences
	Count  int
}

// Matches groups term contributions by polarity.
type Matches struct {
	Hawkish []TermMatch
	Dovish  []TermMatch
}

// Sum returns the total weight matched for p.
func (m Matches) Sum(p Polarity) float64 {
	var total float64
	for _, tm := range m.side(p) {
		total += tm.Weight
	}
	return total
}

// Empty reports whether nothing matched.
func (m Matches) Empty() bool {
	return len(m.Hawkish) == 0 && len(m.Dovish) == 0
}

func (m Matches) side(p Polarity) []TermMatch {
	if p == Hawkish {
		return m.Hawkish
	}
	return m.Dovish
}

func (m *Matches) add(p Polarity, tm TermMatch) {
	if p == Hawkish {
		m.Hawkish = append(m.Hawkish, tm)
	} else {
		m.Dovish = append(m.Dovish, tm)
	}
}

// ToneResult is the outcome of scoring one document. It is not modified
// after Analyze returns it.
type ToneResult struct {
	ToneIndex           float64            `json:"tone_index"`
	HawkishScore        float64            `json:"hawkish_score"`
	DovishScore         float64            `json:"dovish_score"`
	HawkishTerms        map[string]float64 `json:"hawkish_terms"`
	DovishTerms         map[string]float64 `json:"dovish_terms"`
	SentenceTones       []float64          `json:"sentence_tones"`
	TotalSentences      int                `json:"total_sentences"`
	Interpretation      Interpretation     `json:"interpretation"`
	RawKeywordTone      float64            `json:"raw_keyword_tone"`
	NGramTone           float64            `json:"ngram_tone"`
	ContextAdjustedTone float64            `json:"context_adjusted_tone"`
	PolicyIntentTone    float64            `json:"policy_intent_tone"`
	DictionaryVersion   int                `json:"dictionary_version"`
}

// clauseScore holds hawkish and dovish totals for a span of text.
type clauseScore struct {
	h, d float64
}

func (c clauseScore) empty() bool {
	return c.h == 0 && c.d == 0
}

func (c clauseScore) scale(f float64) clauseScore {
	return clauseScore{h: c.h * f, d: c.d * f}
}

func (c clauseScore) plus(o clauseScore) clauseScore {
	return clauseScore{h: c.h + o.h, d: c.d + o.d}
}

func (c *clauseScore) add(p Polarity, w float64) {
	if p == Hawkish {
		c.h += w
	} else {
		c.d += w
	}
}
