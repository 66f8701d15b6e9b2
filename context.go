package tone

import (
	"strings"
)

// span is a byte range of a match inside a sentence.
type span struct {
	start, end int
}

// ScoreSentence scores one sentence with context modifiers applied to every
// term and n-gram match. A negated match counts toward the opposite polarity.
func (a *Analyzer) ScoreSentence(sentence string) (hawkish, dovish float64) {
	s := a.scoreClause(sentence)
	return s.h, s.d
}

func (a *Analyzer) scoreClause(text string) clauseScore {
	var score clauseScore
	if strings.TrimSpace(text) == "" {
		return score
	}

	terms := a.dict.Match(text)
	for _, p := range []Polarity{Hawkish, Dovish} {
		for _, tm := range terms.side(p) {
			a.scoreSpans(&score, text, termSpans(text, tm.Term), p, tm.Weight)
		}
	}

	for _, np := range a.ngrams {
		locs := np.re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		spans := make([]span, len(locs))
		for i, loc := range locs {
			spans[i] = span{start: loc[0], end: loc[1]}
		}
		a.scoreSpans(&score, text, spans, np.polarity, a.config.NGramMatchWeight*float64(len(locs)))
	}

	return score
}

// scoreSpans spreads weight evenly over spans and adds each modified share
// to score.
func (a *Analyzer) scoreSpans(score *clauseScore, text string, spans []span, p Polarity, weight float64) {
	if len(spans) == 0 {
		return
	}
	unit := weight / float64(len(spans))
	for _, sp := range spans {
		target, w := a.modify(text, sp, p, unit)
		score.add(target, w)
	}
}

// modify applies amplifier, hedge and negation markers found around sp.
func (a *Analyzer) modify(text string, sp span, p Polarity, weight float64) (Polarity, float64) {
	prefix := text[:sp.start]
	before := lastRunes(prefix, a.config.ContextWindow)
	after := firstRunes(text[sp.end:], a.config.NegationLookahead)

	if a.markers.amplifier.MatchString(before) {
		weight *= a.config.Amplifier
	}
	if a.markers.hedge.MatchString(before) {
		weight *= a.config.Hedge
	}
	if a.markers.negated(trimPartialWord(prefix, before), after) {
		p = p.Opposite()
	}
	return p, weight
}

// termSpans returns the non-overlapping occurrences of term, matching the
// count used by Dictionary.Match.
func termSpans(text, term string) []span {
	var spans []span
	offset := 0
	for {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return spans
		}
		start := offset + i
		spans = append(spans, span{start: start, end: start + len(term)})
		offset = start + len(term)
	}
}
