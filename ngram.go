package tone

import (
	"fmt"
	"regexp"
	"strings"
)

// ngramPattern is an n-gram compiled to a gap-tolerant regular expression.
type ngramPattern struct {
	key      string
	polarity Polarity
	re       *regexp.Regexp
}

// compileNGrams builds one pattern per n-gram: the words in order, with at
// most gap characters between consecutive words.
func compileNGrams(entries []NGramEntry, gap int) ([]ngramPattern, error) {
	sep := fmt.Sprintf(".{0,%d}", gap)
	patterns := make([]ngramPattern, 0, len(entries))
	for _, n := range entries {
		quoted := make([]string, len(n.Words))
		for i, w := range n.Words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		re, err := regexp.Compile(strings.Join(quoted, sep))
		if err != nil {
			return nil, &ConfigError{Op: "compile n-grams", Err: fmt.Errorf("n-gram %q: %w", n.Key(), err)}
		}
		patterns = append(patterns, ngramPattern{key: n.Key(), polarity: n.Polarity, re: re})
	}
	return patterns, nil
}

// MatchNGrams finds every n-gram in text. Each occurrence contributes the
// configured n-gram weight.
func (a *Analyzer) MatchNGrams(text string) Matches {
	var m Matches
	if text == "" {
		return m
	}
	for _, p := range a.ngrams {
		count := len(p.re.FindAllStringIndex(text, -1))
		if count == 0 {
			continue
		}
		m.add(p.polarity, TermMatch{
			Term:   p.key,
			Weight: a.config.NGramMatchWeight * float64(count),
			Count:  count,
		})
	}
	return m
}
