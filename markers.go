package tone

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker vocabularies for Korean policy language. Each list becomes one
// alternation compiled when the analyzer is built.
var (
	amplifierMarkers = []string{
		"매우", "크게", "상당히", "상당폭", "현저히", "급격히", "대폭", "큰 폭", "더욱", "강하게", "높은", "확연히",
	}
	hedgeMarkers = []string{
		"다소", "소폭", "약간", "제한적", "점진적", "완만한", "완만하게", "가능성",
	}
	// Negating adverbs placed before the predicate.
	preNegationMarkers = []string{"안", "못"}
	// Negating endings placed after the term.
	postNegationMarkers = []string{"아니", "않", "없", "못하"}
	contrastMarkers     = []string{
		"그러나", "하지만", "다만", "반면", "그럼에도", "불구하고", "는데도",
	}
	// Connective endings; they only split when the word ends there.
	contrastEndings = []string{"으나", "지만"}
	intentMarkers = []string{
		"필요", "해야", "검토", "고려", "점검", "예정", "바람직", "할 것", "지켜볼",
	}
	strongIntentMarkers = []string{"반드시", "불가피", "시급", "긴요"}
)

// clauseEnd stops the post-negation lookahead at the clause boundary.
const clauseEnd = ",.;!?"

// markerSet holds every compiled marker pattern.
type markerSet struct {
	amplifier    *regexp.Regexp
	hedge        *regexp.Regexp
	preNegation  *regexp.Regexp
	postNegation *regexp.Regexp
	contrast     *regexp.Regexp
	intent       *regexp.Regexp
	strongIntent *regexp.Regexp
}

func compileMarkers() (*markerSet, error) {
	var (
		ms  markerSet
		err error
	)
	patterns := []struct {
		dst  **regexp.Regexp
		expr string
	}{
		{&ms.amplifier, alternation(amplifierMarkers)},
		{&ms.hedge, alternation(hedgeMarkers)},
		{&ms.preNegation, `(^|\s)(` + alternation(preNegationMarkers) + `)(\s|$)`},
		{&ms.postNegation, alternation(postNegationMarkers)},
		{&ms.contrast, alternation(contrastMarkers) + `|(` + alternation(contrastEndings) + `)(\s|,|$)`},
		{&ms.intent, alternation(intentMarkers)},
		{&ms.strongIntent, alternation(strongIntentMarkers)},
	}
	for _, p := range patterns {
		if *p.dst, err = regexp.Compile(p.expr); err != nil {
			return nil, &ConfigError{Op: "compile markers", Err: err}
		}
	}
	return &ms, nil
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// negated reports whether the match is negated, looking at the window before
// it and the clause-bounded lookahead after it. Only the standalone adverbs
// 안 and 못 precede what they negate in Korean; endings such as 아니, 않 and
// 없 follow the term, so they are checked in the lookahead alone.
func (ms *markerSet) negated(before, after string) bool {
	if ms.preNegation.MatchString(before) {
		return true
	}
	if i := strings.IndexAny(after, clauseEnd); i >= 0 {
		after = after[:i]
	}
	return ms.postNegation.MatchString(after)
}

// trimPartialWord drops the leading word fragment of window when window is
// the tail of prefix and was cut in the middle of a word.
func trimPartialWord(prefix, window string) string {
	cut := len(prefix) - len(window)
	if cut <= 0 {
		return window
	}
	if r, _ := utf8.DecodeLastRuneInString(prefix[:cut]); unicode.IsSpace(r) {
		return window
	}
	if i := strings.IndexFunc(window, unicode.IsSpace); i >= 0 {
		return window[i:]
	}
	return ""
}

// lastRunes returns the final n runes of s.
func lastRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := len(s); i > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		count++
		if count == n {
			return s[i:]
		}
	}
	return s
}

// firstRunes returns the leading n runes of s.
func firstRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
