package tone

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// SentenceSplitter turns document text into an ordered list of sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// SplitterFunc adapts a plain function to SentenceSplitter.
type SplitterFunc func(text string) []string

// Split calls f(text).
func (f SplitterFunc) Split(text string) []string {
	return f(text)
}

// sentenceConnectors open a new sentence when they follow a clause ending in 다.
var sentenceConnectors = []string{"다만", "그러나", "한편", "또한", "반면"}

var (
	terminalBreakRE  = regexp.MustCompile(`[.?!;](\s+)`)
	connectorBreakRE = regexp.MustCompile(`다(\s+)(?:` + alternation(sentenceConnectors) + `)`)

	pageHeaderRE   = regexp.MustCompile(`---\s*페이지\s*\d+\s*---`)
	pageNumberRE   = regexp.MustCompile(`(?m)^\s*-?\s*\d+\s*-?\s*$`)
	bracketRE      = regexp.MustCompile(`[「」『』【】]`)
	connectorPadRE = regexp.MustCompile(`\s*(` + alternation(sentenceConnectors[:4]) + `)\s*`)
	multiSpaceRE   = regexp.MustCompile(` +`)
	blankLinesRE   = regexp.MustCompile(`\n\s*\n+`)
)

// RuleSplitter splits Korean minutes after sentence punctuation followed by
// whitespace, and between a clause ending in 다 and a following connector
// such as 다만 or 그러나.
type RuleSplitter struct {
	// MinLength drops sentences shorter than this many characters.
	MinLength int
	// Clean runs CleanText before splitting.
	Clean bool
}

// Split implements SentenceSplitter.
func (rs RuleSplitter) Split(text string) []string {
	if rs.Clean {
		text = CleanText(text)
	}

	var cuts [][2]int
	for _, re := range []*regexp.Regexp{terminalBreakRE, connectorBreakRE} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			cuts = append(cuts, [2]int{loc[2], loc[3]})
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i][0] < cuts[j][0] })

	var out []string
	last := 0
	for _, cut := range cuts {
		if cut[0] < last {
			continue
		}
		out = rs.appendSentence(out, text[last:cut[0]])
		last = cut[1]
	}
	return rs.appendSentence(out, text[last:])
}

func (rs RuleSplitter) appendSentence(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) < rs.MinLength {
		return out
	}
	return append(out, s)
}

// CleanText removes page headers, bare page numbers and decorative brackets
// left over from PDF extraction, and normalizes spacing.
func CleanText(text string) string {
	text = pageHeaderRE.ReplaceAllString(text, "")
	text = pageNumberRE.ReplaceAllString(text, "")
	text = bracketRE.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "…", "...")
	text = connectorPadRE.ReplaceAllString(text, " $1 ")
	text = multiSpaceRE.ReplaceAllString(text, " ")
	text = blankLinesRE.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// PunktSplitter segments text with the unsupervised Punkt model trained on
// English. It suits English or mixed-script minutes better than RuleSplitter.
type PunktSplitter struct {
	mu        sync.Mutex // guards tokenizer
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter loads the bundled English Punkt model.
func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, &ConfigError{Op: "load punkt model", Err: err}
	}
	return &PunktSplitter{tokenizer: tokenizer}, nil
}

// Split implements SentenceSplitter.
func (ps *PunktSplitter) Split(text string) []string {
	ps.mu.Lock()
	sents := ps.tokenizer.Tokenize(text)
	ps.mu.Unlock()

	out := make([]string, 0, len(sents))
	for _, s := range sents {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
