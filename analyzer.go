package tone

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

// Analyzer scores meeting-minutes text against a Dictionary. It holds only
// read-only state after NewAnalyzer returns and is safe for concurrent use.
type Analyzer struct {
	dict     *Dictionary
	config   Config
	splitter SentenceSplitter
	markers  *markerSet
	ngrams   []ngramPattern
	logger   zerolog.Logger
}

// NewAnalyzer validates the configuration, resolves the dictionary and
// compiles every pattern used during scoring. Configuration problems are
// reported here as *ConfigError, never while scoring.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		config: DefaultConfig(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	if a.dict == nil {
		if a.config.DictionaryPath != "" {
			dict, err := LoadDictionaryFile(a.config.DictionaryPath)
			if err != nil {
				return nil, err
			}
			a.dict = dict
			a.logger.Info().Str("path", a.config.DictionaryPath).Int("version", dict.Version()).Msg("dictionary loaded")
		} else {
			a.dict = DefaultDictionary()
		}
	}
	if a.splitter == nil {
		a.splitter = RuleSplitter{}
	}

	markers, err := compileMarkers()
	if err != nil {
		return nil, err
	}
	a.markers = markers

	if a.ngrams, err = compileNGrams(a.dict.ngrams, a.config.NGramGap); err != nil {
		return nil, err
	}

	a.logger.Debug().
		Int("terms", a.dict.Len()).
		Int("ngrams", len(a.ngrams)).
		Int("dictionary_version", a.dict.Version()).
		Bool("keyword_only", a.config.KeywordOnly).
		Msg("analyzer ready")

	return a, nil
}

// Dictionary returns the dictionary the analyzer scores against.
func (a *Analyzer) Dictionary() *Dictionary {
	return a.dict
}

// Config returns the active configuration.
func (a *Analyzer) Config() Config {
	return a.config
}

// AnalyzeDocument scores doc.Text.
func (a *Analyzer) AnalyzeDocument(doc *Document) (ToneResult, error) {
	if doc == nil {
		return ToneResult{}, fmt.Errorf("%w: nil document", ErrInvalidInput)
	}
	result, err := a.Analyze(doc.Text)
	if err != nil {
		return ToneResult{}, fmt.Errorf("meeting %s: %w", doc.MeetingID, err)
	}
	return result, nil
}

// Analyze scores text and returns the document tone. Text without any match
// is not an error: it yields a zero index interpreted as Neutral.
func (a *Analyzer) Analyze(text string) (ToneResult, error) {
	if !utf8.ValidString(text) {
		return ToneResult{}, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}

	result := ToneResult{
		HawkishTerms:      make(map[string]float64),
		DovishTerms:       make(map[string]float64),
		SentenceTones:     []float64{},
		Interpretation:    Neutral,
		DictionaryVersion: a.dict.Version(),
	}
	if strings.TrimSpace(text) == "" {
		return result, nil
	}

	if script, share := DetectScript(text); script != ScriptHangul {
		a.logger.Warn().Str("script", string(script)).Float64("share", share).Msg("text is not predominantly Korean; the lexicon may not apply")
	}

	// Whole document, no context
	terms := a.dict.Match(text)
	ngrams := a.MatchNGrams(text)
	collectTerms(result.HawkishTerms, terms.Hawkish, ngrams.Hawkish)
	collectTerms(result.DovishTerms, terms.Dovish, ngrams.Dovish)
	result.HawkishScore = terms.Sum(Hawkish) + ngrams.Sum(Hawkish)
	result.DovishScore = terms.Sum(Dovish) + ngrams.Sum(Dovish)
	result.RawKeywordTone = a.toneIndex(terms.Sum(Hawkish), terms.Sum(Dovish))
	result.NGramTone = a.toneIndex(ngrams.Sum(Hawkish), ngrams.Sum(Dovish))

	// Per sentence
	sentences := a.splitter.Split(text)
	result.TotalSentences = len(sentences)

	var (
		total   clauseScore
		intents []float64
	)
	for _, sentence := range sentences {
		score := a.scoreSentence(sentence)
		if !a.config.KeywordOnly {
			if v, ok := a.ScoreIntent(sentence, score.h, score.d); ok {
				intents = append(intents, v)
			}
		}
		if score.empty() {
			continue
		}
		total = total.plus(score)
		result.SentenceTones = append(result.SentenceTones, a.toneIndex(score.h, score.d))
	}

	result.ContextAdjustedTone = a.toneIndex(total.h, total.d)
	if len(intents) > 0 {
		result.PolicyIntentTone = stat.Mean(intents, nil)
	}

	result.ToneIndex = a.combine(result)
	result.Interpretation = Interpret(result.ToneIndex)

	a.logger.Debug().
		Int("sentences", result.TotalSentences).
		Int("scored_sentences", len(result.SentenceTones)).
		Float64("tone_index", result.ToneIndex).
		Msg("document scored")

	return result, nil
}

// scoreSentence is the contrast-aware context score, or plain matching in
// keyword-only mode.
func (a *Analyzer) scoreSentence(sentence string) clauseScore {
	if !a.config.KeywordOnly {
		return a.scoreContrast(sentence)
	}
	terms := a.dict.Match(sentence)
	ngrams := a.MatchNGrams(sentence)
	return clauseScore{
		h: terms.Sum(Hawkish) + ngrams.Sum(Hawkish),
		d: terms.Sum(Dovish) + ngrams.Sum(Dovish),
	}
}

func collectTerms(dst map[string]float64, groups ...[]TermMatch) {
	for _, group := range groups {
		for _, tm := range group {
			dst[tm.Term] += tm.Weight
		}
	}
}
