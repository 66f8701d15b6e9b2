package tone

import (
	"github.com/rs/zerolog"
)

// Document is one set of meeting minutes to score.
type Document struct {
	MeetingID string `json:"meeting_id"`
	Date      string `json:"date,omitempty"`
	Text      string `json:"text"`
}

// An Option changes how NewAnalyzer builds the Analyzer.
//
// For example, it might score with plain keyword counting only:
//
//	cfg := tone.DefaultConfig()
//	cfg.KeywordOnly = true
//	a, err := tone.NewAnalyzer(tone.WithConfig(cfg))
type Option func(a *Analyzer)

// WithConfig replaces the default configuration.
func WithConfig(config Config) Option {
	return func(a *Analyzer) {
		a.config = config
	}
}

// WithDictionary sets the dictionary to score against. Without it the
// dictionary comes from Config.DictionaryPath or the built-in seed.
func WithDictionary(dict *Dictionary) Option {
	return func(a *Analyzer) {
		a.dict = dict
	}
}

// WithSplitter sets the sentence source. The default is a RuleSplitter.
func WithSplitter(splitter SentenceSplitter) Option {
	return func(a *Analyzer) {
		a.splitter = splitter
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}
