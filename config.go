package tone

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable constant of the scoring engine. The defaults
// reproduce the reference behaviour; none of them is claimed to be optimal.
type Config struct {
	// Aggregation weights, must sum to 1.
	ContextWeight float64 `yaml:"context_weight" envconfig:"TONE_CONTEXT_WEIGHT"`
	NGramWeight   float64 `yaml:"ngram_weight" envconfig:"TONE_NGRAM_WEIGHT"`
	IntentWeight  float64 `yaml:"intent_weight" envconfig:"TONE_INTENT_WEIGHT"`
	KeywordWeight float64 `yaml:"keyword_weight" envconfig:"TONE_KEYWORD_WEIGHT"`

	// Context modifiers
	Amplifier         float64 `yaml:"amplifier" envconfig:"TONE_AMPLIFIER"`
	Hedge             float64 `yaml:"hedge" envconfig:"TONE_HEDGE"`
	ContextWindow     int     `yaml:"context_window" envconfig:"TONE_CONTEXT_WINDOW"`
	NegationLookahead int     `yaml:"negation_lookahead" envconfig:"TONE_NEGATION_LOOKAHEAD"`

	ContrastBefore float64 `yaml:"contrast_before" envconfig:"TONE_CONTRAST_BEFORE"`
	ContrastAfter  float64 `yaml:"contrast_after" envconfig:"TONE_CONTRAST_AFTER"`

	IntentMultiplier       float64 `yaml:"intent_multiplier" envconfig:"TONE_INTENT_MULTIPLIER"`
	StrongIntentMultiplier float64 `yaml:"strong_intent_multiplier" envconfig:"TONE_STRONG_INTENT_MULTIPLIER"`

	NGramGap         int     `yaml:"ngram_gap" envconfig:"TONE_NGRAM_GAP"`
	NGramMatchWeight float64 `yaml:"ngram_match_weight" envconfig:"TONE_NGRAM_MATCH_WEIGHT"`

	Epsilon float64 `yaml:"epsilon" envconfig:"TONE_EPSILON"`

	// KeywordOnly disables context modifiers, contrast splitting and intent
	// scoring. Useful to compare against plain keyword counting.
	KeywordOnly bool `yaml:"keyword_only" envconfig:"TONE_KEYWORD_ONLY"`

	TopTerms int `yaml:"top_terms" envconfig:"TONE_TOP_TERMS"`
	Workers  int `yaml:"workers" envconfig:"TONE_WORKERS"`

	// DictionaryPath points to a snapshot; empty means the built-in seed.
	DictionaryPath string `yaml:"dictionary_path" envconfig:"TONE_DICTIONARY_PATH"`
}

// DefaultConfig returns standard configuration
func DefaultConfig() Config {
	return Config{
		ContextWeight:          0.4,
		NGramWeight:            0.3,
		IntentWeight:           0.2,
		KeywordWeight:          0.1,
		Amplifier:              1.5,
		Hedge:                  0.5,
		ContextWindow:          10,
		NegationLookahead:      10,
		ContrastBefore:         0.7,
		ContrastAfter:          1.3,
		IntentMultiplier:       1.2,
		StrongIntentMultiplier: 1.5,
		NGramGap:               20,
		NGramMatchWeight:       2.0,
		Epsilon:                1e-6,
		TopTerms:               5,
		Workers:                runtime.NumCPU(),
	}
}

// LoadConfig builds a Config from defaults, then the YAML file at path (if
// any), then environment variables. Optional env files are loaded into the
// process environment first; variables already set are not overridden.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, &ConfigError{Op: "load config", Err: err}
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, &ConfigError{Op: "load config", Err: fmt.Errorf("parse %s: %w", path, err)}
		}
	}

	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return config, &ConfigError{Op: "load env file", Err: err}
		}
	}

	if err := envconfig.Process("", &config); err != nil {
		return config, &ConfigError{Op: "load env", Err: err}
	}

	return config, config.Validate()
}

// Validate checks that the configuration describes a usable engine.
func (c Config) Validate() error {
	weights := []float64{c.ContextWeight, c.NGramWeight, c.IntentWeight, c.KeywordWeight}
	var sum float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return configErrorf("validate config", "aggregation weights must be non-negative, got %v", weights)
		}
		sum += w
	}
	if math.Abs(sum-1) > 1e-6 {
		return configErrorf("validate config", "aggregation weights must sum to 1, got %.6f", sum)
	}

	positive := map[string]float64{
		"amplifier":                c.Amplifier,
		"hedge":                    c.Hedge,
		"contrast_before":          c.ContrastBefore,
		"contrast_after":           c.ContrastAfter,
		"intent_multiplier":        c.IntentMultiplier,
		"strong_intent_multiplier": c.StrongIntentMultiplier,
		"ngram_match_weight":       c.NGramMatchWeight,
		"epsilon":                  c.Epsilon,
	}
	for name, v := range positive {
		if !(v > 0) {
			return configErrorf("validate config", "%s must be positive, got %v", name, v)
		}
	}

	if c.ContextWindow < 0 || c.NegationLookahead < 0 || c.NGramGap < 0 {
		return configErrorf("validate config", "windows and gaps must not be negative")
	}
	if c.TopTerms < 0 {
		return configErrorf("validate config", "top_terms must not be negative")
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}
