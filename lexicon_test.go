package tone

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestDefaultDictionaryNormalization(t *testing.T) {
	dict := DefaultDictionary()

	for _, p := range []Polarity{Hawkish, Dovish} {
		entries := dict.Entries(p)
		require.NotEmpty(t, entries)

		weights := make([]float64, len(entries))
		for i, e := range entries {
			weights[i] = e.Weight
			assert.GreaterOrEqual(t, e.Weight, MinWeight, e.Term)
			assert.LessOrEqual(t, e.Weight, MaxWeight, e.Term)
			assert.Equal(t, p, e.Polarity)
		}
		assert.InDelta(t, 1.0, stat.Mean(weights, nil), 0.05, "mean weight of %s", p)
	}
}

func TestDefaultDictionaryContents(t *testing.T) {
	dict := DefaultDictionary()
	stats := dict.Stats()

	assert.Equal(t, 54, stats.Hawkish.Count)
	assert.Equal(t, 59, stats.Dovish.Count)
	assert.Equal(t, 26, stats.Hawkish.NGrams)
	assert.Equal(t, 26, stats.Dovish.NGrams)
	assert.Equal(t, 113, dict.Len())
	assert.Equal(t, 1, dict.Version())
	assert.Contains(t, dict.Categories(Hawkish), "financial_stability")
	assert.Contains(t, dict.Categories(Dovish), "external")
	assert.Equal(t, MinWeight, stats.Hawkish.MinWeight)

	e, ok := dict.Lookup("침체")
	require.True(t, ok)
	assert.Equal(t, Dovish, e.Polarity)
	assert.Equal(t, "growth", e.Category)
}

func TestNewDictionaryValidation(t *testing.T) {
	tests := []struct {
		entries []LexiconEntry
		ngrams  []NGramEntry
		desc    string
	}{
		{
			entries: []LexiconEntry{
				{Term: "긴축", Polarity: Hawkish, Weight: 2},
				{Term: "긴축", Polarity: Dovish, Weight: 1},
			},
			desc: "term in both polarities",
		},
		{
			entries: []LexiconEntry{
				{Term: "긴축", Polarity: Hawkish, Weight: 2},
				{Term: "긴축", Polarity: Hawkish, Weight: 1},
			},
			desc: "duplicate term",
		},
		{
			entries: []LexiconEntry{{Term: " ", Polarity: Hawkish, Weight: 1}},
			desc:    "empty term",
		},
		{
			entries: []LexiconEntry{{Term: "긴축", Polarity: "neutral", Weight: 1}},
			desc:    "unknown polarity",
		},
		{
			entries: []LexiconEntry{{Term: "긴축", Polarity: Hawkish, Weight: 0}},
			desc:    "zero weight",
		},
		{
			ngrams: []NGramEntry{{Words: []string{"물가", ""}, Polarity: Hawkish}},
			desc:   "empty n-gram word",
		},
		{
			ngrams: []NGramEntry{
				{Words: []string{"물가", "상승"}, Polarity: Hawkish},
				{Words: []string{"물가", "상승"}, Polarity: Dovish},
			},
			desc: "duplicate n-gram",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := NewDictionary(tt.entries, tt.ngrams)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "build dictionary", cfgErr.Op)
		})
	}
}

func TestNormalizeSingleEntry(t *testing.T) {
	dict, err := NewDictionary([]LexiconEntry{
		{Term: "긴축", Polarity: Hawkish, Weight: 2.7},
	}, nil)
	require.NoError(t, err)

	e, _ := dict.Lookup("긴축")
	assert.Equal(t, 1.0, e.Weight)
}

func TestNormalizeWeights(t *testing.T) {
	// mean 2, population std 1
	dict, err := NewDictionary([]LexiconEntry{
		{Term: "a", Polarity: Hawkish, Weight: 1},
		{Term: "b", Polarity: Hawkish, Weight: 3},
		{Term: "c", Polarity: Dovish, Weight: 10},
		{Term: "d", Polarity: Dovish, Weight: 10},
		{Term: "e", Polarity: Dovish, Weight: 40},
	}, nil)
	require.NoError(t, err)

	for term, want := range map[string]float64{"a": 0.5, "b": 1.5} {
		e, _ := dict.Lookup(term)
		assert.InDelta(t, want, e.Weight, 1e-12, term)
	}

	// Dovish: mean 20, std ≈ 14.142; e → 1 + 0.5·20/14.142 ≈ 1.707, c/d → 0.646
	e, _ := dict.Lookup("e")
	assert.InDelta(t, 1.7071067811865475, e.Weight, 1e-9)
	c, _ := dict.Lookup("c")
	assert.InDelta(t, 0.6464466094067263, c.Weight, 1e-9)
}

func TestDictionaryMatch(t *testing.T) {
	dict, err := NewDictionary([]LexiconEntry{
		{Term: "긴축", Polarity: Hawkish, Weight: 2},
		{Term: "완화", Polarity: Dovish, Weight: 1},
	}, nil)
	require.NoError(t, err)

	got := dict.Match("긴축 긴축 완화, 그리고 긴축기조")
	want := Matches{
		Hawkish: []TermMatch{{Term: "긴축", Weight: 3, Count: 3}},
		Dovish:  []TermMatch{{Term: "완화", Weight: 1, Count: 1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Match mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3.0, got.Sum(Hawkish))
	assert.Equal(t, 1.0, got.Sum(Dovish))

	assert.True(t, dict.Match("").Empty())
	assert.True(t, dict.Match("회의를 개최하였다").Empty())
}

func TestFingerprint(t *testing.T) {
	a := DefaultDictionary()
	b := DefaultDictionary()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, err := a.WithOverrides(map[string]float64{"긴축": 2.5})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
