package tone

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termWeights(d *Dictionary) map[string]float64 {
	out := make(map[string]float64)
	for _, p := range []Polarity{Hawkish, Dovish} {
		for _, e := range d.Entries(p) {
			out[string(p)+":"+e.Term] = e.Weight
		}
	}
	return out
}

func TestSnapshotRoundTrip(t *testing.T) {
	dict := DefaultDictionary()

	var buf bytes.Buffer
	require.NoError(t, dict.Save(&buf))

	loaded, err := LoadDictionary(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(termWeights(dict), termWeights(loaded)); diff != "" {
		t.Errorf("term weights differ after round trip (-want +got):\n%s", diff)
	}
	for _, p := range []Polarity{Hawkish, Dovish} {
		if diff := cmp.Diff(dict.Entries(p), loaded.Entries(p)); diff != "" {
			t.Errorf("%s entries differ (-want +got):\n%s", p, diff)
		}
	}
	if diff := cmp.Diff(dict.NGrams(), loaded.NGrams()); diff != "" {
		t.Errorf("n-grams differ (-want +got):\n%s", diff)
	}
	assert.Equal(t, dict.Version(), loaded.Version())
	assert.Equal(t, dict.Fingerprint(), loaded.Fingerprint())
}

func TestSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.json")
	dict := DefaultDictionary()
	require.NoError(t, dict.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"term": "긴축"`)

	loaded, err := LoadDictionaryFile(path)
	require.NoError(t, err)
	assert.Equal(t, dict.Fingerprint(), loaded.Fingerprint())

	config := DefaultConfig()
	config.DictionaryPath = path
	a, err := NewAnalyzer(WithConfig(config))
	require.NoError(t, err)
	assert.Equal(t, dict.Fingerprint(), a.Dictionary().Fingerprint())
}

func TestLoadDictionaryErrors(t *testing.T) {
	tests := []struct {
		input string
		desc  string
	}{
		{`{`, "malformed JSON"},
		{`{"hawkish": []}`, "missing dovish array"},
		{`{"dovish": []}`, "missing hawkish array"},
		{`{"hawkish": [{"term": "긴축", "polarity": "hawkish", "weight": 5}], "dovish": []}`, "weight above range"},
		{`{"hawkish": [{"term": "긴축", "polarity": "dovish", "weight": 1}], "dovish": []}`, "polarity mismatch"},
		{`{"hawkish": [{"term": "긴축", "polarity": "hawkish", "weight": 1}], "dovish": [{"term": "긴축", "polarity": "dovish", "weight": 1}]}`, "duplicate term"},
		{`{"hawkish": [], "dovish": [], "ngrams": {"hawkish": [["물가", ""]], "dovish": []}}`, "bad n-gram"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			dict, err := LoadDictionary(strings.NewReader(tt.input))
			assert.Nil(t, dict)
			assert.True(t, errors.Is(err, ErrConfig), "got %v", err)
		})
	}

	_, err := LoadDictionaryFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, ErrConfig))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDictionaryDefaults(t *testing.T) {
	input := `{"hawkish": [{"term": "긴축", "weight": 1.2}], "dovish": [{"term": "완화", "polarity": "dovish", "weight": 0.9}]}`

	dict, err := LoadDictionary(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, dict.Version())
	assert.Len(t, dict.NGrams(), len(SeedNGrams()))

	e, ok := dict.Lookup("긴축")
	require.True(t, ok)
	assert.Equal(t, Hawkish, e.Polarity)
	assert.Equal(t, 1.2, e.Weight)
}
