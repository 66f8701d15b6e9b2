package tone

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/twmb/murmur3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Weight bounds applied after normalization and to every override.
const (
	MinWeight = 0.3
	MaxWeight = 3.0
)

// Dictionary holds the polarity-weighted lexicon and the n-gram pool. A
// Dictionary is never modified once built; overrides return a new value with
// a higher version, so it can be shared freely between goroutines.
type Dictionary struct {
	entries map[Polarity]map[string]LexiconEntry
	order   map[Polarity][]string
	ngrams  []NGramEntry
	version int
}

// NewDictionary validates entries and n-grams, normalizes the weights of each
// polarity to mean 1.0 and standard deviation 0.5, and clamps them to
// [MinWeight, MaxWeight].
func NewDictionary(entries []LexiconEntry, ngrams []NGramEntry) (*Dictionary, error) {
	normalized, err := normalizeWeights(entries)
	if err != nil {
		return nil, err
	}
	return buildDictionary(normalized, ngrams, 1)
}

// DefaultDictionary builds the dictionary from the built-in seed lexicon.
func DefaultDictionary() *Dictionary {
	dict, err := NewDictionary(SeedEntries(), SeedNGrams())
	if err != nil {
		panic(err)
	}
	return dict
}

// buildDictionary validates already-normalized entries.
func buildDictionary(entries []LexiconEntry, ngrams []NGramEntry, version int) (*Dictionary, error) {
	d := &Dictionary{
		entries: map[Polarity]map[string]LexiconEntry{
			Hawkish: make(map[string]LexiconEntry),
			Dovish:  make(map[string]LexiconEntry),
		},
		order:   make(map[Polarity][]string),
		version: version,
	}

	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := d.lookup(e.Term); dup {
			return nil, configErrorf("build dictionary", "duplicate term %q", e.Term)
		}
		d.entries[e.Polarity][e.Term] = e
		d.order[e.Polarity] = append(d.order[e.Polarity], e.Term)
	}

	seen := make(map[string]bool, len(ngrams))
	for _, n := range ngrams {
		if !n.Polarity.Valid() {
			return nil, configErrorf("build dictionary", "n-gram %q has invalid polarity %q", n.Key(), n.Polarity)
		}
		if len(n.Words) == 0 {
			return nil, configErrorf("build dictionary", "empty n-gram")
		}
		for _, w := range n.Words {
			if strings.TrimSpace(w) == "" {
				return nil, configErrorf("build dictionary", "n-gram %q contains an empty word", n.Key())
			}
		}
		if seen[n.Key()] {
			return nil, configErrorf("build dictionary", "duplicate n-gram %q", n.Key())
		}
		seen[n.Key()] = true
		d.ngrams = append(d.ngrams, NGramEntry{
			Words:    append([]string(nil), n.Words...),
			Polarity: n.Polarity,
		})
	}

	return d, nil
}

func validateEntry(e LexiconEntry) error {
	if strings.TrimSpace(e.Term) == "" {
		return configErrorf("build dictionary", "empty term")
	}
	if !e.Polarity.Valid() {
		return configErrorf("build dictionary", "term %q has invalid polarity %q", e.Term, e.Polarity)
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight <= 0 {
		return configErrorf("build dictionary", "term %q has invalid weight %v", e.Term, e.Weight)
	}
	return nil
}

// normalizeWeights rescales each polarity independently.
func normalizeWeights(entries []LexiconEntry) ([]LexiconEntry, error) {
	out := make([]LexiconEntry, len(entries))
	copy(out, entries)

	for _, p := range []Polarity{Hawkish, Dovish} {
		var (
			idx     []int
			weights []float64
		)
		for i, e := range out {
			if e.Polarity != p {
				continue
			}
			if err := validateEntry(e); err != nil {
				return nil, err
			}
			idx = append(idx, i)
			weights = append(weights, e.Weight)
		}
		if len(weights) == 0 {
			continue
		}

		mean, std := stat.PopMeanStdDev(weights, nil)
		if std == 0 {
			std = 1.0
		}
		for _, i := range idx {
			out[i].Weight = clampWeight(1.0 + 0.5*(out[i].Weight-mean)/std)
		}
	}

	return out, nil
}

func clampWeight(w float64) float64 {
	return math.Max(MinWeight, math.Min(MaxWeight, w))
}

func (d *Dictionary) lookup(term string) (LexiconEntry, bool) {
	if e, ok := d.entries[Hawkish][term]; ok {
		return e, true
	}
	e, ok := d.entries[Dovish][term]
	return e, ok
}

// Lookup returns the entry for term.
func (d *Dictionary) Lookup(term string) (LexiconEntry, bool) {
	return d.lookup(term)
}

// Entries returns the entries of polarity p in insertion order.
func (d *Dictionary) Entries(p Polarity) []LexiconEntry {
	out := make([]LexiconEntry, 0, len(d.order[p]))
	for _, term := range d.order[p] {
		out = append(out, d.entries[p][term])
	}
	return out
}

// NGrams returns a copy of the n-gram pool.
func (d *Dictionary) NGrams() []NGramEntry {
	out := make([]NGramEntry, len(d.ngrams))
	for i, n := range d.ngrams {
		out[i] = NGramEntry{Words: append([]string(nil), n.Words...), Polarity: n.Polarity}
	}
	return out
}

// Len returns the number of single-term entries.
func (d *Dictionary) Len() int {
	return len(d.order[Hawkish]) + len(d.order[Dovish])
}

// Version increases by one with every override.
func (d *Dictionary) Version() int {
	return d.version
}

// Match finds every lexicon term occurring in text as a substring. Each
// contribution is the entry weight times the number of non-overlapping
// occurrences.
func (d *Dictionary) Match(text string) Matches {
	var m Matches
	if text == "" {
		return m
	}
	for _, p := range []Polarity{Hawkish, Dovish} {
		for _, term := range d.order[p] {
			count := strings.Count(text, term)
			if count == 0 {
				continue
			}
			m.add(p, TermMatch{
				Term:   term,
				Weight: d.entries[p][term].Weight * float64(count),
				Count:  count,
			})
		}
	}
	return m
}

// Fingerprint hashes the version, every weight and every n-gram. Two
// dictionaries with the same fingerprint score identically.
func (d *Dictionary) Fingerprint() uint64 {
	h := murmur3.New64()
	h.Write([]byte(strconv.Itoa(d.version)))
	for _, p := range []Polarity{Hawkish, Dovish} {
		for _, term := range d.order[p] {
			h.Write([]byte{0})
			h.Write([]byte(string(p) + ":" + term + "=" + strconv.FormatFloat(d.entries[p][term].Weight, 'g', -1, 64)))
		}
	}
	for _, n := range d.ngrams {
		h.Write([]byte{1})
		h.Write([]byte(string(n.Polarity) + ":" + n.Key()))
	}
	return h.Sum64()
}

// PolarityStats summarizes the entries of one polarity.
type PolarityStats struct {
	Count      int            `json:"count"`
	NGrams     int            `json:"ngrams"`
	MeanWeight float64        `json:"mean_weight"`
	MinWeight  float64        `json:"min_weight"`
	MaxWeight  float64        `json:"max_weight"`
	Categories map[string]int `json:"categories"`
}

// DictionaryStats groups PolarityStats by polarity.
type DictionaryStats struct {
	Version int           `json:"version"`
	Hawkish PolarityStats `json:"hawkish"`
	Dovish  PolarityStats `json:"dovish"`
}

// Stats reports counts and weight ranges per polarity and category.
func (d *Dictionary) Stats() DictionaryStats {
	return DictionaryStats{
		Version: d.version,
		Hawkish: d.polarityStats(Hawkish),
		Dovish:  d.polarityStats(Dovish),
	}
}

func (d *Dictionary) polarityStats(p Polarity) PolarityStats {
	ps := PolarityStats{Categories: make(map[string]int)}
	for _, n := range d.ngrams {
		if n.Polarity == p {
			ps.NGrams++
		}
	}

	entries := d.Entries(p)
	if len(entries) == 0 {
		return ps
	}
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
		ps.Categories[e.Category]++
	}
	ps.Count = len(entries)
	ps.MeanWeight = stat.Mean(weights, nil)
	ps.MinWeight = floats.Min(weights)
	ps.MaxWeight = floats.Max(weights)
	return ps
}

// Categories lists the distinct categories of p in sorted order.
func (d *Dictionary) Categories(p Polarity) []string {
	stats := d.polarityStats(p)
	out := make([]string, 0, len(stats.Categories))
	for c := range stats.Categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
