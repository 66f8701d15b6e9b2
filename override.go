package tone

import (
	"bytes"
	"math"

	jsonpatch "github.com/evanphx/json-patch"
)

// WithOverrides returns a copy of d with the given term weights replaced and
// the version incremented. Weights are clamped to [MinWeight, MaxWeight] and
// are not normalized again. Unknown terms are rejected. The receiver is left
// untouched, so in-flight batches keep scoring against the old version.
func (d *Dictionary) WithOverrides(weights map[string]float64) (*Dictionary, error) {
	for term, w := range weights {
		if _, ok := d.lookup(term); !ok {
			return nil, configErrorf("override weights", "unknown term %q", term)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, configErrorf("override weights", "term %q has invalid weight %v", term, w)
		}
	}

	entries := append(d.Entries(Hawkish), d.Entries(Dovish)...)
	for i, e := range entries {
		if w, ok := weights[e.Term]; ok {
			entries[i].Weight = clampWeight(w)
		}
	}

	return buildDictionary(entries, d.ngrams, d.version+1)
}

// Patch applies an RFC 6902 JSON patch to the snapshot form of d and returns
// the result as a new dictionary with the version incremented, e.g.
//
//	[{"op": "replace", "path": "/hawkish/0/weight", "value": 2.1}]
//
// The patched snapshot goes through the same validation as LoadDictionary.
func (d *Dictionary) Patch(patch []byte) (*Dictionary, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, &ConfigError{Op: "patch dictionary", Err: err}
	}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, &ConfigError{Op: "patch dictionary", Err: err}
	}

	patched, err := p.Apply(buf.Bytes())
	if err != nil {
		return nil, &ConfigError{Op: "patch dictionary", Err: err}
	}

	next, err := LoadDictionary(bytes.NewReader(patched))
	if err != nil {
		return nil, err
	}
	next.version = d.version + 1
	return next, nil
}
