package tone

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// snapshot is the persisted form of a Dictionary. Weights are stored already
// normalized, so loading does not normalize again.
type snapshot struct {
	Version int             `json:"version"`
	Hawkish *[]LexiconEntry `json:"hawkish"`
	Dovish  *[]LexiconEntry `json:"dovish"`
	NGrams  *snapshotNGrams `json:"ngrams,omitempty"`
}

type snapshotNGrams struct {
	Hawkish [][]string `json:"hawkish"`
	Dovish  [][]string `json:"dovish"`
}

func (d *Dictionary) snapshot() snapshot {
	hawkish := d.Entries(Hawkish)
	dovish := d.Entries(Dovish)
	ngrams := &snapshotNGrams{Hawkish: [][]string{}, Dovish: [][]string{}}
	for _, n := range d.ngrams {
		if n.Polarity == Hawkish {
			ngrams.Hawkish = append(ngrams.Hawkish, n.Words)
		} else {
			ngrams.Dovish = append(ngrams.Dovish, n.Words)
		}
	}
	return snapshot{Version: d.version, Hawkish: &hawkish, Dovish: &dovish, NGrams: ngrams}
}

// Save writes the dictionary as indented JSON.
func (d *Dictionary) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.snapshot()); err != nil {
		return fmt.Errorf("error encoding dictionary: %w", err)
	}
	return nil
}

// SaveFile writes the dictionary to path, replacing any existing file.
func (d *Dictionary) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("error writing dictionary file: %w", err)
	}
	return nil
}

// LoadDictionary reads a snapshot written by Save. Both the "hawkish" and
// "dovish" arrays must be present; without an "ngrams" object the built-in
// phrases are used. Any problem yields a *ConfigError and no dictionary.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, &ConfigError{Op: "load dictionary", Err: fmt.Errorf("error parsing dictionary JSON: %w", err)}
	}
	return fromSnapshot(snap)
}

// LoadDictionaryFile opens path and calls LoadDictionary.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Op: "load dictionary", Err: err}
	}
	defer f.Close()

	return LoadDictionary(f)
}

func fromSnapshot(snap snapshot) (*Dictionary, error) {
	if snap.Hawkish == nil || snap.Dovish == nil {
		return nil, configErrorf("load dictionary", "snapshot must contain both hawkish and dovish arrays")
	}

	var entries []LexiconEntry
	for _, side := range []struct {
		polarity Polarity
		entries  []LexiconEntry
	}{
		{Hawkish, *snap.Hawkish},
		{Dovish, *snap.Dovish},
	} {
		for _, e := range side.entries {
			if e.Polarity == "" {
				e.Polarity = side.polarity
			}
			if e.Polarity != side.polarity {
				return nil, configErrorf("load dictionary", "term %q listed under %s has polarity %q", e.Term, side.polarity, e.Polarity)
			}
			if e.Weight < MinWeight || e.Weight > MaxWeight {
				return nil, configErrorf("load dictionary", "term %q weight %v outside [%v, %v]", e.Term, e.Weight, MinWeight, MaxWeight)
			}
			entries = append(entries, e)
		}
	}

	var ngrams []NGramEntry
	if snap.NGrams == nil {
		ngrams = SeedNGrams()
	} else {
		for _, words := range snap.NGrams.Hawkish {
			ngrams = append(ngrams, NGramEntry{Words: words, Polarity: Hawkish})
		}
		for _, words := range snap.NGrams.Dovish {
			ngrams = append(ngrams, NGramEntry{Words: words, Polarity: Dovish})
		}
	}

	version := snap.Version
	if version < 1 {
		version = 1
	}
	return buildDictionary(entries, ngrams, version)
}
