package langdet

import "fmt"

// Profile holds one language's n-gram statistics, as emitted by the
// langdetect profile generation tools. The JSON document shape is:
//
//	{"name": "en", "freq": {"a": 10, "ab": 5}, "n_words": [100, 50, 1]}
//
// Freq maps each n-gram to its occurrence count in the training corpus.
// NWords holds the total occurrence count per n-gram length, one slot per
// length from 1 to MaxNGramLength.
type Profile struct {
	Name   string                `json:"name"`
	Freq   map[string]int        `json:"freq"`
	NWords [MaxNGramLength]int64 `json:"n_words"`
}

func (p *Profile) validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no language name")
	}
	for ngram, count := range p.Freq {
		if count < 0 {
			return fmt.Errorf("negative count %d for n-gram %q", count, ngram)
		}
	}
	for i, total := range p.NWords {
		if total < 0 {
			return fmt.Errorf("negative total %d for n-gram length %d", total, i+1)
		}
	}
	return nil
}
