package langdet

import (
	"fmt"
	"log/slog"
)

// Builder accumulates language profiles into a Model.
//
// The language count is fixed at construction so every probability vector is
// allocated at its final length the first time its n-gram appears; nothing
// resizes afterwards. All profiles for one model must go through the same
// Builder, sequentially: each added profile is assigned the next detection
// index.
type Builder struct {
	size   int
	logger *slog.Logger
	model  *Model
}

type BuilderOption func(b *Builder)

// WithLogger routes the builder's warnings (malformed n-grams in a profile)
// to the given logger instead of slog.Default().
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder returns a Builder sized for languageCount profiles.
func NewBuilder(languageCount int, opts ...BuilderOption) *Builder {
	b := &Builder{
		size:   languageCount,
		logger: slog.Default(),
		model: &Model{
			index: make(map[string]int, languageCount),
			probs: make(map[string][]float64),
		},
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Add merges one profile into the model under construction. The profile's
// language is appended to the model's language list, so its detection index
// is its merge position. Each frequency entry becomes the conditional
// probability count/NWords[len-1] at that index of the n-gram's vector.
//
// Entries whose n-gram length falls outside [1, MaxNGramLength] are skipped
// with a warning; the rest of the profile is still merged. Add fails before
// touching the model if the language is already registered or if the builder
// already holds as many languages as it was sized for.
func (b *Builder) Add(p *Profile) error {
	m := b.model
	if len(m.languages) >= b.size {
		return fmt.Errorf("%w: builder sized for %d languages", ErrLanguageCount, b.size)
	}
	if _, dup := m.index[p.Name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateLanguage, p.Name)
	}

	idx := len(m.languages)
	m.languages = append(m.languages, p.Name)
	m.index[p.Name] = idx

	for ngram, count := range p.Freq {
		n := ngramLen(ngram)
		if n < 1 || n > MaxNGramLength {
			b.logger.Warn("langdet: invalid n-gram in language profile",
				"language", p.Name, "ngram", ngram, "length", n)
			continue
		}
		vec, ok := m.probs[ngram]
		if !ok {
			vec = make([]float64, b.size)
			m.probs[ngram] = vec
		}
		vec[idx] = float64(count) / float64(p.NWords[n-1])
	}

	return nil
}

// Model returns the model built so far. Once handed out the model must be
// treated as frozen: no further Add calls, shared read-only from then on.
func (b *Builder) Model() *Model {
	return b.model
}
