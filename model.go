package langdet

// Model is the shared probability matrix a detector scores against: for
// every n-gram observed in any profile, a dense vector holding one
// conditional probability per registered language.
//
// A Model is assembled once by a Builder and never mutated afterwards, so it
// may be shared by any number of detectors without locking.
type Model struct {
	languages []string
	index     map[string]int
	probs     map[string][]float64
}

// Lookup returns the probability vector for ngram. The slot at detection
// index i holds the probability of the n-gram given language i and the
// n-gram's length; languages that never observed the n-gram keep 0. ok is
// false when no language observed the n-gram at all.
//
// The returned slice is the model's own storage and must not be modified.
func (m *Model) Lookup(ngram string) (vec []float64, ok bool) {
	vec, ok = m.probs[ngram]
	return vec, ok
}

// IndexOf returns the detection index assigned to the named language, or
// ok=false if no profile for it was merged.
func (m *Model) IndexOf(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// Languages returns the registered language names in merge order. The
// returned slice is a copy.
func (m *Model) Languages() []string {
	out := make([]string, len(m.languages))
	copy(out, m.languages)
	return out
}

// Len returns the number of registered languages.
func (m *Model) Len() int {
	return len(m.languages)
}
