package langdet

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func enProfile() *Profile {
	return &Profile{
		Name:   "en",
		Freq:   map[string]int{"a": 10, "ab": 5},
		NWords: [MaxNGramLength]int64{100, 50, 1},
	}
}

func frProfile() *Profile {
	return &Profile{
		Name:   "fr",
		Freq:   map[string]int{"a": 3},
		NWords: [MaxNGramLength]int64{30, 1, 1},
	}
}

func requireVec(t *testing.T, m *Model, ngram string, want []float64) {
	t.Helper()
	vec, ok := m.Lookup(ngram)
	require.True(t, ok, "n-gram %q not in model", ngram)
	require.Len(t, vec, len(want))
	for i := range want {
		require.InDelta(t, want[i], vec[i], 1e-12, "slot %d of %q", i, ngram)
	}
}

func TestBuilderAdd(t *testing.T) {
	b := NewBuilder(2)
	require.NoError(t, b.Add(enProfile()))
	require.NoError(t, b.Add(frProfile()))

	m := b.Model()
	require.Equal(t, []string{"en", "fr"}, m.Languages())
	requireVec(t, m, "a", []float64{0.10, 0.10})
	requireVec(t, m, "ab", []float64{0.10, 0.0})
}

func TestBuilderVectorLengths(t *testing.T) {
	b := NewBuilder(3)
	require.NoError(t, b.Add(enProfile()))
	require.NoError(t, b.Add(frProfile()))

	// Only two of three languages merged; vectors still carry the full
	// session size.
	m := b.Model()
	for _, ngram := range []string{"a", "ab"} {
		vec, ok := m.Lookup(ngram)
		require.True(t, ok)
		require.Len(t, vec, 3)
	}
}

func TestBuilderDuplicateLanguage(t *testing.T) {
	b := NewBuilder(3)
	require.NoError(t, b.Add(enProfile()))
	require.NoError(t, b.Add(frProfile()))

	err := b.Add(enProfile())
	require.ErrorIs(t, err, ErrDuplicateLanguage)
	require.ErrorContains(t, err, "en")

	// The failed merge must leave the model exactly as it was.
	m := b.Model()
	require.Equal(t, []string{"en", "fr"}, m.Languages())
	requireVec(t, m, "a", []float64{0.10, 0.10, 0.0})
	requireVec(t, m, "ab", []float64{0.10, 0.0, 0.0})
}

func TestBuilderInvalidNGramSkipped(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(1, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	err := b.Add(&Profile{
		Name:   "en",
		Freq:   map[string]int{"a": 10, "abcd": 7, "": 3},
		NWords: [MaxNGramLength]int64{100, 50, 1},
	})
	require.NoError(t, err)

	m := b.Model()
	requireVec(t, m, "a", []float64{0.10})
	_, ok := m.Lookup("abcd")
	require.False(t, ok)
	_, ok = m.Lookup("")
	require.False(t, ok)
	require.Contains(t, buf.String(), "invalid n-gram")
}

func TestBuilderNGramLengthInRunes(t *testing.T) {
	// A single CJK character is a 1-gram even though it is 3 bytes long.
	b := NewBuilder(1)
	err := b.Add(&Profile{
		Name:   "zh-cn",
		Freq:   map[string]int{"的": 50, "的一": 10},
		NWords: [MaxNGramLength]int64{200, 100, 1},
	})
	require.NoError(t, err)

	m := b.Model()
	requireVec(t, m, "的", []float64{0.25})
	requireVec(t, m, "的一", []float64{0.10})
}

func TestBuilderLanguageCountExceeded(t *testing.T) {
	b := NewBuilder(1)
	require.NoError(t, b.Add(enProfile()))

	err := b.Add(frProfile())
	require.ErrorIs(t, err, ErrLanguageCount)

	m := b.Model()
	require.Equal(t, []string{"en"}, m.Languages())
	_, ok := m.IndexOf("fr")
	require.False(t, ok)
}

func TestBuilderLanguageOrderStable(t *testing.T) {
	b := NewBuilder(2)
	require.NoError(t, b.Add(enProfile()))
	require.NoError(t, b.Add(frProfile()))

	m := b.Model()
	require.Equal(t, m.Languages(), m.Languages())

	// Languages returns a copy; the caller cannot reorder the model.
	langs := m.Languages()
	langs[0], langs[1] = langs[1], langs[0]
	require.Equal(t, []string{"en", "fr"}, m.Languages())
}
