package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// --- Lexicon ---

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(Filler, nil)
	assert.ErrorIs(t, err, ErrEmptyCategory)

	_, err = New(Filler, []string{"えー", ""})
	assert.ErrorIs(t, err, ErrEmptyTerm)
}

func TestNew_DeduplicatesPreservingOrder(t *testing.T) {
	l, err := New(Positive, []string{"b", "a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, l.Terms())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, Positive, l.Category())
}

func TestTerms_ReturnsCopy(t *testing.T) {
	l, err := New(Negative, []string{"x"})
	require.NoError(t, err)
	terms := l.Terms()
	terms[0] = "mutated"
	assert.Equal(t, []string{"x"}, l.Terms())
}

func TestContainsAny_Substring(t *testing.T) {
	l, err := New(Negative, []string{"でも", "無理"})
	require.NoError(t, err)
	assert.True(t, l.ContainsAny("でもね"))
	assert.True(t, l.ContainsAny("無理です"))
	assert.False(t, l.ContainsAny("大丈夫"))
}

func TestCount_OverlappingEntries(t *testing.T) {
	l, err := New(Filler, []string{"あ", "ああ"})
	require.NoError(t, err)
	// "あ" occurs 4 times, "ああ" twice (non-overlapping within itself).
	assert.Equal(t, 6, l.Count("ああ ああ"))
	assert.Equal(t, 0, l.Count(""))
}

// --- Registry ---

func TestDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, 15, r.Positive().Len())
	assert.Equal(t, 17, r.Negative().Len())
	assert.Equal(t, 21, r.Filler().Len())
	assert.Equal(t, 9, r.JobSearch().Len())
}

func TestRegistry_Lexicon(t *testing.T) {
	r := Default()
	for _, c := range Categories() {
		l, err := r.Lexicon(c)
		require.NoError(t, err)
		assert.Equal(t, c, l.Category())
	}
	_, err := r.Lexicon("bogus")
	assert.ErrorIs(t, err, ErrUnknownCat)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("job_search")
	require.NoError(t, err)
	assert.Equal(t, JobSearch, c)

	_, err = ParseCategory("jobsearch")
	assert.ErrorIs(t, err, ErrUnknownCat)
}

func TestDecode(t *testing.T) {
	in := `
positive: [great]
negative: [awful, "no way"]
filler: [um]
job_search: [recruiter]
`
	r, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"awful", "no way"}, r.Negative().Terms())
	assert.Equal(t, []string{"recruiter"}, r.JobSearch().Terms())
}

func TestDecode_UnknownKey(t *testing.T) {
	in := "positive: [a]\nnegative: [b]\nfiller: [c]\njobsearch: [d]\n"
	_, err := Decode(strings.NewReader(in))
	assert.Error(t, err)
}

func TestDecode_MissingCategory(t *testing.T) {
	in := "positive: [a]\nnegative: [b]\nfiller: [c]\n"
	_, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestLoadFile_RoundTripsDefault(t *testing.T) {
	out, err := yaml.Marshal(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().File(), r.File())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_ExampleLexicon(t *testing.T) {
	r, err := LoadFile(filepath.Join("..", "config", "lexicon.en.yaml"))
	require.NoError(t, err)
	assert.True(t, r.Negative().ContainsAny("quitting"))
	assert.Equal(t, 2, r.JobSearch().Count("a recruiter set up an interview"))
}
