package treebank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpusPair(t *testing.T, dir, name, canonical, headline string) string {
	t.Helper()
	canonicalPath := filepath.Join(dir, name+CanonicalExt)
	require.NoError(t, os.WriteFile(canonicalPath, []byte(canonical), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+HeadlineExt), []byte(headline), 0o644))
	return canonicalPath
}

func TestHeadlinePathFor(t *testing.T) {
	assert.Equal(t, "corpus/times.headline", HeadlinePathFor("corpus/times.canonical"))
}

func TestLoadPairFile(t *testing.T) {
	dir := t.TempDir()
	canonicalPath := writeCorpusPair(t, dir, "times",
		"(S (NP (DT The) (NN cat)) (VP (VBZ sits)))\n(S (NP (PRP He)) (VP (VBD won)))\n",
		"(S (NP (NN Cat)) (VP (VBZ sits)))\n(S (VP (VBZ wins)))\n",
	)

	pairs, warnings, err := LoadPairFile(canonicalPath)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, pairs, 2)

	assert.Equal(t, "times", pairs[0].Newspaper)
	assert.Equal(t, "times-1", pairs[0].SentenceID)
	assert.Equal(t, "times-2", pairs[1].SentenceID)

	assert.Equal(t, "The cat sits", pairs[0].CanonicalText)
	assert.Equal(t, "Cat sits", pairs[0].HeadlineText)
	assert.Equal(t, 9, pairs[0].Canonical.Size())
	assert.Equal(t, 7, pairs[0].Headline.Size())
}

func TestLoadPairFileBlankAndBadLines(t *testing.T) {
	dir := t.TempDir()
	canonicalPath := writeCorpusPair(t, dir, "herald",
		"(S (NN dogs))\n\n(S (NN cats)\n",
		"(S (NN dog))\n(S (NN x))\n(S (NN cat))\n",
	)

	pairs, warnings, err := LoadPairFile(canonicalPath)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	// Blank canonical line: pair kept, tree nil.
	assert.Nil(t, pairs[1].Canonical)
	assert.NotNil(t, pairs[1].Headline)

	// Unparseable canonical line: nil tree plus a warning.
	assert.Nil(t, pairs[2].Canonical)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Error(), "line 3")
}

func TestLoadPairFileMisaligned(t *testing.T) {
	dir := t.TempDir()
	canonicalPath := writeCorpusPair(t, dir, "post",
		"(S (NN dogs))\n(S (NN cats))\n",
		"(S (NN dog))\n",
	)

	_, _, err := LoadPairFile(canonicalPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "misaligned")
}

func TestLoadPairFileMissingHeadline(t *testing.T) {
	dir := t.TempDir()
	canonicalPath := filepath.Join(dir, "solo"+CanonicalExt)
	require.NoError(t, os.WriteFile(canonicalPath, []byte("(S (NN dogs))\n"), 0o644))

	_, _, err := LoadPairFile(canonicalPath)
	assert.Error(t, err)
}
