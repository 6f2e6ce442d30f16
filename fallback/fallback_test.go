package fallback_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/fallback"
)

func TestDefaultDatasetIsValid(t *testing.T) {
	d := fallback.Default()

	require.NotEmpty(t, d.Episodes)
	require.NotEmpty(t, d.Articles)
	require.NotEmpty(t, d.Guests)
	require.NotEmpty(t, d.Topics)
	assert.NoError(t, d.Validate())
}

func TestDefaultGuestDerivation(t *testing.T) {
	d := fallback.Default()
	bySlug := map[string]int{}
	for i, g := range d.Guests {
		bySlug[g.Slug] = i
	}

	sarah := d.Guests[bySlug["sarah-chen"]]
	assert.Equal(t, 2, sarah.EpisodeCount)
	assert.Equal(t, []string{"Platform Engineering", "DevOps", "Leadership"}, sarah.Topics)

	priya := d.Guests[bySlug["priya-patel"]]
	assert.Equal(t, []string{"Observability", "Site Reliability Engineering"}, priya.Topics)

	elena := d.Guests[bySlug["elena-rodriguez"]]
	assert.Equal(t, 3, elena.EpisodeCount, "explicit count wins")
	assert.Equal(t, []string{"Security", "DevOps"}, elena.Topics)
}

func TestGuestTopicsDerivedFromEpisodes(t *testing.T) {
	data := []byte(`
episodes:
  - slug: one
    guest: {name: Ada Lovelace}
    topics: [DevOps]
  - slug: two
    guest: {name: Ada Lovelace}
    topics: [DevOps, Leadership]
guests:
  - slug: ada-lovelace
    name: Ada Lovelace
`)
	d, err := fallback.Parse(data)
	require.NoError(t, err)

	require.Len(t, d.Guests, 1)
	assert.Equal(t, []string{"DevOps", "Leadership"}, d.Guests[0].Topics)
	assert.Equal(t, 2, d.Guests[0].EpisodeCount)
}

func TestParseRejectsDuplicateSlugs(t *testing.T) {
	data := []byte(`
topics:
  - {slug: devops, name: DevOps}
  - {slug: devops, name: Dev Ops}
`)
	_, err := fallback.Parse(data)
	assert.ErrorContains(t, err, `duplicate topic slug "devops"`)
}

func TestWriteThenLoad(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fallback.Default().Write(&buf))

	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	d, err := fallback.Load(path)
	require.NoError(t, err)
	assert.Equal(t, fallback.Default(), d)
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	d, err := fallback.Load("")
	require.NoError(t, err)
	assert.Same(t, fallback.Default(), d)
}
