package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/config"
	"content-hub/fallback"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(&app{loadConfig: config.Default})
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestEpisodesCommand(t *testing.T) {
	out, err := run(t, "episodes", "--offline", "--topic", "DevOps", "--sort", "popular")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "Showing 3 episodes", lines[0])
	assert.Equal(t, "share: ?sort=popular&topic=DevOps", lines[1])
	assert.Contains(t, lines[3], "Building Internal Developer Platforms")
	assert.Contains(t, lines[4], "Supply Chain Security")
}

func TestEpisodesCommandLimit(t *testing.T) {
	out, err := run(t, "episodes", "--offline", "-q", "sarah", "-n", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 2 episodes")
	assert.Contains(t, out, "Sarah Chen")
	assert.NotContains(t, out, "Golden Paths")
}

func TestEpisodesCommandDefaultHasNoShareLine(t *testing.T) {
	out, err := run(t, "episodes", "--offline", "--topic", "all", "--sort", "newest")
	require.NoError(t, err)

	assert.NotContains(t, out, "share:")
	assert.True(t, strings.HasPrefix(out, "Showing "))
}

func TestArticlesCommand(t *testing.T) {
	out, err := run(t, "articles", "--offline", "--topic", "Kubernetes")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 1 article\n")
	assert.Contains(t, out, "[Kubernetes, 6 min read]")
}

func TestTopicsCommand(t *testing.T) {
	out, err := run(t, "topics", "--offline")
	require.NoError(t, err)

	assert.Contains(t, out, "Topics (8):")
	assert.Regexp(t, `DevOps \(devops\)\s+episodes=3 articles=1`, out)
}

func TestHealthCommand(t *testing.T) {
	out, err := run(t, "health", "--offline")
	require.NoError(t, err)
	assert.Contains(t, out, "cms: disabled")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out, err = run(t, "health", "--cms-url", srv.URL)
	assert.ErrorIs(t, err, errCMSDown)
	assert.Contains(t, out, "cms: down")
}

func TestImportFeedCommand(t *testing.T) {
	srv := newFeedServer()
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "dataset.yaml")
	_, err := run(t, "import-feed", srv.URL, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	d, err := fallback.Parse(data)
	require.NoError(t, err)
	require.Len(t, d.Episodes, 1)
	assert.Equal(t, "hello-world", d.Episodes[0].Slug)
	require.Len(t, d.Guests, 1)
	assert.Equal(t, "ada-lovelace", d.Guests[0].Slug)
}

func newFeedServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
<channel>
  <title>Feed</title>
  <item>
    <title>Hello World</title>
    <description>First episode.</description>
    <pubDate>Wed, 20 Nov 2024 09:00:00 GMT</pubDate>
    <itunes:author>Ada Lovelace</itunes:author>
    <category>DevOps</category>
  </item>
</channel>
</rss>`))
	}))
}

func TestImportFeedReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	srv := newFeedServer()
	defer srv.Close()

	out, err := run(t, "import-feed", srv.URL, "-o", "/dev/full")
	assert.Error(t, err)
	assert.NotContains(t, out, "wrote 1 episodes")
}

func TestWriteDatasetFileMissingDir(t *testing.T) {
	err := writeDatasetFile(filepath.Join(t.TempDir(), "missing", "dataset.yaml"), &fallback.Dataset{})
	assert.ErrorContains(t, err, "create ")
}

func TestImportFeedRequiresURL(t *testing.T) {
	_, err := run(t, "import-feed")
	assert.Error(t, err)
}
