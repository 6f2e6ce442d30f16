package feeder

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/fallback"
	"content-hub/models"
)

const podcastRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>Ship It Weekly</title>
  <link>https://podcast.example.com</link>
  <description>Conversations about platforms.</description>
  <itunes:image href="https://podcast.example.com/cover.png"/>
  <item>
    <title>Golden Paths: A Practical Guide</title>
    <link>https://podcast.example.com/ep/2</link>
    <description>Sarah Chen on templates and scorecards.</description>
    <pubDate>Wed, 20 Nov 2024 09:00:00 GMT</pubDate>
    <itunes:author>Sarah Chen</itunes:author>
    <itunes:duration>3134</itunes:duration>
    <itunes:episode>2</itunes:episode>
    <category>Platform Engineering</category>
    <category>DevOps</category>
    <enclosure url="https://cdn.example.com/ep2.mp3" length="1000" type="audio/mpeg"/>
  </item>
  <item>
    <title>Golden Paths: A Practical Guide</title>
    <link>https://podcast.example.com/ep/1</link>
    <content:encoded><![CDATA[<p>We talk about <b>platforms</b> and paved roads.</p>]]></content:encoded>
    <pubDate>Wed, 13 Nov 2024 09:00:00 GMT</pubDate>
    <itunes:author>Sarah Chen</itunes:author>
    <itunes:duration>1:02:03</itunes:duration>
    <category>DevOps</category>
    <category>devops</category>
  </item>
  <item>
    <title>Listener Mailbag</title>
    <pubDate>Wed, 06 Nov 2024 09:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func TestParsePodcast(t *testing.T) {
	d, err := ParsePodcast(strings.NewReader(podcastRSS), 0)
	require.NoError(t, err)
	require.Len(t, d.Episodes, 3)

	first := d.Episodes[0]
	assert.Equal(t, "golden-paths-a-practical-guide", first.Slug)
	assert.Equal(t, "Sarah Chen on templates and scorecards.", first.Description)
	assert.Equal(t, "Sarah Chen", first.Guest.Name)
	assert.Equal(t, "52:14", first.Duration)
	assert.Equal(t, "Nov 20, 2024", first.Date)
	require.NotNil(t, first.EpisodeNumber)
	assert.Equal(t, 2, *first.EpisodeNumber)
	assert.Equal(t, "https://cdn.example.com/ep2.mp3", first.AudioURL)
	assert.Equal(t, "https://podcast.example.com/cover.png", first.Cover)
	assert.Equal(t, []string{"Platform Engineering", "DevOps"}, first.Topics)

	second := d.Episodes[1]
	assert.Equal(t, "golden-paths-a-practical-guide-2", second.Slug)
	assert.Equal(t, "1:02:03", second.Duration)
	assert.NotEmpty(t, second.Description)
	assert.NotContains(t, second.Description, "<")

	mailbag := d.Episodes[2]
	assert.Equal(t, models.UnknownGuestName, mailbag.Guest.Name)
	assert.Equal(t, models.DefaultDuration, mailbag.Duration)
	assert.NotNil(t, mailbag.Topics)

	var topicSlugs []string
	for _, tp := range d.Topics {
		topicSlugs = append(topicSlugs, tp.Slug)
	}
	assert.Equal(t, []string{"platform-engineering", "devops"}, topicSlugs)

	require.Len(t, d.Guests, 1)
	assert.Equal(t, "sarah-chen", d.Guests[0].Slug)
	assert.Equal(t, 2, d.Guests[0].EpisodeCount)
}

func TestParsePodcastLimit(t *testing.T) {
	d, err := ParsePodcast(strings.NewReader(podcastRSS), 1)
	require.NoError(t, err)
	assert.Len(t, d.Episodes, 1)
}

func introFeed(titles ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Intro Feed</title>`)
	for _, title := range titles {
		b.WriteString(`<item><title>` + title + `</title><description>Notes.</description>` +
			`<pubDate>Wed, 20 Nov 2024 09:00:00 GMT</pubDate><author>host@example.com (Ada Lovelace)</author></item>`)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestParsePodcastSuffixSkipsTakenSlugs(t *testing.T) {
	testCases := []struct {
		name   string
		titles []string
		want   []string
	}{
		{name: "suffix collides with later title", titles: []string{"Intro", "Intro", "Intro 2"}, want: []string{"intro", "intro-2", "intro-2-2"}},
		{name: "suffix collides with earlier title", titles: []string{"Intro 2", "Intro", "Intro"}, want: []string{"intro-2", "intro", "intro-3"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			d, err := ParsePodcast(strings.NewReader(introFeed(testCase.titles...)), 0)
			require.NoError(t, err)

			got := make([]string, 0, len(d.Episodes))
			for _, ep := range d.Episodes {
				got = append(got, ep.Slug)
			}
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestImportedDatasetRoundTrips(t *testing.T) {
	d, err := ParsePodcast(strings.NewReader(podcastRSS), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))
	again, err := fallback.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, d.Episodes, again.Episodes)
}

func TestFetchPodcast(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(podcastRSS))
	}))
	defer srv.Close()

	d, err := NewImporter(srv.Client()).FetchPodcast(context.Background(), srv.URL, 0)
	require.NoError(t, err)
	assert.Len(t, d.Episodes, 3)
	assert.Equal(t, userAgent, gotUA)
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "59", want: "0:59"},
		{in: "3134", want: "52:14"},
		{in: "3723", want: "1:02:03"},
		{in: "45:10", want: "45:10"},
		{in: "abc", want: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.in, func(t *testing.T) {
			assert.Equal(t, testCase.want, formatDuration(testCase.in))
		})
	}
}
