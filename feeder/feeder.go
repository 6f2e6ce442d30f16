// Package feeder imports a podcast RSS feed into a fallback dataset.
package feeder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"content-hub/fallback"
	"content-hub/models"
	"content-hub/parser"
)

const userAgent = "content-hub-importer/1.0"

type Importer struct {
	parser *gofeed.Parser
}

// NewImporter uses client for feed requests; nil means gofeed's default client.
func NewImporter(client *http.Client) *Importer {
	fp := gofeed.NewParser()
	if client != nil {
		fp.Client = client
	}
	fp.UserAgent = userAgent
	return &Importer{parser: fp}
}

// FetchPodcast downloads feedURL and converts it.
// If limit is greater than 0, only the first limit items are imported.
func (im *Importer) FetchPodcast(ctx context.Context, feedURL string, limit int) (*fallback.Dataset, error) {
	feed, err := im.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("feeder: fetch %s: %w", feedURL, err)
	}
	return FromFeed(feed, limit)
}

// ParsePodcast converts an RSS/Atom document read from r.
func ParsePodcast(r io.Reader, limit int) (*fallback.Dataset, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("feeder: parse: %w", err)
	}
	return FromFeed(feed, limit)
}

// FromFeed maps feed items to episodes and collects the topics and guests
// they reference. Guest counts and topics are derived by the dataset.
func FromFeed(feed *gofeed.Feed, limit int) (*fallback.Dataset, error) {
	items := feed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	d := &fallback.Dataset{
		Topics:   []models.Topic{},
		Episodes: make([]models.Episode, 0, len(items)),
		Guests:   []models.GuestProfile{},
	}
	cover := feedImage(feed)
	slugs := map[string]struct{}{}
	topicSlugs := map[string]struct{}{}
	guestSlugs := map[string]struct{}{}

	for _, item := range items {
		ep := toEpisode(item, cover)
		ep.Slug = uniqueSlug(slugs, slugFor(ep.Title))
		d.Episodes = append(d.Episodes, ep)

		for _, name := range ep.Topics {
			slug := models.Slugify(name)
			if _, ok := topicSlugs[slug]; ok {
				continue
			}
			topicSlugs[slug] = struct{}{}
			d.Topics = append(d.Topics, models.Topic{Slug: slug, Name: name})
		}

		if ep.Guest.Name == models.UnknownGuestName {
			continue
		}
		slug := models.Slugify(ep.Guest.Name)
		if _, ok := guestSlugs[slug]; ok {
			continue
		}
		guestSlugs[slug] = struct{}{}
		d.Guests = append(d.Guests, models.GuestProfile{
			Slug:  slug,
			Name:  ep.Guest.Name,
			Photo: ep.Guest.Photo,
		})
	}

	if err := d.Prepare(); err != nil {
		return nil, err
	}
	return d, nil
}

func toEpisode(item *gofeed.Item, fallbackCover string) models.Episode {
	ep := models.Episode{
		Title:       strings.TrimSpace(item.Title),
		Description: showNotes(item),
		Guest:       models.Guest{Name: models.UnknownGuestName},
		Duration:    models.DefaultDuration,
		AudioURL:    audioURL(item),
	}

	if t := published(item); !t.IsZero() {
		ep.Date = models.FormatDate(t)
	}
	if name := authorName(item); name != "" {
		ep.Guest.Name = name
	}

	var topics models.TopicSet
	topics.Add(item.Categories...)
	ep.Topics = topics.Names()

	if it := item.ITunesExt; it != nil {
		if d := formatDuration(it.Duration); d != "" {
			ep.Duration = d
		}
		if n, err := strconv.Atoi(strings.TrimSpace(it.Episode)); err == nil && n > 0 {
			ep.EpisodeNumber = &n
		}
		ep.Cover = it.Image
	}
	if ep.Cover == "" && item.Image != nil {
		ep.Cover = item.Image.URL
	}
	if ep.Cover == "" {
		ep.Cover = fallbackCover
	}
	return ep
}

// showNotes prefers content:encoded, then description, then itunes:summary,
// reduced to plain text.
func showNotes(item *gofeed.Item) string {
	raw := item.Content
	if strings.TrimSpace(raw) == "" {
		raw = item.Description
	}
	if strings.TrimSpace(raw) == "" && item.ITunesExt != nil {
		raw = item.ITunesExt.Summary
	}
	parsed, err := parser.ParseRichText(raw, item.Link)
	if err != nil {
		return ""
	}
	return parsed.PlainText
}

func published(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}

func authorName(item *gofeed.Item) string {
	for _, p := range item.Authors {
		if p != nil && strings.TrimSpace(p.Name) != "" {
			return strings.TrimSpace(p.Name)
		}
	}
	if item.ITunesExt != nil {
		return strings.TrimSpace(item.ITunesExt.Author)
	}
	return ""
}

func audioURL(item *gofeed.Item) string {
	var first string
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if strings.HasPrefix(enc.Type, "audio/") {
			return enc.URL
		}
		if first == "" {
			first = enc.URL
		}
	}
	return first
}

func feedImage(feed *gofeed.Feed) string {
	if feed.ITunesExt != nil && feed.ITunesExt.Image != "" {
		return feed.ITunesExt.Image
	}
	if feed.Image != nil {
		return feed.Image.URL
	}
	return ""
}

// formatDuration accepts itunes:duration as seconds ("3134") or clock
// form ("52:14", "1:02:03") and returns the clock form, or "".
func formatDuration(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, ":") {
		return raw
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return ""
	}
	h, m, s := secs/3600, (secs%3600)/60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

var (
	nonSlugChars = regexp.MustCompile(`[^\p{L}\p{N}\s-]+`)
	hyphenRun    = regexp.MustCompile(`-{2,}`)
)

func slugFor(title string) string {
	slug := models.Slugify(strings.TrimSpace(nonSlugChars.ReplaceAllString(title, "")))
	slug = strings.Trim(hyphenRun.ReplaceAllString(slug, "-"), "-")
	if slug == "" {
		return "episode"
	}
	return slug
}

// uniqueSlug appends -2, -3, ... until the slug is not taken, then claims it.
func uniqueSlug(taken map[string]struct{}, slug string) string {
	cand := slug
	for n := 2; ; n++ {
		if _, ok := taken[cand]; !ok {
			break
		}
		cand = fmt.Sprintf("%s-%d", slug, n)
	}
	taken[cand] = struct{}{}
	return cand
}
