package content

import (
	"fmt"
	"net/url"
	"strings"

	"content-hub/cmd/internal/cms"
	"content-hub/models"
	"content-hub/parser"
)

// Normalizer converts CMS records into view models. It is the only place
// that knows about Strapi relation wrappers; missing pieces degrade to
// defaults instead of failing the whole record.
type Normalizer struct {
	// Origin prefixes relative media URLs, e.g. "http://localhost:1337".
	Origin string
}

func (n Normalizer) Episode(r cms.EpisodeRecord) models.Episode {
	guest := models.Guest{Name: models.UnknownGuestName}
	if g := r.Guest.Attr(); g != nil {
		if g.Name != "" {
			guest.Name = g.Name
		}
		guest.Photo = n.Image(g.Photo)
		guest.Title = g.Title
		guest.Company = g.Company
	}

	duration := r.Duration
	if duration == "" {
		duration = models.DefaultDuration
	}

	plays := 0
	if r.Plays != nil && *r.Plays > 0 {
		plays = *r.Plays
	}

	return models.Episode{
		Slug:          r.Slug,
		Title:         r.Title,
		Description:   r.Description,
		Guest:         guest,
		Topics:        topicNames(r.Topics),
		Duration:      duration,
		Date:          models.FormatRawDate(r.Date),
		Plays:         plays,
		EpisodeNumber: r.EpisodeNumber,
		AudioURL:      n.Image(r.Audio),
		Cover:         n.Image(r.Cover),
	}
}

var parseRichText = parser.ParseRichText

func (n Normalizer) Article(r cms.ArticleRecord) models.Article {
	topic := models.DefaultArticleTopic
	if names := topicNames(r.Topics); len(names) > 0 {
		topic = names[0]
	}

	hasReadingTime := r.ReadingTime != nil && *r.ReadingTime > 0
	image := n.Image(r.CoverImage)

	// content is only parsed when a fallback needs it
	var parsed *parser.ParsedContent
	if r.Content != "" && (!hasReadingTime || image == "") {
		parsed, _ = parseRichText(r.Content, n.Origin)
	}

	readTime := models.DefaultArticleReadTime
	switch {
	case hasReadingTime:
		readTime = fmt.Sprintf("%d min read", *r.ReadingTime)
	case parsed != nil && parser.ReadingMinutes(parsed.PlainText) > 0:
		readTime = fmt.Sprintf("%d min read", parser.ReadingMinutes(parsed.PlainText))
	}

	if image == "" && parsed != nil {
		image = parsed.TopImage
	}

	var author *models.Author
	if a := r.Author.Attr(); a != nil {
		author = &models.Author{
			Name:  a.Name,
			Photo: n.Image(a.Avatar),
			Title: a.Title,
		}
	}

	return models.Article{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Excerpt,
		Topic:       topic,
		ReadTime:    readTime,
		Date:        models.FormatRawDate(r.PublishedAt),
		Image:       image,
		Author:      author,
	}
}

func (n Normalizer) Guest(r cms.GuestRecord) models.GuestProfile {
	episodeCount := r.Episodes.Len()
	if r.EpisodeCount != nil && *r.EpisodeCount > 0 {
		episodeCount = *r.EpisodeCount
	}

	var topics models.TopicSet
	topics.Add(topicNames(r.Topics)...)
	if topics.Len() == 0 {
		for _, ep := range r.Episodes.Items() {
			topics.Add(topicNames(ep.Topics)...)
		}
	}

	social := models.Social{Twitter: r.Twitter, LinkedIn: r.LinkedIn, Website: r.Website}
	var socialPtr *models.Social
	if !social.IsZero() {
		socialPtr = &social
	}

	return models.GuestProfile{
		Slug:         r.Slug,
		Name:         r.Name,
		Title:        r.Title,
		Company:      r.Company,
		Photo:        n.Image(r.Photo),
		Bio:          r.Bio,
		EpisodeCount: episodeCount,
		Topics:       topics.Names(),
		Social:       socialPtr,
	}
}

func (n Normalizer) Topic(r cms.TopicRecord, count *models.TopicCount) models.Topic {
	return models.Topic{
		Slug:  r.Slug,
		Name:  r.Name,
		Icon:  r.Icon,
		Count: count,
	}
}

// Image returns an absolute URL for a media relation, or "" when absent.
func (n Normalizer) Image(m *cms.Media) string {
	attr := m.Attr()
	if attr == nil {
		return ""
	}
	return n.absolute(attr.URL)
}

func (n Normalizer) absolute(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return strings.TrimRight(n.Origin, "/") + raw
}

// topicNames flattens linked topic records to names; never nil.
func topicNames(c *cms.Collection[cms.TopicRecord]) []string {
	out := make([]string, 0, c.Len())
	for _, t := range c.Items() {
		if t.Name != "" {
			out = append(out, t.Name)
		}
	}
	return out
}
