package content

import (
	"context"

	"github.com/sourcegraph/conc"

	"content-hub/models"
)

const (
	HomeRecentEpisodes = 3
	HomeRecentArticles = 2
	HomeGuests         = 4
	HomeTopics         = 10
)

type Home struct {
	Featured       *models.Episode       `json:"featured"`
	RecentEpisodes []models.Episode      `json:"recent_episodes"`
	RecentArticles []models.Article      `json:"recent_articles"`
	Guests         []models.GuestProfile `json:"guests"`
	Topics         []models.Topic        `json:"topics"`
}

type TopicPage struct {
	Topic    models.Topic          `json:"topic"`
	Episodes []models.Episode      `json:"episodes"`
	Articles []models.Article      `json:"articles"`
	Guests   []models.GuestProfile `json:"guests"`
}

type GuestPage struct {
	Guest    models.GuestProfile `json:"guest"`
	Episodes []models.Episode    `json:"episodes"`
}

// Home loads everything the landing page shows in parallel.
func (g *Gateway) Home(ctx context.Context) Home {
	var (
		h  Home
		wg conc.WaitGroup
	)
	wg.Go(func() { h.Featured = g.FeaturedEpisode(ctx) })
	wg.Go(func() { h.RecentEpisodes = head(g.Episodes(ctx), HomeRecentEpisodes) })
	wg.Go(func() { h.RecentArticles = head(g.Articles(ctx), HomeRecentArticles) })
	wg.Go(func() { h.Guests = head(g.Guests(ctx), HomeGuests) })
	wg.Go(func() { h.Topics = head(g.Topics(ctx), HomeTopics) })
	wg.Wait()
	return h
}

// TopicPage returns nil when the topic does not exist.
func (g *Gateway) TopicPage(ctx context.Context, slug string) *TopicPage {
	var (
		topic *models.Topic
		p     TopicPage
		wg    conc.WaitGroup
	)
	wg.Go(func() { topic = g.TopicBySlug(ctx, slug) })
	wg.Go(func() { p.Episodes = g.RelatedEpisodes(ctx, slug) })
	wg.Go(func() { p.Articles = g.RelatedArticles(ctx, slug) })
	wg.Go(func() { p.Guests = g.RelatedGuests(ctx, slug) })
	wg.Wait()

	if topic == nil {
		return nil
	}
	p.Topic = *topic
	return &p
}

// GuestPage returns nil when the guest does not exist.
func (g *Gateway) GuestPage(ctx context.Context, slug string) *GuestPage {
	var (
		guest    *models.GuestProfile
		episodes []models.Episode
		wg       conc.WaitGroup
	)
	wg.Go(func() { guest = g.GuestBySlug(ctx, slug) })
	wg.Go(func() { episodes = g.EpisodesByGuest(ctx, slug) })
	wg.Wait()

	if guest == nil {
		return nil
	}
	return &GuestPage{Guest: *guest, Episodes: episodes}
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
