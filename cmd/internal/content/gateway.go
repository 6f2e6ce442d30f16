// Package content is the single entry point views use to read episodes,
// articles, guests and topics. Reads go to the CMS when it is enabled and
// fall back to the static dataset on any failure, so callers never see
// an error: lists are at worst empty and single lookups are at worst nil.
package content

import (
	"context"
	"errors"

	"content-hub/cmd/internal/cms"
	"content-hub/cmd/internal/logger"
	"content-hub/cmd/internal/trace"
	"content-hub/config"
	"content-hub/fallback"
	"content-hub/models"
)

type Gateway struct {
	live   Source
	static Source
	client *cms.Client
	cfg    config.CMSConfig
}

// Status describes which source the gateway reads from.
type Status struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	APIBase string `json:"api_base"`
}

// NewGateway wires sources directly. live may be nil, in which case only
// static is consulted.
func NewGateway(live, static Source) *Gateway {
	return &Gateway{live: live, static: static}
}

// New builds a gateway from configuration. With the CMS disabled no
// network call is ever made.
func New(cfg config.AppConfig) (*Gateway, error) {
	data, err := fallback.Load(cfg.Fallback.Path)
	if err != nil {
		return nil, err
	}

	g := &Gateway{static: NewStaticSource(data), cfg: cfg.CMS}
	if cfg.CMS.Enabled {
		g.client = cms.New(cfg.CMS)
		g.live = NewLiveSource(g.client, cfg.CMS.CountConcurrency)
	}

	logger.InfoWithFields("content gateway ready", logger.Fields{
		"cms_enabled": cfg.CMS.Enabled,
		"cms_url":     cfg.CMS.URL,
		"fallback":    cfg.Fallback.Path,
	})
	return g, nil
}

func (g *Gateway) Status() Status {
	return Status{
		Enabled: g.live != nil,
		URL:     g.cfg.URL,
		APIBase: g.cfg.APIBase(),
	}
}

// Health reports whether the CMS answers its health endpoint.
// Always false when the CMS is disabled.
func (g *Gateway) Health(ctx context.Context) bool {
	if g.client == nil {
		return false
	}
	if err := g.client.Health(ctx); err != nil {
		logger.WarnWithFields("cms health check failed", logger.Fields{
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(ctx),
		})
		return false
	}
	return true
}

func (g *Gateway) Episodes(ctx context.Context) []models.Episode {
	return fetchList(ctx, g, "episodes", func(s Source) ([]models.Episode, error) { return s.Episodes(ctx) })
}

func (g *Gateway) EpisodeBySlug(ctx context.Context, slug string) *models.Episode {
	return fetchOne(ctx, g, "episode_by_slug", func(s Source) (*models.Episode, error) { return s.EpisodeBySlug(ctx, slug) })
}

func (g *Gateway) FeaturedEpisode(ctx context.Context) *models.Episode {
	return fetchOne(ctx, g, "featured_episode", func(s Source) (*models.Episode, error) { return s.FeaturedEpisode(ctx) })
}

func (g *Gateway) RelatedEpisodes(ctx context.Context, topicSlug string) []models.Episode {
	return fetchList(ctx, g, "related_episodes", func(s Source) ([]models.Episode, error) { return s.RelatedEpisodes(ctx, topicSlug) })
}

func (g *Gateway) EpisodesByGuest(ctx context.Context, guestSlug string) []models.Episode {
	return fetchList(ctx, g, "episodes_by_guest", func(s Source) ([]models.Episode, error) { return s.EpisodesByGuest(ctx, guestSlug) })
}

func (g *Gateway) Articles(ctx context.Context) []models.Article {
	return fetchList(ctx, g, "articles", func(s Source) ([]models.Article, error) { return s.Articles(ctx) })
}

func (g *Gateway) ArticleBySlug(ctx context.Context, slug string) *models.Article {
	return fetchOne(ctx, g, "article_by_slug", func(s Source) (*models.Article, error) { return s.ArticleBySlug(ctx, slug) })
}

func (g *Gateway) RelatedArticles(ctx context.Context, topicSlug string) []models.Article {
	return fetchList(ctx, g, "related_articles", func(s Source) ([]models.Article, error) { return s.RelatedArticles(ctx, topicSlug) })
}

func (g *Gateway) Guests(ctx context.Context) []models.GuestProfile {
	return fetchList(ctx, g, "guests", func(s Source) ([]models.GuestProfile, error) { return s.Guests(ctx) })
}

func (g *Gateway) GuestBySlug(ctx context.Context, slug string) *models.GuestProfile {
	return fetchOne(ctx, g, "guest_by_slug", func(s Source) (*models.GuestProfile, error) { return s.GuestBySlug(ctx, slug) })
}

func (g *Gateway) RelatedGuests(ctx context.Context, topicSlug string) []models.GuestProfile {
	return fetchList(ctx, g, "related_guests", func(s Source) ([]models.GuestProfile, error) { return s.RelatedGuests(ctx, topicSlug) })
}

func (g *Gateway) Topics(ctx context.Context) []models.Topic {
	return fetchList(ctx, g, "topics", func(s Source) ([]models.Topic, error) { return s.Topics(ctx) })
}

func (g *Gateway) TopicBySlug(ctx context.Context, slug string) *models.Topic {
	return fetchOne(ctx, g, "topic_by_slug", func(s Source) (*models.Topic, error) { return s.TopicBySlug(ctx, slug) })
}

func fetchList[T any](ctx context.Context, g *Gateway, op string, call func(Source) ([]T, error)) []T {
	if g.live != nil {
		items, err := call(g.live)
		if err == nil {
			if items == nil {
				items = []T{}
			}
			return items
		}
		warnFallback(ctx, op, err)
	}

	items, err := call(g.static)
	if err != nil || items == nil {
		if err != nil {
			logger.ErrorWithFields("fallback source failed", logger.Fields{"operation": op, "error": err.Error()})
		}
		return []T{}
	}
	return items
}

// fetchOne treats "not found" upstream as a reason to look in the fallback
// dataset too, since the two may not hold the same slugs.
func fetchOne[T any](ctx context.Context, g *Gateway, op string, call func(Source) (*T, error)) *T {
	if g.live != nil {
		item, err := call(g.live)
		if err == nil {
			return item
		}
		if errors.Is(err, ErrNotFound) {
			logger.DebugWithFields("not found in cms, trying fallback", logger.Fields{
				"operation":  op,
				"request_id": trace.RequestIDFromContext(ctx),
			})
		} else {
			warnFallback(ctx, op, err)
		}
	}

	item, err := call(g.static)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.ErrorWithFields("fallback source failed", logger.Fields{"operation": op, "error": err.Error()})
		}
		return nil
	}
	return item
}

func warnFallback(ctx context.Context, op string, err error) {
	logger.WarnWithFields("content source failed, using fallback", logger.Fields{
		"operation":  op,
		"error":      err.Error(),
		"request_id": trace.RequestIDFromContext(ctx),
	})
}
