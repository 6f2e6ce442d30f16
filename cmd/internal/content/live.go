package content

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"content-hub/cmd/internal/cms"
	"content-hub/models"
)

var (
	episodePopulate = []string{"guest.photo", "topics", "cover", "audio"}
	articlePopulate = []string{"author.avatar", "topics", "coverImage"}
	guestPopulate   = []string{"photo", "topics", "episodes.topics"}
)

// LiveSource reads from the CMS. Every method returns the transport or
// decode error as-is so the Gateway can decide to fall back.
type LiveSource struct {
	client           *cms.Client
	norm             Normalizer
	countConcurrency int
}

func NewLiveSource(client *cms.Client, countConcurrency int) *LiveSource {
	if countConcurrency < 1 {
		countConcurrency = 1
	}
	return &LiveSource{
		client:           client,
		norm:             Normalizer{Origin: client.Origin()},
		countConcurrency: countConcurrency,
	}
}

func (s *LiveSource) episodes(ctx context.Context, q *cms.Query) ([]models.Episode, error) {
	resp, err := cms.List[cms.EpisodeRecord](ctx, s.client, cms.Episodes, q.Populate(episodePopulate...))
	if err != nil {
		return nil, err
	}
	out := make([]models.Episode, 0, len(resp.Data))
	for _, e := range resp.Data {
		out = append(out, s.norm.Episode(e.Attributes))
	}
	return out, nil
}

func (s *LiveSource) articles(ctx context.Context, q *cms.Query) ([]models.Article, error) {
	resp, err := cms.List[cms.ArticleRecord](ctx, s.client, cms.Articles, q.Populate(articlePopulate...))
	if err != nil {
		return nil, err
	}
	out := make([]models.Article, 0, len(resp.Data))
	for _, a := range resp.Data {
		out = append(out, s.norm.Article(a.Attributes))
	}
	return out, nil
}

func (s *LiveSource) guests(ctx context.Context, q *cms.Query) ([]models.GuestProfile, error) {
	resp, err := cms.List[cms.GuestRecord](ctx, s.client, cms.Guests, q.Populate(guestPopulate...))
	if err != nil {
		return nil, err
	}
	out := make([]models.GuestProfile, 0, len(resp.Data))
	for _, g := range resp.Data {
		out = append(out, s.norm.Guest(g.Attributes))
	}
	return out, nil
}

func (s *LiveSource) Episodes(ctx context.Context) ([]models.Episode, error) {
	return s.episodes(ctx, cms.NewQuery().Sort("date:desc"))
}

func (s *LiveSource) EpisodeBySlug(ctx context.Context, slug string) (*models.Episode, error) {
	items, err := s.episodes(ctx, cms.NewQuery().Eq(slug, "slug").Limit(1))
	return first(items, err)
}

func (s *LiveSource) FeaturedEpisode(ctx context.Context) (*models.Episode, error) {
	items, err := s.episodes(ctx, cms.NewQuery().Eq("true", "featured").Sort("date:desc").Limit(1))
	return first(items, err)
}

func (s *LiveSource) RelatedEpisodes(ctx context.Context, topicSlug string) ([]models.Episode, error) {
	return s.episodes(ctx, cms.NewQuery().Eq(topicSlug, "topics", "slug").Sort("date:desc").Limit(RelatedLimit))
}

func (s *LiveSource) EpisodesByGuest(ctx context.Context, guestSlug string) ([]models.Episode, error) {
	return s.episodes(ctx, cms.NewQuery().Eq(guestSlug, "guest", "slug").Sort("date:desc"))
}

func (s *LiveSource) Articles(ctx context.Context) ([]models.Article, error) {
	return s.articles(ctx, cms.NewQuery().Sort("publishedAt:desc"))
}

func (s *LiveSource) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	items, err := s.articles(ctx, cms.NewQuery().Eq(slug, "slug").Limit(1))
	return first(items, err)
}

func (s *LiveSource) RelatedArticles(ctx context.Context, topicSlug string) ([]models.Article, error) {
	return s.articles(ctx, cms.NewQuery().Eq(topicSlug, "topics", "slug").Sort("publishedAt:desc").Limit(RelatedLimit))
}

func (s *LiveSource) Guests(ctx context.Context) ([]models.GuestProfile, error) {
	return s.guests(ctx, cms.NewQuery().Sort("name:asc"))
}

func (s *LiveSource) GuestBySlug(ctx context.Context, slug string) (*models.GuestProfile, error) {
	items, err := s.guests(ctx, cms.NewQuery().Eq(slug, "slug").Limit(1))
	return first(items, err)
}

func (s *LiveSource) RelatedGuests(ctx context.Context, topicSlug string) ([]models.GuestProfile, error) {
	return s.guests(ctx, cms.NewQuery().Eq(topicSlug, "topics", "slug").Sort("name:asc").Limit(RelatedLimit))
}

func (s *LiveSource) Topics(ctx context.Context) ([]models.Topic, error) {
	return s.topics(ctx, cms.NewQuery().Sort("name:asc"))
}

func (s *LiveSource) TopicBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	items, err := s.topics(ctx, cms.NewQuery().Eq(slug, "slug").Limit(1))
	return first(items, err)
}

func (s *LiveSource) topics(ctx context.Context, q *cms.Query) ([]models.Topic, error) {
	resp, err := cms.List[cms.TopicRecord](ctx, s.client, cms.Topics, q)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, len(resp.Data))
	for i, t := range resp.Data {
		slugs[i] = t.Attributes.Slug
	}
	counts, err := s.counts(ctx, slugs)
	if err != nil {
		return nil, err
	}

	out := make([]models.Topic, 0, len(resp.Data))
	for i, t := range resp.Data {
		count := counts[i]
		out = append(out, s.norm.Topic(t.Attributes, &count))
	}
	return out, nil
}

// counts runs two count queries per topic on a bounded pool.
// The first failure cancels the rest and fails the whole call.
func (s *LiveSource) counts(ctx context.Context, slugs []string) ([]models.TopicCount, error) {
	out := make([]models.TopicCount, len(slugs))
	if len(slugs) == 0 {
		return out, nil
	}

	p := pool.New().
		WithMaxGoroutines(s.countConcurrency).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, slug := range slugs {
		p.Go(func(ctx context.Context) error {
			n, err := s.client.Count(ctx, cms.Episodes, cms.NewQuery().Eq(slug, "topics", "slug"))
			if err != nil {
				return fmt.Errorf("count episodes for topic %q: %w", slug, err)
			}
			out[i].Episodes = n
			return nil
		})
		p.Go(func(ctx context.Context) error {
			n, err := s.client.Count(ctx, cms.Articles, cms.NewQuery().Eq(slug, "topics", "slug"))
			if err != nil {
				return fmt.Errorf("count articles for topic %q: %w", slug, err)
			}
			out[i].Articles = n
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func first[T any](items []T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}
