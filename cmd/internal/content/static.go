package content

import (
	"context"
	"slices"
	"strings"

	"content-hub/fallback"
	"content-hub/filter"
	"content-hub/models"
)

// StaticSource serves the fallback dataset with the same ordering the live
// queries ask for. Items are cloned so callers cannot mutate the dataset.
type StaticSource struct {
	data *fallback.Dataset
}

func NewStaticSource(data *fallback.Dataset) *StaticSource {
	if data == nil {
		data = fallback.Default()
	}
	return &StaticSource{data: data}
}

func (s *StaticSource) Episodes(context.Context) ([]models.Episode, error) {
	out := make([]models.Episode, 0, len(s.data.Episodes))
	for _, e := range s.data.Episodes {
		out = append(out, e.Clone())
	}
	return filter.Apply(out, filter.DefaultControls()).Items, nil
}

func (s *StaticSource) EpisodeBySlug(_ context.Context, slug string) (*models.Episode, error) {
	for _, e := range s.data.Episodes {
		if e.Slug == slug {
			c := e.Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *StaticSource) FeaturedEpisode(ctx context.Context) (*models.Episode, error) {
	items, _ := s.Episodes(ctx)
	return first(items, nil)
}

func (s *StaticSource) RelatedEpisodes(ctx context.Context, topicSlug string) ([]models.Episode, error) {
	items, _ := s.Episodes(ctx)
	return capped(items, func(e models.Episode) bool { return e.HasTopicSlug(topicSlug) }, RelatedLimit), nil
}

func (s *StaticSource) EpisodesByGuest(ctx context.Context, guestSlug string) ([]models.Episode, error) {
	items, _ := s.Episodes(ctx)
	return capped(items, func(e models.Episode) bool { return models.Slugify(e.Guest.Name) == guestSlug }, 0), nil
}

func (s *StaticSource) Articles(context.Context) ([]models.Article, error) {
	out := make([]models.Article, 0, len(s.data.Articles))
	for _, a := range s.data.Articles {
		out = append(out, a.Clone())
	}
	return filter.Apply(out, filter.DefaultControls()).Items, nil
}

func (s *StaticSource) ArticleBySlug(_ context.Context, slug string) (*models.Article, error) {
	for _, a := range s.data.Articles {
		if a.Slug == slug {
			c := a.Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *StaticSource) RelatedArticles(ctx context.Context, topicSlug string) ([]models.Article, error) {
	items, _ := s.Articles(ctx)
	return capped(items, func(a models.Article) bool { return models.Slugify(a.Topic) == topicSlug }, RelatedLimit), nil
}

func (s *StaticSource) Guests(context.Context) ([]models.GuestProfile, error) {
	out := make([]models.GuestProfile, 0, len(s.data.Guests))
	for _, g := range s.data.Guests {
		out = append(out, g.Clone())
	}
	slices.SortStableFunc(out, func(a, b models.GuestProfile) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out, nil
}

func (s *StaticSource) GuestBySlug(_ context.Context, slug string) (*models.GuestProfile, error) {
	for _, g := range s.data.Guests {
		if g.Slug == slug {
			c := g.Clone()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *StaticSource) RelatedGuests(ctx context.Context, topicSlug string) ([]models.GuestProfile, error) {
	items, _ := s.Guests(ctx)
	return capped(items, func(g models.GuestProfile) bool { return g.HasTopicSlug(topicSlug) }, RelatedLimit), nil
}

func (s *StaticSource) Topics(context.Context) ([]models.Topic, error) {
	out := make([]models.Topic, 0, len(s.data.Topics))
	for _, t := range s.data.Topics {
		out = append(out, s.withCount(t))
	}
	slices.SortStableFunc(out, func(a, b models.Topic) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out, nil
}

func (s *StaticSource) TopicBySlug(_ context.Context, slug string) (*models.Topic, error) {
	for _, t := range s.data.Topics {
		if t.Slug == slug {
			c := s.withCount(t)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// withCount counts the episodes and articles tagged with the topic.
func (s *StaticSource) withCount(t models.Topic) models.Topic {
	c := t.Clone()
	count := &models.TopicCount{}
	for _, e := range s.data.Episodes {
		if slices.ContainsFunc(e.Topics, func(name string) bool { return matchesTopic(name, t) }) {
			count.Episodes++
		}
	}
	for _, a := range s.data.Articles {
		if matchesTopic(a.Topic, t) {
			count.Articles++
		}
	}
	c.Count = count
	return c
}

func matchesTopic(name string, t models.Topic) bool {
	return name == t.Name || models.Slugify(name) == t.Slug
}

// capped keeps items matching keep, at most limit of them (0 means no cap).
// The result is never nil.
func capped[T any](items []T, keep func(T) bool, limit int) []T {
	out := make([]T, 0)
	for _, it := range items {
		if limit > 0 && len(out) == limit {
			break
		}
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
