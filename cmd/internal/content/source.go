package content

import (
	"context"
	"errors"

	"content-hub/models"
)

// RelatedLimit caps related-by-topic lists on both sources.
const RelatedLimit = 6

var ErrNotFound = errors.New("content: not found")

// Source is one origin of content. LiveSource talks to the CMS and may fail;
// StaticSource serves the fallback dataset and only returns ErrNotFound.
type Source interface {
	Episodes(ctx context.Context) ([]models.Episode, error)
	EpisodeBySlug(ctx context.Context, slug string) (*models.Episode, error)
	FeaturedEpisode(ctx context.Context) (*models.Episode, error)
	RelatedEpisodes(ctx context.Context, topicSlug string) ([]models.Episode, error)
	EpisodesByGuest(ctx context.Context, guestSlug string) ([]models.Episode, error)

	Articles(ctx context.Context) ([]models.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	RelatedArticles(ctx context.Context, topicSlug string) ([]models.Article, error)

	Guests(ctx context.Context) ([]models.GuestProfile, error)
	GuestBySlug(ctx context.Context, slug string) (*models.GuestProfile, error)
	RelatedGuests(ctx context.Context, topicSlug string) ([]models.GuestProfile, error)

	Topics(ctx context.Context) ([]models.Topic, error)
	TopicBySlug(ctx context.Context, slug string) (*models.Topic, error)
}
