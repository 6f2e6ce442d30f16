package cms

// Strapi v4 wraps every record in {id, attributes} and every relation in
// {data: ...}. All relation and media fields are optional pointers because
// they are only present when populated.

type Entry[T any] struct {
	ID         int `json:"id"`
	Attributes T   `json:"attributes"`
}

// ListResponse is the envelope of collection endpoints.
type ListResponse[T any] struct {
	Data []Entry[T] `json:"data"`
	Meta *Meta      `json:"meta,omitempty"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total     int `json:"total"`
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
}

// Relation is a to-one link; Data is nil when the link is empty.
type Relation[T any] struct {
	Data *Entry[T] `json:"data"`
}

// Attr returns the linked attributes or nil.
func (r *Relation[T]) Attr() *T {
	if r == nil || r.Data == nil {
		return nil
	}
	return &r.Data.Attributes
}

// Collection is a to-many link.
type Collection[T any] struct {
	Data []Entry[T] `json:"data"`
}

// Items returns the linked attributes in order; nil-safe.
func (c *Collection[T]) Items() []T {
	if c == nil {
		return nil
	}
	out := make([]T, 0, len(c.Data))
	for _, e := range c.Data {
		out = append(out, e.Attributes)
	}
	return out
}

func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Data)
}

type MediaAttributes struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}

type Media = Relation[MediaAttributes]

type EpisodeRecord struct {
	Slug          string                   `json:"slug"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	Date          string                   `json:"date"`
	Duration      string                   `json:"duration"`
	Plays         *int                     `json:"plays,omitempty"`
	EpisodeNumber *int                     `json:"episodeNumber,omitempty"`
	Featured      *bool                    `json:"featured,omitempty"`
	Audio         *Media                   `json:"audio,omitempty"`
	Cover         *Media                   `json:"cover,omitempty"`
	Guest         *Relation[GuestRecord]   `json:"guest,omitempty"`
	Topics        *Collection[TopicRecord] `json:"topics,omitempty"`
}

type AuthorRecord struct {
	Name   string `json:"name"`
	Avatar *Media `json:"avatar,omitempty"`
	Title  string `json:"title,omitempty"`
}

type ArticleRecord struct {
	Slug        string                   `json:"slug"`
	Title       string                   `json:"title"`
	Excerpt     string                   `json:"excerpt"`
	Content     string                   `json:"content,omitempty"`
	PublishedAt string                   `json:"publishedAt"`
	ReadingTime *int                     `json:"readingTime,omitempty"`
	CoverImage  *Media                   `json:"coverImage,omitempty"`
	Author      *Relation[AuthorRecord]  `json:"author,omitempty"`
	Topics      *Collection[TopicRecord] `json:"topics,omitempty"`
}

type GuestRecord struct {
	Slug         string                     `json:"slug"`
	Name         string                     `json:"name"`
	Title        string                     `json:"title"`
	Company      string                     `json:"company"`
	Bio          string                     `json:"bio,omitempty"`
	Photo        *Media                     `json:"photo,omitempty"`
	Twitter      string                     `json:"twitter,omitempty"`
	LinkedIn     string                     `json:"linkedin,omitempty"`
	Website      string                     `json:"website,omitempty"`
	EpisodeCount *int                       `json:"episodeCount,omitempty"`
	Topics       *Collection[TopicRecord]   `json:"topics,omitempty"`
	Episodes     *Collection[EpisodeRecord] `json:"episodes,omitempty"`
}

type TopicRecord struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
