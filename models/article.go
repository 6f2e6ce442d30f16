package models

import "time"

const (
	DefaultArticleTopic    = "General"
	DefaultArticleReadTime = "5 min read"
)

type Author struct {
	Name  string `json:"name" yaml:"name"`
	Photo string `json:"photo,omitempty" yaml:"photo,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Article is the view model of a written article.
type Article struct {
	Slug        string  `json:"slug" yaml:"slug"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Topic       string  `json:"topic" yaml:"topic"`
	ReadTime    string  `json:"read_time" yaml:"read_time"`
	Date        string  `json:"date" yaml:"date"`
	Image       string  `json:"image,omitempty" yaml:"image,omitempty"`
	Author      *Author `json:"author,omitempty" yaml:"author,omitempty"`
}

func (a Article) Clone() Article {
	out := a
	if a.Author != nil {
		au := *a.Author
		out.Author = &au
	}
	return out
}

func (a Article) authorName() string {
	if a.Author == nil {
		return ""
	}
	return a.Author.Name
}

// filter.Item

func (a Article) SearchFields() []string { return []string{a.Title, a.Description, a.authorName()} }
func (a Article) TopicNames() []string   { return []string{a.Topic} }
func (a Article) PlayCount() int         { return 0 }

func (a Article) Timestamp() time.Time {
	t, _ := ParseDate(a.Date)
	return t
}
