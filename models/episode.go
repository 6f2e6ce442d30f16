package models

import (
	"slices"
	"time"
)

const (
	UnknownGuestName = "Unknown Guest"
	DefaultDuration  = "0:00"
)

// Guest is the flattened guest snapshot embedded in an Episode.
type Guest struct {
	Name    string `json:"name" yaml:"name"`
	Photo   string `json:"photo" yaml:"photo"`
	Title   string `json:"title" yaml:"title"`
	Company string `json:"company" yaml:"company"`
}

// Episode is the view model of a single podcast episode.
// Date is a preformatted display string ("Nov 20, 2024").
type Episode struct {
	Slug          string   `json:"slug" yaml:"slug"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Guest         Guest    `json:"guest" yaml:"guest"`
	Topics        []string `json:"topics" yaml:"topics"`
	Duration      string   `json:"duration" yaml:"duration"`
	Date          string   `json:"date" yaml:"date"`
	Plays         int      `json:"plays" yaml:"plays"`
	EpisodeNumber *int     `json:"episode_number,omitempty" yaml:"episode_number,omitempty"`
	AudioURL      string   `json:"audio_url,omitempty" yaml:"audio_url,omitempty"`
	Cover         string   `json:"cover,omitempty" yaml:"cover,omitempty"`
}

func (e Episode) Clone() Episode {
	out := e
	out.Topics = slices.Clone(e.Topics)
	if e.EpisodeNumber != nil {
		n := *e.EpisodeNumber
		out.EpisodeNumber = &n
	}
	return out
}

// HasTopicSlug reports whether any of the episode topics slugifies to slug.
func (e Episode) HasTopicSlug(slug string) bool {
	for _, t := range e.Topics {
		if Slugify(t) == slug {
			return true
		}
	}
	return false
}

// filter.Item

func (e Episode) SearchFields() []string { return []string{e.Title, e.Description, e.Guest.Name} }
func (e Episode) TopicNames() []string   { return e.Topics }
func (e Episode) PlayCount() int         { return e.Plays }

func (e Episode) Timestamp() time.Time {
	t, _ := ParseDate(e.Date)
	return t
}
