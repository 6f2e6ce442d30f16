package models

import "slices"

type Social struct {
	Twitter  string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
}

// IsZero reports whether no handle is set.
func (s Social) IsZero() bool {
	return s.Twitter == "" && s.LinkedIn == "" && s.Website == ""
}

// GuestProfile is the full profile of a podcast guest.
// Topics is a set: see TopicSet.
type GuestProfile struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Name         string   `json:"name" yaml:"name"`
	Title        string   `json:"title" yaml:"title"`
	Company      string   `json:"company" yaml:"company"`
	Photo        string   `json:"photo" yaml:"photo"`
	Bio          string   `json:"bio" yaml:"bio"`
	EpisodeCount int      `json:"episode_count" yaml:"episode_count"`
	Topics       []string `json:"topics" yaml:"topics"`
	Social       *Social  `json:"social,omitempty" yaml:"social,omitempty"`
}

func (g GuestProfile) Clone() GuestProfile {
	out := g
	out.Topics = slices.Clone(g.Topics)
	if g.Social != nil {
		s := *g.Social
		out.Social = &s
	}
	return out
}

func (g GuestProfile) HasTopicSlug(slug string) bool {
	for _, t := range g.Topics {
		if Slugify(t) == slug {
			return true
		}
	}
	return false
}

// TopicSet accumulates topic names without duplicates, keeping first-seen order.
type TopicSet struct {
	seen  map[string]struct{}
	names []string
}

func (s *TopicSet) Add(names ...string) {
	if s.seen == nil {
		s.seen = map[string]struct{}{}
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := s.seen[n]; ok {
			continue
		}
		s.seen[n] = struct{}{}
		s.names = append(s.names, n)
	}
}

func (s *TopicSet) Len() int { return len(s.names) }

// Names returns the collected names; never nil.
func (s *TopicSet) Names() []string {
	if s.names == nil {
		return []string{}
	}
	return slices.Clone(s.names)
}
