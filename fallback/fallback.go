// Package fallback holds the static dataset served whenever the CMS is
// disabled or unavailable.
package fallback

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"content-hub/models"
)

//go:embed dataset.yaml
var embedded []byte

// Dataset has the same shape as the normalized view models.
type Dataset struct {
	Topics   []models.Topic        `yaml:"topics"`
	Episodes []models.Episode      `yaml:"episodes"`
	Articles []models.Article      `yaml:"articles"`
	Guests   []models.GuestProfile `yaml:"guests"`
}

var (
	defaultOnce sync.Once
	defaultSet  *Dataset
)

// Default returns the dataset compiled into the binary.
// Callers must treat it as read-only; Clone before handing items out.
func Default() *Dataset {
	defaultOnce.Do(func() {
		d, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("fallback: embedded dataset is invalid: %v", err))
		}
		defaultSet = d
	})
	return defaultSet
}

// Load returns the dataset at path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML, fills derived guest fields and validates slugs.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("fallback: decode: %w", err)
	}
	if err := d.Prepare(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Prepare fills derived guest fields and validates slugs. Datasets built
// in code (e.g. from an RSS import) must be prepared before use.
func (d *Dataset) Prepare() error {
	d.deriveGuests()
	return d.Validate()
}

// Write encodes the dataset as YAML.
func (d *Dataset) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks that slugs are present and unique per kind.
func (d *Dataset) Validate() error {
	check := func(kind string, slugs []string) error {
		seen := make(map[string]struct{}, len(slugs))
		for i, s := range slugs {
			if s == "" {
				return fmt.Errorf("fallback: %s #%d has no slug", kind, i)
			}
			if _, ok := seen[s]; ok {
				return fmt.Errorf("fallback: duplicate %s slug %q", kind, s)
			}
			seen[s] = struct{}{}
		}
		return nil
	}

	var topics, episodes, articles, guests []string
	for _, t := range d.Topics {
		topics = append(topics, t.Slug)
	}
	for _, e := range d.Episodes {
		episodes = append(episodes, e.Slug)
	}
	for _, a := range d.Articles {
		articles = append(articles, a.Slug)
	}
	for _, g := range d.Guests {
		guests = append(guests, g.Slug)
	}

	for kind, slugs := range map[string][]string{
		"topic":   topics,
		"episode": episodes,
		"article": articles,
		"guest":   guests,
	} {
		if err := check(kind, slugs); err != nil {
			return err
		}
	}
	return nil
}

// EpisodesOfGuest returns the episodes whose guest slugifies to guestSlug.
func (d *Dataset) EpisodesOfGuest(guestSlug string) []models.Episode {
	var out []models.Episode
	for _, e := range d.Episodes {
		if models.Slugify(e.Guest.Name) == guestSlug {
			out = append(out, e)
		}
	}
	return out
}

// deriveGuests fills episode counts and topics the same way the CMS
// normalizer does: explicit values win, otherwise they come from the
// guest's episodes. Topics are always deduplicated.
func (d *Dataset) deriveGuests() {
	for i := range d.Guests {
		g := &d.Guests[i]
		linked := d.EpisodesOfGuest(g.Slug)
		if g.EpisodeCount == 0 {
			g.EpisodeCount = len(linked)
		}

		var set models.TopicSet
		set.Add(g.Topics...)
		if set.Len() == 0 {
			for _, e := range linked {
				set.Add(e.Topics...)
			}
		}
		g.Topics = set.Names()

		if g.Social != nil && g.Social.IsZero() {
			g.Social = nil
		}
	}
}
