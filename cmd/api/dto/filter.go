package dto

import (
	"content-hub/filter"
	"content-hub/models"
)

// FilterDTO echoes the canonical controls a list was built with.
// Query is the shareable query string without "?", empty for the default state.
type FilterDTO struct {
	Q     string `json:"q"`
	Topic string `json:"topic"`
	Sort  string `json:"sort" example:"newest"`
	Query string `json:"query" example:"sort=popular&topic=DevOps"`
}

func NewFilterDTO(c filter.Controls) FilterDTO {
	c = c.Normalize()
	return FilterDTO{
		Q:     c.Query,
		Topic: c.Topic,
		Sort:  string(c.SortName()),
		Query: c.Encode(),
	}
}

// FilterItem represents a single topic option with its count
type FilterItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type EpisodeListDTO struct {
	Items   []models.Episode `json:"items"`
	Count   int              `json:"count"`
	Summary string           `json:"summary" example:"Showing 3 episodes"`
	Filter  FilterDTO        `json:"filter"`
	Topics  []FilterItem     `json:"topics"`
}

type ArticleListDTO struct {
	Items   []models.Article `json:"items"`
	Count   int              `json:"count"`
	Summary string           `json:"summary" example:"Showing 1 article"`
	Filter  FilterDTO        `json:"filter"`
	Topics  []FilterItem     `json:"topics"`
}

// TopicOptions counts how many of items carry each topic name, keeping
// first-seen order. The UI renders these as the topic dropdown.
func TopicOptions[T filter.Item](items []T) []FilterItem {
	out := make([]FilterItem, 0)
	index := map[string]int{}
	for _, it := range items {
		for _, name := range it.TopicNames() {
			if name == "" {
				continue
			}
			i, ok := index[name]
			if !ok {
				i = len(out)
				index[name] = i
				out = append(out, FilterItem{Name: name})
			}
			out[i].Count++
		}
	}
	return out
}
