// Package filter derives the displayed subset and order of an in-memory
// content list from a small set of user controls.
//
// Apply is a pure function: the same items and controls always give the
// same result, and items that compare equal keep their input order.
package filter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Item is anything the engine can filter and sort.
type Item interface {
	// SearchFields returns the title, description and person name.
	SearchFields() []string
	TopicNames() []string
	Timestamp() time.Time
	PlayCount() int
}

type Result[T Item] struct {
	Items []T
	Count int
}

// Summary renders the count line shown above a list, e.g. "Showing 3 episodes".
func (r Result[T]) Summary(noun string) string {
	if r.Count == 1 {
		return fmt.Sprintf("Showing 1 %s", noun)
	}
	return fmt.Sprintf("Showing %d %ss", r.Count, noun)
}

// Apply filters items by text query and topic, then sorts them by c.Sort.
// The input slice is not modified.
func Apply[T Item](items []T, c Controls) Result[T] {
	c = c.Normalize()
	query := strings.ToLower(c.Query)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if !matchesQuery(it, query) || !matchesTopic(it, c.Topic) {
			continue
		}
		out = append(out, it)
	}

	slices.SortStableFunc(out, comparator[T](c.Sort))
	return Result[T]{Items: out, Count: len(out)}
}

func matchesQuery(it Item, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	for _, f := range it.SearchFields() {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

// matchesTopic is an exact, case-sensitive name match.
func matchesTopic(it Item, topic string) bool {
	if topic == "" {
		return true
	}
	return slices.Contains(it.TopicNames(), topic)
}

func comparator[T Item](mode SortMode) func(a, b T) int {
	switch mode {
	case SortOldest:
		return func(a, b T) int { return a.Timestamp().Compare(b.Timestamp()) }
	case SortPopular:
		return func(a, b T) int { return cmp.Compare(max(b.PlayCount(), 0), max(a.PlayCount(), 0)) }
	default:
		return func(a, b T) int { return b.Timestamp().Compare(a.Timestamp()) }
	}
}
