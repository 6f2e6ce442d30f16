package filter

import (
	"net/url"
	"strings"
)

// SortMode orders the filtered list.
type SortMode string

const (
	SortNewest  SortMode = "newest"
	SortOldest  SortMode = "oldest"
	SortPopular SortMode = "popular"
)

// Query string parameter names shared with the host page.
const (
	ParamQuery = "q"
	ParamTopic = "topic"
	ParamSort  = "sort"
)

// AllTopics is accepted on input as an explicit "no topic filter".
const AllTopics = "all"

// ParseSort maps a token to a SortMode. Unknown tokens yield SortNewest.
func ParseSort(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortOldest:
		return SortOldest
	case SortPopular:
		return SortPopular
	default:
		return SortNewest
	}
}

// Controls is the user-adjustable state of a filtered list.
// The zero value is the default state: no query, all topics, newest first.
// It is also the canonical form of that state, so an empty Sort stands for
// SortNewest after Normalize.
type Controls struct {
	Query string
	// Topic is an exact topic name; "" means all topics.
	Topic string
	Sort  SortMode
}

func DefaultControls() Controls {
	return Controls{}
}

// Normalize returns the canonical form of c: "all" becomes "" and the
// newest sort becomes the zero SortMode. ParseQuery(c.Encode()) equals
// c.Normalize() for every c.
func (c Controls) Normalize() Controls {
	if strings.EqualFold(c.Topic, AllTopics) {
		c.Topic = ""
	}
	if c.Sort = ParseSort(string(c.Sort)); c.Sort == SortNewest {
		c.Sort = ""
	}
	return c
}

// SortName is the effective sort mode, never empty.
func (c Controls) SortName() SortMode {
	return ParseSort(string(c.Sort))
}

func (c Controls) IsDefault() bool {
	return c.Normalize() == DefaultControls()
}

// Values serializes every non-default control to its named parameter.
func (c Controls) Values() url.Values {
	c = c.Normalize()
	v := url.Values{}
	if c.Query != "" {
		v.Set(ParamQuery, c.Query)
	}
	if c.Topic != "" {
		v.Set(ParamTopic, c.Topic)
	}
	if c.Sort != "" {
		v.Set(ParamSort, string(c.Sort))
	}
	return v
}

// Encode returns the shareable query string without a leading "?".
func (c Controls) Encode() string {
	return c.Values().Encode()
}

// ParseValues reconstructs controls from query parameters. Missing or
// malformed values fall back to their defaults.
func ParseValues(v url.Values) Controls {
	return Controls{
		Query: v.Get(ParamQuery),
		Topic: v.Get(ParamTopic),
		Sort:  SortMode(v.Get(ParamSort)),
	}.Normalize()
}

// ParseQuery parses a raw query string (with or without a leading "?").
// A string that cannot be parsed keeps whatever pairs were decoded before the error.
func ParseQuery(raw string) Controls {
	v, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if v == nil {
		return DefaultControls()
	}
	return ParseValues(v)
}
