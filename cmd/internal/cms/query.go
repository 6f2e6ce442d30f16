package cms

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds Strapi v4 REST parameters:
// filters[a][b][$eq]=v, populate=a.b,c, sort=f:desc, pagination[limit]=n.
type Query struct {
	filters  [][2]string
	populate []string
	sort     []string
	limit    *int
}

func NewQuery() *Query {
	return &Query{}
}

// Eq adds an equality filter on a (possibly nested) field path.
func (q *Query) Eq(value string, path ...string) *Query {
	key := "filters"
	for _, p := range path {
		key += "[" + p + "]"
	}
	key += "[$eq]"
	q.filters = append(q.filters, [2]string{key, value})
	return q
}

func (q *Query) Populate(fields ...string) *Query {
	q.populate = append(q.populate, fields...)
	return q
}

// Sort adds a sort key such as "date:desc".
func (q *Query) Sort(keys ...string) *Query {
	q.sort = append(q.sort, keys...)
	return q
}

// Limit sets pagination[limit]. A limit of 0 asks only for meta.pagination.
func (q *Query) Limit(n int) *Query {
	q.limit = &n
	return q
}

func (q *Query) Values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}
	for _, f := range q.filters {
		v.Add(f[0], f[1])
	}
	if len(q.populate) > 0 {
		v.Set("populate", strings.Join(q.populate, ","))
	}
	if len(q.sort) > 0 {
		v.Set("sort", strings.Join(q.sort, ","))
	}
	if q.limit != nil {
		v.Set("pagination[limit]", strconv.Itoa(*q.limit))
	}
	return v
}
