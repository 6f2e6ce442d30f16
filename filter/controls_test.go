package filter_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"content-hub/filter"
)

func TestControlsRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		controls filter.Controls
		encoded  string
	}{
		{name: "zero value", controls: filter.Controls{}, encoded: ""},
		{name: "all defaults", controls: filter.DefaultControls(), encoded: ""},
		{name: "query only", controls: filter.Controls{Query: "sarah chen"}, encoded: "q=sarah+chen"},
		{name: "topic only", controls: filter.Controls{Topic: "Platform Engineering"}, encoded: "topic=Platform+Engineering"},
		{name: "sort only", controls: filter.Controls{Sort: filter.SortPopular}, encoded: "sort=popular"},
		{
			name:     "all non-default",
			controls: filter.Controls{Query: "k8s & helm", Topic: "DevOps", Sort: filter.SortOldest},
			encoded:  "q=k8s+%26+helm&sort=oldest&topic=DevOps",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			encoded := testCase.controls.Encode()
			assert.Equal(t, testCase.encoded, encoded)

			parsed := filter.ParseQuery(encoded)
			assert.Equal(t, testCase.controls, parsed)

			// second pass is idempotent
			assert.Equal(t, encoded, parsed.Encode())
			assert.Equal(t, parsed, filter.ParseQuery("?"+parsed.Encode()))
		})
	}
}

func TestZeroControlsAreDefault(t *testing.T) {
	assert.True(t, filter.Controls{}.IsDefault())
	assert.Equal(t, filter.DefaultControls(), filter.Controls{}.Normalize())
	assert.Equal(t, "", filter.Controls{}.Encode())
	assert.Equal(t, filter.SortNewest, filter.Controls{}.SortName())
}

func TestDefaultSpellingsShareOneCanonicalForm(t *testing.T) {
	testCases := []filter.Controls{
		{Sort: filter.SortNewest},
		{Topic: "all"},
		{Topic: "ALL", Sort: "NEWEST"},
		{Sort: "most-liked"},
	}

	for _, c := range testCases {
		assert.True(t, c.IsDefault())
		assert.Equal(t, filter.Controls{}, c.Normalize())
		assert.Equal(t, "", c.Encode())
		assert.Equal(t, c.Normalize(), filter.ParseQuery(c.Encode()))
	}
}

func TestParseValuesDefaultsMalformedInput(t *testing.T) {
	v := url.Values{}
	v.Set("sort", "most-liked")
	v.Set("topic", "all")

	got := filter.ParseValues(v)
	assert.Equal(t, filter.DefaultControls(), got)
}

func TestParseSortIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, filter.SortPopular, filter.ParseSort("Popular"))
	assert.Equal(t, filter.SortOldest, filter.ParseSort(" oldest "))
	assert.Equal(t, filter.SortNewest, filter.ParseSort(""))
}

func TestParseQueryBrokenEscape(t *testing.T) {
	got := filter.ParseQuery("topic=DevOps&q=%zz")
	assert.Equal(t, "DevOps", got.Topic)
	assert.Equal(t, "", got.Query)
	assert.Equal(t, filter.SortNewest, got.SortName())
}
