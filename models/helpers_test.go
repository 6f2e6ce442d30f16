package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"content-hub/models"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Platform Engineering", want: "platform-engineering"},
		{name: "single word", in: "DevOps", want: "devops"},
		{name: "whitespace run", in: "Site  Reliability\tEngineering", want: "site-reliability-engineering"},
		{name: "already slug", in: "kubernetes", want: "kubernetes"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, models.Slugify(testCase.in))
		})
	}
}

func TestFormatRawDate(t *testing.T) {
	assert.Equal(t, "Nov 20, 2024", models.FormatRawDate("2024-11-20T10:00:00.000Z"))
	assert.Equal(t, "Jan 1, 2024", models.FormatRawDate("2024-01-01"))
	assert.Equal(t, "", models.FormatRawDate(""))
	assert.Equal(t, "", models.FormatRawDate("not a date"))
}

func TestParseDateDisplayForm(t *testing.T) {
	got, ok := models.ParseDate("Nov 20, 2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC), got)
}

func TestTopicSetDeduplicates(t *testing.T) {
	var s models.TopicSet
	s.Add("DevOps")
	s.Add("DevOps", "Leadership", "")

	assert.Equal(t, []string{"DevOps", "Leadership"}, s.Names())
	assert.Equal(t, 2, s.Len())
}

func TestEmptyTopicSetNamesIsNotNil(t *testing.T) {
	var s models.TopicSet
	assert.NotNil(t, s.Names())
	assert.Empty(t, s.Names())
}

func TestEpisodeCloneIsDeep(t *testing.T) {
	n := 3
	e := models.Episode{Topics: []string{"DevOps"}, EpisodeNumber: &n}
	c := e.Clone()
	c.Topics[0] = "Changed"
	*c.EpisodeNumber = 9

	assert.Equal(t, "DevOps", e.Topics[0])
	assert.Equal(t, 3, *e.EpisodeNumber)
}
