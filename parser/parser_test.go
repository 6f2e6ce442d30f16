package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"content-hub/parser"
)

func TestParseRichTextPlainPassThrough(t *testing.T) {
	got, err := parser.ParseRichText("## Heading\n\nSome **markdown** body.", "")
	require.NoError(t, err)
	assert.Equal(t, "## Heading\n\nSome **markdown** body.", got.PlainText)
	assert.Empty(t, got.TopImage)
}

func TestParseRichTextEmpty(t *testing.T) {
	_, err := parser.ParseRichText("   ", "")
	assert.ErrorIs(t, err, parser.ErrEmptyContent)
}

func TestParseRichTextHTML(t *testing.T) {
	content := `<p>Platform teams <b>own</b> the paved road.</p><img src="/uploads/road.png"><p>Second paragraph.</p>`

	got, err := parser.ParseRichText(content, "https://cms.example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, got.PlainText)
	assert.NotContains(t, got.PlainText, "<p>")
	assert.Equal(t, "https://cms.example.com/uploads/road.png", got.TopImage)
}

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 0, parser.ReadingMinutes(""))
	assert.Equal(t, 1, parser.ReadingMinutes("just a few words"))
	assert.Equal(t, 1, parser.ReadingMinutes(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, parser.ReadingMinutes(strings.Repeat("word ", 201)))
}

func TestFirstImagePrefersOpenGraph(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head><meta property="og:image" content="https://img.example.com/og.png"></head><body><img src="https://img.example.com/body.png"></body></html>`))
	require.NoError(t, err)

	assert.Equal(t, "https://img.example.com/og.png", parser.FirstImage(doc, nil))
}

func TestFirstImageDropsRelativeWithoutBase(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<img src="/uploads/a.png">`))
	require.NoError(t, err)

	assert.Equal(t, "", parser.FirstImage(doc, nil))
}
