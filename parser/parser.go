package parser

import (
	"errors"
	"math"
	"net/url"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used for read-time estimates.
const WordsPerMinute = 200

var ErrEmptyContent = errors.New("parser: no text content")

type ParsedContent struct {
	PlainText string
	TopImage  string
}

// ParseRichText extracts plain text and a lead image from CMS rich text or
// RSS show notes. Markdown or plain text (no tags) is returned as-is.
// Extractors are tried in order: readability, trafilatura, goose, and a
// plain walk over text nodes.
func ParseRichText(content string, pageURL string) (*ParsedContent, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if !strings.Contains(content, "<") {
		return &ParsedContent{PlainText: content}, nil
	}

	var base *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			base = u
		}
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	topImage := FirstImage(doc, base)

	for _, extract := range []func() (string, string){
		func() (string, string) { return parseWithReadability(doc, base) },
		func() (string, string) { return parseWithTrafilatura(content, base) },
		func() (string, string) { return parseWithGoose(content, pageURL) },
		func() (string, string) { return textNodes(doc), "" },
	} {
		text, image := extract()
		text = normalizeSpace(text)
		if text == "" {
			continue
		}
		if topImage == "" && image != "" {
			topImage = resolve(image, base)
		}
		return &ParsedContent{PlainText: text, TopImage: topImage}, nil
	}

	return nil, ErrEmptyContent
}

// ReadingMinutes estimates minutes to read text; at least 1 for non-empty text.
func ReadingMinutes(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return max(1, int(math.Ceil(float64(words)/WordsPerMinute)))
}

func parseWithReadability(doc *html.Node, base *url.URL) (string, string) {
	article, err := readability.FromDocument(doc, base)
	if err != nil {
		return "", ""
	}
	return article.TextContent, article.Image
}

func parseWithTrafilatura(content string, base *url.URL) (string, string) {
	opts := trafilatura.Options{
		IncludeImages: true,
		OriginalURL:   base,
	}
	result, err := trafilatura.Extract(strings.NewReader(content), opts)
	if err != nil || result == nil {
		return "", ""
	}
	return result.ContentText, result.Metadata.Image
}

func parseWithGoose(content string, pageURL string) (string, string) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(content, pageURL)
	if err != nil || article == nil {
		return "", ""
	}
	return article.CleanedText, article.TopImage
}

// textNodes concatenates every text node outside script/style.
func textNodes(doc *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
