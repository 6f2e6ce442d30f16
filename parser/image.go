package parser

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// FirstImage returns the first usable image of a document: an Open Graph or
// Twitter card meta image, otherwise the first <img src>. Relative URLs are
// resolved against base; if base is nil they are dropped.
func FirstImage(doc *html.Node, base *url.URL) string {
	if src := findMetaContent(doc, "property", []string{"og:image", "og:image:url", "og:image:secure_url"}); src != "" {
		if abs := resolve(src, base); abs != "" {
			return abs
		}
	}
	if src := findMetaContent(doc, "name", []string{"twitter:image", "twitter:image:src"}); src != "" {
		if abs := resolve(src, base); abs != "" {
			return abs
		}
	}

	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, a := range n.Attr {
				if strings.ToLower(a.Key) == "src" {
					result = resolve(a.Val, base)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return result
}

func findMetaContent(root *html.Node, key string, candidates []string) string {
	candidateSet := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		candidateSet[strings.ToLower(c)] = struct{}{}
	}

	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "meta" {
			var attrValue, content string
			for _, a := range n.Attr {
				keyLower := strings.ToLower(a.Key)
				if keyLower == strings.ToLower(key) {
					attrValue = strings.ToLower(a.Val)
				} else if keyLower == "content" {
					content = a.Val
				}
			}
			if content != "" && attrValue != "" {
				if _, ok := candidateSet[attrValue]; ok {
					result = content
					return
				}
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}

// resolve makes src absolute against base. Returns "" when src is relative
// and there is no base, so callers never see a broken relative path.
func resolve(src string, base *url.URL) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return ""
	}
	if parsed.IsAbs() {
		return parsed.String()
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}
