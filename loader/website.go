package loader

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"ragchat/types"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// WebsiteLoader fetches a page and extracts the visible text of its
// body, markup stripped. The URL is assumed well-formed; the ingestion
// pipeline validates it before any network access.
type WebsiteLoader struct {
	url string
}

func NewWebsiteLoader(url string) *WebsiteLoader {
	return &WebsiteLoader{url: url}
}

func (l *WebsiteLoader) Load(ctx context.Context) ([]types.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &types.LoadError{Source: l.url, Err: err}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &types.LoadError{Source: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.LoadError{Source: l.url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, &types.LoadError{Source: l.url, Err: err}
	}

	text := bodyText(doc)
	if text == "" {
		return nil, &types.LoadError{Source: l.url, Err: fmt.Errorf("empty page body")}
	}

	return []types.Record{{
		Text: text,
		Metadata: map[string]string{
			"source": l.url,
			"type":   "website",
		},
	}}, nil
}

func bodyText(doc *html.Node) string {
	root := findBody(doc)
	if root == nil {
		root = doc
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" || n.Data == "noscript" {
				return
			}
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				sb.WriteString(t)
				sb.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.TrimSpace(sb.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
