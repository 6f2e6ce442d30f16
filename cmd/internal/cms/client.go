package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"content-hub/cmd/internal/httpclient"
	"content-hub/config"
)

// Collection names on the CMS.
const (
	Episodes = "episodes"
	Articles = "articles"
	Guests   = "guests"
	Topics   = "topics"
)

// Client는 Strapi REST API를 호출하는 얇은 클라이언트다.
// 응답 변환(view model 매핑)은 전혀 하지 않고 원본 레코드만 돌려준다.
//
// origin 예: http://localhost:1337 (API 는 origin + /api)
type Client struct {
	base   *httpclient.BaseClient
	origin string
}

// New creates a client from CMS settings.
func New(cfg config.CMSConfig) *Client {
	origin := strings.TrimRight(cfg.URL, "/")
	base := httpclient.NewBaseClient(cfg.APIBase(), httpclient.Config{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	base.Header.Set("Content-Type", "application/json")
	if cfg.APIToken != "" {
		base.Header.Set("Authorization", "Bearer "+cfg.APIToken)
	}
	return &Client{base: base, origin: origin}
}

// Origin is the scheme+host used to absolutize media URLs.
func (c *Client) Origin() string {
	return c.origin
}

// List calls GET /api/{collection} and decodes the list envelope.
func List[T any](ctx context.Context, c *Client, collection string, q *Query) (ListResponse[T], error) {
	var out ListResponse[T]
	if err := c.get(ctx, collection, q, &out); err != nil {
		return ListResponse[T]{}, err
	}
	return out, nil
}

// Count returns meta.pagination.total for the query without fetching records.
func (c *Client) Count(ctx context.Context, collection string, q *Query) (int, error) {
	if q == nil {
		q = NewQuery()
	}
	q.Limit(0)

	var out ListResponse[json.RawMessage]
	if err := c.get(ctx, collection, q, &out); err != nil {
		return 0, err
	}
	if out.Meta == nil || out.Meta.Pagination == nil {
		return 0, fmt.Errorf("cms Count %s: response has no pagination meta", collection)
	}
	return out.Meta.Pagination.Total, nil
}

// Health performs HEAD {origin}/_health.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.origin+"/_health", nil)
	if err != nil {
		return err
	}
	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("cms Health: status=%d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, collection string, q *Query, out any) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/"+collection, q.Values(), nil)
	if err != nil {
		return err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("cms %s: status=%d body=%s", collection, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms %s: decode: %w", collection, err)
	}
	return nil
}
