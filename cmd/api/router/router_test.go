package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/cmd/api/dto"
	"content-hub/cmd/internal/content"
	"content-hub/config"
	"content-hub/fallback"
	"content-hub/models"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gw := content.NewGateway(nil, content.NewStaticSource(fallback.Default()))
	cfg := config.Default()
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	return Handler(gw, cfg)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	h.ServeHTTP(rec, req)
	return rec
}

func TestListEpisodesWithTextQuery(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/v1/episodes?q=sarah")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.EpisodeListDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "Showing 2 episodes", body.Summary)
	assert.Equal(t, "q=sarah", body.Filter.Query)
	assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, body.Topics)
}

func TestListEpisodesByTopicPopular(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/v1/episodes?topic=DevOps&sort=popular")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.EpisodeListDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var slugs []string
	for _, ep := range body.Items {
		slugs = append(slugs, ep.Slug)
	}
	assert.Equal(t, []string{"building-internal-developer-platforms", "supply-chain-security-for-ci", "gitops-in-practice"}, slugs)
	assert.Equal(t, "popular", body.Filter.Sort)
	assert.Equal(t, "sort=popular&topic=DevOps", body.Filter.Query)
}

func TestListArticlesSingular(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/v1/articles?topic=Kubernetes")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.ArticleListDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Showing 1 article", body.Summary)
}

func TestEpisodeNotFound(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/v1/episodes/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestFeaturedAndSlugRoutes(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/v1/episodes/featured")
	require.Equal(t, http.StatusOK, rec.Code)
	var featured models.Episode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	assert.Equal(t, "building-internal-developer-platforms", featured.Slug)

	rec = get(t, h, "/api/v1/episodes/gitops-in-practice")
	require.Equal(t, http.StatusOK, rec.Code)
	var ep models.Episode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ep))
	assert.Equal(t, "Marcus Johnson", ep.Guest.Name)
}

func TestTopicRoutes(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/v1/topics/devops")
	require.Equal(t, http.StatusOK, rec.Code)
	var page content.TopicPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "DevOps", page.Topic.Name)
	assert.Len(t, page.Episodes, 3)

	rec = get(t, h, "/api/v1/topics/security/guests")
	require.Equal(t, http.StatusOK, rec.Code)
	var guests []models.GuestProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guests))
	require.Len(t, guests, 1)
	assert.Equal(t, "elena-rodriguez", guests[0].Slug)

	rec = get(t, h, "/api/v1/topics/nothing/episodes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/v1/topics/nothing").Code)
}

func TestGuestRoute(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/v1/guests/marcus-johnson")
	require.Equal(t, http.StatusOK, rec.Code)

	var page content.GuestPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "Marcus Johnson", page.Guest.Name)
	assert.Len(t, page.Episodes, 2)
}

func TestHealthWithCMSDisabled(t *testing.T) {
	rec := get(t, newTestHandler(t), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","cms":"disabled"}`, rec.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil)
	req.Header.Set("X-Request-Id", "abc123")
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc123", rec.Header().Get("X-Request-Id"))

	generated := get(t, h, "/api/v1/topics").Header().Get("X-Request-Id")
	assert.Len(t, generated, 32)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/episodes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/episodes", nil)
	req.Header.Set("Origin", "http://evil.example")
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerPathsMatchRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gw := content.NewGateway(nil, content.NewStaticSource(fallback.Default()))
	engine := New(gw, config.Default())

	rec := get(t, engine, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/", doc.BasePath)
	assert.Contains(t, doc.Paths, "/health")
	assert.Contains(t, doc.Paths, "/api/v1/episodes")

	routes := map[string]bool{}
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for path, ops := range doc.Paths {
		ginPath := strings.ReplaceAll(path, "{slug}", ":slug")
		for method := range ops {
			assert.True(t, routes[strings.ToUpper(method)+" "+ginPath], "documented route %s %s is not served", method, path)
		}
	}
}
