package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func buildCachedRouter(hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/towers", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"hits": *hits})
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCacheServesRepeatedGets(t *testing.T) {
	PurgeCache()
	hits := 0
	r := buildCachedRouter(&hits)

	first := get(r, "/api/towers")
	second := get(r, "/api/towers")

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200s, got %d and %d", first.Code, second.Code)
	}
	if hits != 1 {
		t.Fatalf("expected handler to run once, ran %d times", hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("cached response body should match the original")
	}
}

func TestCacheKeyIncludesQuery(t *testing.T) {
	PurgeCache()
	hits := 0
	r := buildCachedRouter(&hits)

	get(r, "/api/towers")
	get(r, "/api/towers?available=true")

	if hits != 2 {
		t.Fatalf("different query strings must not share a cache entry, handler ran %d times", hits)
	}
}

func TestPurgeCacheByPrefix(t *testing.T) {
	PurgeCache()
	hits := 0
	r := buildCachedRouter(&hits)

	for i := 0; i < 2; i++ {
		get(r, "/api/towers?page="+strconv.Itoa(i))
	}
	if hits != 2 {
		t.Fatalf("expected 2 misses, got %d", hits)
	}

	PurgeCacheByPrefix("/api/towers")

	get(r, "/api/towers?page=0")
	if hits != 3 {
		t.Fatalf("expected a miss after purge, handler ran %d times", hits)
	}
}
