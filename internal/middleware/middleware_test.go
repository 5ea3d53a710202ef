package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/v1/products/:id/variants/:variantId/sku", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("lang"))
	})
	return r
}

func TestI18nMiddleware(t *testing.T) {
	r := newTestRouter(I18nMiddleware("en"))

	cases := map[string]string{
		"":               "en",
		"tr":             "tr",
		"tr-TR,tr;q=0.9": "tr",
		"tr_TR":          "tr",
		"en-GB,en;q=0.8": "en",
		"de-DE,tr;q=0.9": "en",
	}

	for header, want := range cases {
		req := httptest.NewRequest("GET", "/v1/products/p/variants/v/sku", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Body.String(), "Accept-Language %q", header)
	}
}

func TestI18nMiddlewareDefaultLocale(t *testing.T) {
	r := newTestRouter(I18nMiddleware("tr"))

	req := httptest.NewRequest("GET", "/v1/products/p/variants/v/sku", nil)
	req.Header.Set("Accept-Language", "fr")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "tr", w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(0.001), 2)
	defer limiter.Stop()
	r := newTestRouter(limiter.Middleware())

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/products/p/variants/v/sku", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(1), 1)
	defer limiter.Stop()

	limiter.getVisitor("10.0.0.1")
	require.Len(t, limiter.visitors, 1)

	limiter.evictIdle(0)
	assert.Empty(t, limiter.visitors)
}

func TestRateLimiterStopEndsCleanup(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(1), 1)

	finished := make(chan struct{})
	go func() {
		limiter.cleanupVisitors(time.Hour, time.Hour)
		close(finished)
	}()

	limiter.Stop()
	limiter.Stop()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("cleanup still running after Stop")
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := newTestRouter(RequestLogger())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/products/p/variants/v/sku", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest("GET", "/v1/products/p/variants/v/sku", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestExtractResourceType(t *testing.T) {
	assert.Equal(t, "products", extractResourceType("/v1/products"))
	assert.Equal(t, "products", extractResourceType("/v1/products/:id"))
	assert.Equal(t, "variants", extractResourceType("/v1/products/:id/variants/:variantId/sku"))
	assert.Equal(t, "catalog", extractResourceType("/v1/catalog/active"))
	assert.Equal(t, "unknown", extractResourceType(""))
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newTestRouter(CORS([]string{"http://localhost:3000"}))

	req := httptest.NewRequest("OPTIONS", "/v1/products/p/variants/v/sku", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
