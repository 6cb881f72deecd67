package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(zerolog.Nop()))

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesCallerID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(zerolog.New(&buf)))
	r.Use(RequestLogger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for path, level := range map[string]string{"/ok": "info", "/bad": "warn", "/fail": "error"} {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

		assert.Contains(t, buf.String(), `"level":"`+level+`"`, path)
		assert.Contains(t, buf.String(), `"path":"`+path+`"`)
		assert.Contains(t, buf.String(), `"request_id"`)
	}
}

func TestGetLogger_WithoutRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(zerolog.Nop()))
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error", "requestId": "req-42"}`, rec.Body.String())
}

func TestCORS_AnyOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.POST("/api/cart", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "http://frontend.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightReflectsRequestedHeaders(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.PUT("/api/cart/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/cart/65a0c0ffee0000000000abcd", nil)
	req.Header.Set("Origin", "http://frontend.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "content-type,authorization,x-foo")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "content-type,authorization,x-foo", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://allowed.test"}))
	r.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	allowed := httptest.NewRequest(http.MethodGet, "/products", nil)
	allowed.Header.Set("Origin", "http://allowed.test")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, allowed)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://allowed.test", rec.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/products", nil)
	denied.Header.Set("Origin", "http://other.test")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, denied)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
