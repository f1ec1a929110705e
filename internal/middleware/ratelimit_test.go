package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(limiter *RateLimiter, max int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit", limiter.Limit("submit", max, "Trop de requêtes."), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doPost(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLimitBlocksAboveMax(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(time.Minute), 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doPost(r, "1.2.3.4"))
	}
	assert.Equal(t, http.StatusTooManyRequests, doPost(r, "1.2.3.4"))

	// Another IP has its own window.
	assert.Equal(t, http.StatusOK, doPost(r, "5.6.7.8"))
}

func TestLimitWindowResets(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(50*time.Millisecond), 1)

	assert.Equal(t, http.StatusOK, doPost(r, "1.2.3.4"))
	assert.Equal(t, http.StatusTooManyRequests, doPost(r, "1.2.3.4"))

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, http.StatusOK, doPost(r, "1.2.3.4"))
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "9.9.9.9, 10.0.0.1")

	assert.Equal(t, "9.9.9.9", ClientIP(c))
}
