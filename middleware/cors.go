package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the given origins; "*" allows any origin. Preflights are
// granted whatever request headers they ask for.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}

	handler := cors.New(cfg)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
				c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
			}
		}
		handler(c)
	}
}
