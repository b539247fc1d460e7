package http

import (
	"github.com/gin-gonic/gin"

	"personal-fitness-trainer/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Analyses are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/modes", h.ListModes)
	rg.POST("/analyses/:mode", mw.RateLimit(), h.Analyze)
}
