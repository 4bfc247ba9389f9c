package http

import (
	"github.com/gin-gonic/gin"

	"smartcity-complaints/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	complaints := rg.Group("/complaints")
	{
		complaints.POST("", h.SubmitText)
		complaints.POST("/voice", h.SubmitVoice)
		complaints.POST("/image", h.SubmitImage)
		complaints.GET("", h.List)
		complaints.GET("/:id", h.Detail)
	}
}
