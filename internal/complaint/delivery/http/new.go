package http

import (
	"github.com/gin-gonic/gin"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/pkg/log"
)

// Handler is the public interface for the complaint HTTP delivery layer.
type Handler interface {
	SubmitText(c *gin.Context)
	SubmitVoice(c *gin.Context)
	SubmitImage(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc complaint.UseCase
}

// New creates a new HTTP handler for the complaint domain.
func New(l log.Logger, uc complaint.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
