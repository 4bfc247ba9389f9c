package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	complaintHTTP "smartcity-complaints/internal/complaint/delivery/http"
	complaintRepo "smartcity-complaints/internal/complaint/repository/postgre"
	complaintUC "smartcity-complaints/internal/complaint/usecase"
	"smartcity-complaints/internal/middleware"
)

// setupComplaintDomain initializes the complaint domain and registers
// its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, ..., repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupComplaintDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := complaintRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := complaintUC.New(srv.l, srv.llm, srv.transcriber, srv.vision, repo, complaintUC.Options{
		ReplyMode: srv.replyMode,
		CacheSize: srv.cacheSize,
	})

	// 3. HTTP Handler
	h := complaintHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/complaints
	complaintHTTP.RegisterRoutes(api, h, mw)

	if srv.transcriber == nil {
		srv.l.Warnf(ctx, "No transcriber configured, voice submissions will be rejected")
	}
	srv.l.Infof(ctx, "Complaint domain registered")
	return nil
}
