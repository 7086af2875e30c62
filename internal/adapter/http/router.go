package http

import (
	"iso-evidence-gateway/internal/adapter/http/handler"
	"iso-evidence-gateway/internal/adapter/http/middleware"
	"iso-evidence-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Receipts ports.ReceiptRepository
	Anchors  ports.ChainAnchorRepository
	Projects ports.ProjectRepository
	Queue    ports.JobQueue
	Bus      ports.EventBus
	Confirm  ports.ConfirmationService
	Verifier ports.BundleVerifier
	Tokens   ports.TokenService
	Health   []ports.HealthChecker
	Logger   zerolog.Logger
}

// SetupRouter wires middleware and routes.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MiB

	r.GET("/healthz", handler.HealthCheck(deps.Health...))

	receiptHandler := handler.NewReceiptHandler(deps.Receipts, deps.Anchors, deps.Queue, deps.Bus, deps.Logger)
	evidenceHandler := handler.NewEvidenceHandler(deps.Receipts, deps.Confirm, deps.Verifier, deps.Logger)
	projectHandler := handler.NewProjectHandler(deps.Projects, deps.Tokens, deps.Logger)

	v1 := r.Group("/v1")
	{
		v1.POST("/projects", projectHandler.Create)
		v1.POST("/verify", evidenceHandler.Verify)

		authed := v1.Group("")
		authed.Use(middleware.ProjectAuth(deps.Tokens, deps.Logger))
		{
			authed.POST("/receipts", receiptHandler.Create)
			authed.GET("/receipts", receiptHandler.List)
			authed.GET("/receipts/:id", receiptHandler.Get)
			authed.GET("/receipts/:id/events", receiptHandler.Events)
			authed.POST("/iso/confirm-anchor", evidenceHandler.ConfirmAnchor)
			authed.PUT("/projects/me/anchoring", projectHandler.UpdateAnchoring)
		}
	}

	return r
}
