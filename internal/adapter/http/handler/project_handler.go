package handler

import (
	"time"

	"iso-evidence-gateway/internal/adapter/http/dto"
	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"
	"iso-evidence-gateway/pkg/apperror"
	"iso-evidence-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProjectHandler handles project provisioning.
type ProjectHandler struct {
	projects ports.ProjectRepository
	tokens   ports.TokenService
	log      zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects ports.ProjectRepository, tokens ports.TokenService, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, tokens: tokens, log: log}
}

// Create handles POST /v1/projects: provisions a project and returns its
// API token.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	project := &domain.Project{
		ID:        uuid.New(),
		Name:      req.Name,
		Anchoring: toAnchoring(req.Anchoring),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	token, expiry, err := h.tokens.Generate(project.ID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	h.log.Info().Str("project_id", project.ID.String()).Str("name", project.Name).Msg("project created")
	response.Created(c, dto.CreateProjectResponse{
		ProjectID: project.ID.String(),
		Name:      project.Name,
		Token:     token,
		Expiry:    expiry.Unix(),
	})
}

// UpdateAnchoring handles PUT /v1/projects/me/anchoring: replaces the
// authenticated project's anchoring policy.
func (h *ProjectHandler) UpdateAnchoring(c *gin.Context) {
	projectID, ok := authedProject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AnchoringConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.projects.UpdateAnchoring(c.Request.Context(), projectID, toAnchoring(&req)); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.OK(c, gin.H{"project_id": projectID.String()})
}

func toAnchoring(in *dto.AnchoringConfig) domain.AnchoringConfig {
	if in == nil {
		return domain.AnchoringConfig{}
	}
	out := domain.AnchoringConfig{
		ExecutionMode: domain.ExecutionMode(in.ExecutionMode),
		KeyRef:        in.KeyRef,
	}
	for _, ch := range in.Chains {
		out.Chains = append(out.Chains, domain.ChainConfig{
			Name:            ch.Name,
			Contract:        ch.Contract,
			RPCURL:          ch.RPCURL,
			ExplorerBaseURL: ch.ExplorerBaseURL,
		})
	}
	return out
}
