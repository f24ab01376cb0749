package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
	projectUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/project"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// ProjectHandler handles project listing HTTP requests
type ProjectHandler struct {
	projectService *projectUseCase.Service
	logger         coreport.Logger
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(projectService *projectUseCase.Service, logger coreport.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

func parsePricing(req *dto.PricingRequest) (*entity.Pricing, error) {
	if req == nil {
		return nil, nil
	}
	sale, err := entity.ParseAmount(req.SalePrice)
	if err != nil {
		return nil, err
	}
	original, err := entity.ParseAmount(req.OriginalPrice)
	if err != nil {
		return nil, err
	}
	return &entity.Pricing{
		SalePrice:     sale,
		OriginalPrice: original,
		Currency:      entity.Currency(req.Currency),
	}, nil
}

// Create handles the POST /projects endpoint
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	pricing, err := parsePricing(req.Pricing)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	project, err := h.projectService.CreateProject(
		c.Request.Context(), middleware.UserID(c), req.Title, req.Description, pricing)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProjectResponseFromEntity(project))
}

// Update handles the PUT /projects/:id endpoint
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	pricing, err := parsePricing(req.Pricing)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	project, err := h.projectService.UpdateProject(
		c.Request.Context(), middleware.UserID(c), c.Param("id"),
		projectUseCase.UpdateRequest{
			Title:        req.Title,
			Description:  req.Description,
			Pricing:      pricing,
			ClearPricing: req.ClearPricing,
		})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProjectResponseFromEntity(project))
}

// Delete handles the DELETE /projects/:id endpoint
func (h *ProjectHandler) Delete(c *gin.Context) {
	err := h.projectService.DeleteProject(
		c.Request.Context(), middleware.UserID(c), middleware.Role(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get handles the GET /projects/:id endpoint
func (h *ProjectHandler) Get(c *gin.Context) {
	view, err := h.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectResponse(view))
}

// List handles the GET /projects endpoint. The public catalogue only ever
// shows approved listings.
func (h *ProjectHandler) List(c *gin.Context) {
	filter := persistence.ProjectListFilter{
		Status:   entity.ProjectStatusApproved,
		AuthorID: c.Query("author_id"),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	}
	h.list(c, filter)
}

// ListMine handles the GET /projects/mine endpoint, returning the caller's
// own listings in any state
func (h *ProjectHandler) ListMine(c *gin.Context) {
	filter := persistence.ProjectListFilter{
		Status:   entity.ProjectStatus(c.Query("status")),
		AuthorID: middleware.UserID(c),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	}
	h.list(c, filter)
}

func (h *ProjectHandler) list(c *gin.Context, filter persistence.ProjectListFilter) {
	// Mirror the service's paging bounds so the echoed limit matches the page
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	views, total, err := h.projectService.ListProjects(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	projects := make([]dto.ProjectResponse, 0, len(views))
	for _, view := range views {
		projects = append(projects, dto.NewProjectResponse(view))
	}

	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Projects: projects,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}

// SubmitForReview handles the POST /projects/:id/submit endpoint
func (h *ProjectHandler) SubmitForReview(c *gin.Context) {
	project, err := h.projectService.SubmitForReview(
		c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectResponseFromEntity(project))
}

// UpdateStatus handles the PATCH /admin/projects/:id/status endpoint
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	project, err := h.projectService.UpdateStatus(
		c.Request.Context(), middleware.Role(c), c.Param("id"), entity.ProjectStatus(req.Status))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProjectResponseFromEntity(project))
}

func queryInt(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
