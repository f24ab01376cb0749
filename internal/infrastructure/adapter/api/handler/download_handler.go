package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	downloadUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/download"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// DownloadHandler handles download authorization HTTP requests
type DownloadHandler struct {
	downloadService *downloadUseCase.Service
	logger          coreport.Logger
}

// NewDownloadHandler creates a new download handler instance
func NewDownloadHandler(downloadService *downloadUseCase.Service, logger coreport.Logger) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
		logger:          logger,
	}
}

// Download handles the POST /projects/:id/download endpoint. Full downloads
// require purchase or authorship; demo and preview are open to any account.
func (h *DownloadHandler) Download(c *gin.Context) {
	var req dto.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	download, err := h.downloadService.DownloadProject(
		c.Request.Context(), middleware.UserID(c), c.Param("id"), entity.DownloadType(req.Type))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	middleware.CountDownload(string(download.DownloadType))
	c.JSON(http.StatusCreated, dto.NewDownloadResponse(download))
}

// History handles the GET /downloads endpoint, returning the caller's
// download log
func (h *DownloadHandler) History(c *gin.Context) {
	downloads, err := h.downloadService.History(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.DownloadResponse, 0, len(downloads))
	for _, download := range downloads {
		responses = append(responses, dto.NewDownloadResponse(download))
	}
	c.JSON(http.StatusOK, dto.DownloadListResponse{Downloads: responses})
}
