package dto

import (
	"time"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/pricing"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/project"
)

// PricingRequest carries project price fields as fixed-scale decimal strings
type PricingRequest struct {
	SalePrice     string `json:"sale_price" binding:"required"`
	OriginalPrice string `json:"original_price" binding:"required"`
	Currency      string `json:"currency" binding:"required"`
}

// CreateProjectRequest is the payload for creating a listing
type CreateProjectRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Pricing     *PricingRequest `json:"pricing"`
}

// UpdateProjectRequest is the payload for editing a listing. Nil fields are
// left untouched; ClearPricing removes pricing entirely.
type UpdateProjectRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Pricing      *PricingRequest `json:"pricing"`
	ClearPricing bool            `json:"clear_pricing"`
}

// UpdateStatusRequest is the admin payload for moving a listing between
// lifecycle states
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProjectResponse is the public view of a listing
type ProjectResponse struct {
	ID            string        `json:"id"`
	AuthorID      string        `json:"author_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Status        string        `json:"status"`
	Pricing       *pricing.Info `json:"pricing,omitempty"`
	PurchaseCount uint64        `json:"purchase_count"`
	ViewCount     uint64        `json:"view_count"`
	DownloadCount uint64        `json:"download_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ProjectListResponse is a paged catalogue slice
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// NewProjectResponse maps a project view to its API representation
func NewProjectResponse(view *project.ProjectView) ProjectResponse {
	resp := projectResponseBase(view.Project)
	if view.Project.Pricing != nil {
		info := view.Pricing
		resp.Pricing = &info
	}
	return resp
}

// NewProjectResponseFromEntity maps a bare project entity, without derived
// pricing figures, to its API representation
func NewProjectResponseFromEntity(p *entity.Project) ProjectResponse {
	resp := projectResponseBase(p)
	if p.Pricing != nil {
		resp.Pricing = &pricing.Info{
			SalePrice:       entity.FormatAmount(p.Pricing.SalePrice),
			OriginalPrice:   entity.FormatAmount(p.Pricing.OriginalPrice),
			Currency:        p.Pricing.Currency,
			DiscountPercent: pricing.DiscountPercent(p.Pricing.OriginalPrice, p.Pricing.SalePrice),
		}
	}
	return resp
}

func projectResponseBase(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		Title:         p.Title,
		Description:   p.Description,
		Status:        string(p.Status),
		PurchaseCount: p.PurchaseCount,
		ViewCount:     p.ViewCount,
		DownloadCount: p.DownloadCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
