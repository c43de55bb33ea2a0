package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	submissionapp "github.com/interiors/backend/internal/application/submission"
	"github.com/interiors/backend/internal/infrastructure/logger"
)

// SubmissionService is the application API the handler drives.
// *submissionapp.SubmissionService implements it.
type SubmissionService interface {
	Classify(ctx context.Context, req submissionapp.ClassifyRequest) (*submissionapp.ClassifyResponse, error)
	Render(ctx context.Context, req submissionapp.RenderRequest) (*submissionapp.RenderResponse, error)
	ExtractMaterials(ctx context.Context, req submissionapp.ExtractMaterialsRequest) (*submissionapp.ExtractMaterialsResponse, error)
	CreateMaterialOrder(ctx context.Context, req submissionapp.CreateMaterialOrderRequest) (*submissionapp.MaterialOrderResponse, error)
	MarkNotApplicable(ctx context.Context, req submissionapp.MarkNotApplicableRequest) (*submissionapp.MarkNotApplicableResponse, error)
}

// SubmissionHandler handles form submission endpoints
type SubmissionHandler struct {
	BaseHandler
	service SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(service SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// tagKind records the resolved kind on the request context so the access log
// and server span can report it.
func tagKind(c *gin.Context, kind string) {
	c.Request = c.Request.WithContext(logger.WithSubmissionKind(c.Request.Context(), kind))
}

// Classify resolves the kind of a submission
func (h *SubmissionHandler) Classify(c *gin.Context) {
	var req submissionapp.ClassifyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Classify(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	tagKind(c, resp.Kind)
	h.Success(c, resp)
}

// Render returns the ordered display sections of a submission
func (h *SubmissionHandler) Render(c *gin.Context) {
	var req submissionapp.RenderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Render(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	tagKind(c, resp.Kind)
	h.Success(c, resp)
}

// ExtractMaterials returns the material line items of one section
func (h *SubmissionHandler) ExtractMaterials(c *gin.Context) {
	var req submissionapp.ExtractMaterialsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.ExtractMaterials(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// CreateMaterialOrder drafts a material order payload for a section
func (h *SubmissionHandler) CreateMaterialOrder(c *gin.Context) {
	var req submissionapp.CreateMaterialOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateMaterialOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// MarkNotApplicable returns the Mark N/A patch for a section tag
func (h *SubmissionHandler) MarkNotApplicable(c *gin.Context) {
	var req submissionapp.MarkNotApplicableRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.MarkNotApplicable(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
