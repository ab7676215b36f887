package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
	"github.com/ErlanBelekov/communication-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type templateUsecaser interface {
	Create(ctx context.Context, in repository.TemplateInput) (*domain.Template, error)
	Get(ctx context.Context, id string) (*domain.Template, error)
	Update(ctx context.Context, id string, in repository.TemplateInput) (*domain.Template, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req usecase.PageRequest) (usecase.PageResult[*domain.Template], error)
	Search(ctx context.Context, query string) ([]*domain.Template, error)
	Send(ctx context.Context, templateID, customerID string) error
}

type TemplateHandler struct {
	templateUsecase templateUsecaser
	logger          *slog.Logger
}

func NewTemplateHandler(templateUsecase templateUsecaser, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{templateUsecase: templateUsecase, logger: logger.With("component", "template_handler")}
}

type templateRequest struct {
	Name    string `json:"name"    binding:"required,max=128"`
	Subject string `json:"subject" binding:"required,max=256"`
	Body    string `json:"body"    binding:"required"`
}

func (r templateRequest) input() repository.TemplateInput {
	return repository.TemplateInput{Name: r.Name, Subject: r.Subject, Body: r.Body}
}

type sendTemplateRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

type templateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTemplateResponse(t *domain.Template) templateResponse {
	return templateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (h *TemplateHandler) Create(ctx *gin.Context) {
	var req templateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.templateUsecase.Create(ctx.Request.Context(), req.input())
	if err != nil {
		writeError(ctx, h.logger, "create template", err)
		return
	}

	ctx.JSON(http.StatusCreated, newTemplateResponse(t))
}

func (h *TemplateHandler) GetByID(ctx *gin.Context) {
	t, err := h.templateUsecase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, h.logger, "get template", err)
		return
	}

	ctx.JSON(http.StatusOK, newTemplateResponse(t))
}

func (h *TemplateHandler) Update(ctx *gin.Context) {
	var req templateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.templateUsecase.Update(ctx.Request.Context(), ctx.Param("id"), req.input())
	if err != nil {
		writeError(ctx, h.logger, "update template", err)
		return
	}

	ctx.JSON(http.StatusOK, newTemplateResponse(t))
}

func (h *TemplateHandler) Delete(ctx *gin.Context) {
	if err := h.templateUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeError(ctx, h.logger, "delete template", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *TemplateHandler) List(ctx *gin.Context) {
	result, err := h.templateUsecase.List(ctx.Request.Context(), pageRequest(ctx))
	if err != nil {
		writeError(ctx, h.logger, "list templates", err)
		return
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, result, newTemplateResponse))
}

func (h *TemplateHandler) Search(ctx *gin.Context) {
	var q searchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	templates, err := h.templateUsecase.Search(ctx.Request.Context(), q.Query)
	if err != nil {
		writeError(ctx, h.logger, "search templates", err)
		return
	}

	resp := make([]templateResponse, len(templates))
	for i, t := range templates {
		resp[i] = newTemplateResponse(t)
	}
	ctx.JSON(http.StatusOK, resp)
}

// POST /api/v1/templates/:id/send
// Returns 204 once the transport has accepted the message.
func (h *TemplateHandler) Send(ctx *gin.Context) {
	var req sendTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.templateUsecase.Send(ctx.Request.Context(), ctx.Param("id"), req.CustomerID); err != nil {
		writeError(ctx, h.logger, "send template", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
