package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type customerUsecaser interface {
	Create(ctx context.Context, name, email string) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id, name, email string) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req usecase.PageRequest) (usecase.PageResult[*domain.Customer], error)
	Search(ctx context.Context, query string) ([]*domain.Customer, error)
}

type CustomerHandler struct {
	customerUsecase customerUsecaser
	logger          *slog.Logger
}

func NewCustomerHandler(customerUsecase customerUsecaser, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase, logger: logger.With("component", "customer_handler")}
}

type customerRequest struct {
	Name  string `json:"name"  binding:"required,min=2,max=64"`
	Email string `json:"email" binding:"required,email,max=320"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{ID: c.ID, Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func (h *CustomerHandler) Create(ctx *gin.Context) {
	var req customerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c, err := h.customerUsecase.Create(ctx.Request.Context(), req.Name, req.Email)
	if err != nil {
		writeError(ctx, h.logger, "create customer", err)
		return
	}

	ctx.JSON(http.StatusCreated, newCustomerResponse(c))
}

func (h *CustomerHandler) GetByID(ctx *gin.Context) {
	c, err := h.customerUsecase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, h.logger, "get customer", err)
		return
	}

	ctx.JSON(http.StatusOK, newCustomerResponse(c))
}

func (h *CustomerHandler) Update(ctx *gin.Context) {
	var req customerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c, err := h.customerUsecase.Update(ctx.Request.Context(), ctx.Param("id"), req.Name, req.Email)
	if err != nil {
		writeError(ctx, h.logger, "update customer", err)
		return
	}

	ctx.JSON(http.StatusOK, newCustomerResponse(c))
}

func (h *CustomerHandler) Delete(ctx *gin.Context) {
	if err := h.customerUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeError(ctx, h.logger, "delete customer", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *CustomerHandler) List(ctx *gin.Context) {
	result, err := h.customerUsecase.List(ctx.Request.Context(), pageRequest(ctx))
	if err != nil {
		writeError(ctx, h.logger, "list customers", err)
		return
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, result, newCustomerResponse))
}

func (h *CustomerHandler) Search(ctx *gin.Context) {
	var q searchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customers, err := h.customerUsecase.Search(ctx.Request.Context(), q.Query)
	if err != nil {
		writeError(ctx, h.logger, "search customers", err)
		return
	}

	resp := make([]customerResponse, len(customers))
	for i, c := range customers {
		resp[i] = newCustomerResponse(c)
	}
	ctx.JSON(http.StatusOK, resp)
}
