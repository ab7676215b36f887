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

type userUsecaser interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id, email, password string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req usecase.PageRequest) (usecase.PageResult[*domain.User], error)
	Search(ctx context.Context, query string) ([]*domain.User, error)
}

type UserHandler struct {
	userUsecase userUsecaser
	logger      *slog.Logger
}

func NewUserHandler(userUsecase userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger.With("component", "user_handler")}
}

type userRequest struct {
	Email    string `json:"email"    binding:"required,email,max=320"`
	Password string `json:"password" binding:"required,min=6,max=32"`
}

// userResponse deliberately has no password field.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

// POST /api/v1/users
func (h *UserHandler) Create(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Register(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(ctx, h.logger, "register user", err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *UserHandler) GetByID(ctx *gin.Context) {
	user, err := h.userUsecase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, h.logger, "get user", err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Update(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Update(ctx.Request.Context(), ctx.Param("id"), req.Email, req.Password)
	if err != nil {
		writeError(ctx, h.logger, "update user", err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	if err := h.userUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeError(ctx, h.logger, "delete user", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GET /api/v1/users?page=&page_size=
func (h *UserHandler) List(ctx *gin.Context) {
	result, err := h.userUsecase.List(ctx.Request.Context(), pageRequest(ctx))
	if err != nil {
		writeError(ctx, h.logger, "list users", err)
		return
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, result, newUserResponse))
}

// GET /api/v1/users/search?query=
func (h *UserHandler) Search(ctx *gin.Context) {
	var q searchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.userUsecase.Search(ctx.Request.Context(), q.Query)
	if err != nil {
		writeError(ctx, h.logger, "search users", err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = newUserResponse(u)
	}
	ctx.JSON(http.StatusOK, resp)
}
