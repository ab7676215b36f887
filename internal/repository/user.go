package repository

import (
	"context"

	"github.com/ErlanBelekov/communication-service/internal/domain"
)

// Page selects a slice of an ordered listing.
type Page struct {
	Offset int
	Limit  int
}

// UseCase depends on interface, not concrete implementation.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id, email, passwordHash string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Page) (users []*domain.User, total int, err error)
	Search(ctx context.Context, query string, limit int) ([]*domain.User, error)
}
