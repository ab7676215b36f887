package repository

import (
	"context"

	"github.com/ErlanBelekov/communication-service/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, name, email string) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id, name, email string) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Page) ([]*domain.Customer, int, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Customer, error)
}
