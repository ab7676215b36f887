package repository

import (
	"context"

	"github.com/ErlanBelekov/communication-service/internal/domain"
)

type TemplateInput struct {
	Name    string
	Subject string
	Body    string
}

type TemplateRepository interface {
	Create(ctx context.Context, in TemplateInput) (*domain.Template, error)
	FindByID(ctx context.Context, id string) (*domain.Template, error)
	Update(ctx context.Context, id string, in TemplateInput) (*domain.Template, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page Page) ([]*domain.Template, int, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Template, error)
}
