package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
)

type CustomerUsecase struct {
	repo   repository.CustomerRepository
	logger *slog.Logger
}

func NewCustomerUsecase(repo repository.CustomerRepository, logger *slog.Logger) *CustomerUsecase {
	return &CustomerUsecase{repo: repo, logger: logger.With("component", "customer_usecase")}
}

func (u *CustomerUsecase) Create(ctx context.Context, name, email string) (*domain.Customer, error) {
	c, err := u.repo.Create(ctx, name, email)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	u.logger.InfoContext(ctx, "customer created", "customer_id", c.ID)
	return c, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, id string) (*domain.Customer, error) {
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, id, name, email string) (*domain.Customer, error) {
	c, err := u.repo.Update(ctx, id, name, email)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (u *CustomerUsecase) List(ctx context.Context, req PageRequest) (PageResult[*domain.Customer], error) {
	req = req.normalize()
	customers, total, err := u.repo.List(ctx, req.toRepo())
	if err != nil {
		return PageResult[*domain.Customer]{}, fmt.Errorf("list customers: %w", err)
	}
	return PageResult[*domain.Customer]{Items: customers, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (u *CustomerUsecase) Search(ctx context.Context, query string) ([]*domain.Customer, error) {
	customers, err := u.repo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return customers, nil
}
