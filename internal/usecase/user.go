package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/communication-service/internal/credential"
	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/metrics"
	"github.com/ErlanBelekov/communication-service/internal/repository"
	"github.com/go-playground/validator/v10"
)

const (
	emailRule    = "required,email,max=320"
	passwordRule = "required,min=6,max=32"
)

type UserUsecase struct {
	repo     repository.UserRepository
	hasher   credential.Hasher
	validate *validator.Validate
	logger   *slog.Logger
}

func NewUserUsecase(repo repository.UserRepository, hasher credential.Hasher, logger *slog.Logger) *UserUsecase {
	return &UserUsecase{
		repo:     repo,
		hasher:   hasher,
		validate: validator.New(),
		logger:   logger.With("component", "user_usecase"),
	}
}

// Register stores a new user. Only the credential artifact is persisted.
func (u *UserUsecase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if err := u.checkInput(email, password); err != nil {
		return nil, err
	}

	hash, err := u.hash(password)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.Create(ctx, email, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	u.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func (u *UserUsecase) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update replaces email and password. The old artifact is discarded.
func (u *UserUsecase) Update(ctx context.Context, id, email, password string) (*domain.User, error) {
	if err := u.checkInput(email, password); err != nil {
		return nil, err
	}

	hash, err := u.hash(password)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.Update(ctx, id, email, hash)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	u.logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

func (u *UserUsecase) List(ctx context.Context, req PageRequest) (PageResult[*domain.User], error) {
	req = req.normalize()
	users, total, err := u.repo.List(ctx, req.toRepo())
	if err != nil {
		return PageResult[*domain.User]{}, fmt.Errorf("list users: %w", err)
	}
	return PageResult[*domain.User]{Items: users, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (u *UserUsecase) Search(ctx context.Context, query string) ([]*domain.User, error) {
	users, err := u.repo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// checkInput applies the registration rules to every caller, HTTP or CLI.
func (u *UserUsecase) checkInput(email, password string) error {
	if err := u.validate.Var(email, emailRule); err != nil {
		return fmt.Errorf("%w: email must be a valid address of at most 320 characters", domain.ErrInvalidInput)
	}
	if err := u.validate.Var(password, passwordRule); err != nil {
		return fmt.Errorf("%w: password must be 6 to 32 characters", domain.ErrInvalidInput)
	}
	return nil
}

func (u *UserUsecase) hash(password string) (string, error) {
	start := time.Now()
	hash, err := u.hasher.Hash(password)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
