package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
)

// ---- fakes ----

type fakeUserRepo struct {
	create      func(ctx context.Context, email, hash string) (*domain.User, error)
	findByID    func(ctx context.Context, id string) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
	update      func(ctx context.Context, id, email, hash string) (*domain.User, error)
	delete      func(ctx context.Context, id string) error
	list        func(ctx context.Context, page repository.Page) ([]*domain.User, int, error)
	search      func(ctx context.Context, query string, limit int) ([]*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, email, hash string) (*domain.User, error) {
	return r.create(ctx, email, hash)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) Update(ctx context.Context, id, email, hash string) (*domain.User, error) {
	return r.update(ctx, id, email, hash)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func (r *fakeUserRepo) List(ctx context.Context, page repository.Page) ([]*domain.User, int, error) {
	return r.list(ctx, page)
}

func (r *fakeUserRepo) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	return r.search(ctx, query, limit)
}

type fakeCustomerRepo struct {
	findByID func(ctx context.Context, id string) (*domain.Customer, error)
	list     func(ctx context.Context, page repository.Page) ([]*domain.Customer, int, error)
}

func (r *fakeCustomerRepo) Create(_ context.Context, name, email string) (*domain.Customer, error) {
	return &domain.Customer{ID: "c-new", Name: name, Email: email}, nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.findByID(ctx, id)
}

func (r *fakeCustomerRepo) Update(_ context.Context, id, name, email string) (*domain.Customer, error) {
	return &domain.Customer{ID: id, Name: name, Email: email}, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeCustomerRepo) List(ctx context.Context, page repository.Page) ([]*domain.Customer, int, error) {
	return r.list(ctx, page)
}

func (r *fakeCustomerRepo) Search(_ context.Context, _ string, _ int) ([]*domain.Customer, error) {
	return nil, nil
}

type fakeTemplateRepo struct {
	findByID func(ctx context.Context, id string) (*domain.Template, error)
}

func (r *fakeTemplateRepo) Create(_ context.Context, in repository.TemplateInput) (*domain.Template, error) {
	return &domain.Template{ID: "t-new", Name: in.Name, Subject: in.Subject, Body: in.Body}, nil
}

func (r *fakeTemplateRepo) FindByID(ctx context.Context, id string) (*domain.Template, error) {
	return r.findByID(ctx, id)
}

func (r *fakeTemplateRepo) Update(_ context.Context, id string, in repository.TemplateInput) (*domain.Template, error) {
	return &domain.Template{ID: id, Name: in.Name, Subject: in.Subject, Body: in.Body}, nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeTemplateRepo) List(_ context.Context, _ repository.Page) ([]*domain.Template, int, error) {
	return nil, 0, nil
}

func (r *fakeTemplateRepo) Search(_ context.Context, _ string, _ int) ([]*domain.Template, error) {
	return nil, nil
}

type fakeMailer struct {
	sendEmail func(ctx context.Context, subject, body, to string) error
}

func (m *fakeMailer) SendEmail(ctx context.Context, subject, body, to string) error {
	return m.sendEmail(ctx, subject, body, to)
}

type fakeHasher struct {
	hash   func(password string) (string, error)
	verify func(password, artifact string) (bool, error)
}

func (h *fakeHasher) Hash(password string) (string, error) { return h.hash(password) }

func (h *fakeHasher) Verify(password, artifact string) (bool, error) {
	return h.verify(password, artifact)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
