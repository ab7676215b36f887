package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/email"
	"github.com/ErlanBelekov/communication-service/internal/repository"
)

type Mailer interface {
	SendEmail(ctx context.Context, subject, body, to string) error
}

type TemplateUsecase struct {
	templates   repository.TemplateRepository
	customers   repository.CustomerRepository
	mailer      Mailer
	senderEmail string
	logger      *slog.Logger
}

func NewTemplateUsecase(
	templates repository.TemplateRepository,
	customers repository.CustomerRepository,
	mailer Mailer,
	senderEmail string,
	logger *slog.Logger,
) *TemplateUsecase {
	return &TemplateUsecase{
		templates:   templates,
		customers:   customers,
		mailer:      mailer,
		senderEmail: senderEmail,
		logger:      logger.With("component", "template_usecase"),
	}
}

func (u *TemplateUsecase) Create(ctx context.Context, in repository.TemplateInput) (*domain.Template, error) {
	t, err := u.templates.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	u.logger.InfoContext(ctx, "template created", "template_id", t.ID)
	return t, nil
}

func (u *TemplateUsecase) Get(ctx context.Context, id string) (*domain.Template, error) {
	t, err := u.templates.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (u *TemplateUsecase) Update(ctx context.Context, id string, in repository.TemplateInput) (*domain.Template, error) {
	t, err := u.templates.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return t, nil
}

func (u *TemplateUsecase) Delete(ctx context.Context, id string) error {
	if err := u.templates.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

func (u *TemplateUsecase) List(ctx context.Context, req PageRequest) (PageResult[*domain.Template], error) {
	req = req.normalize()
	templates, total, err := u.templates.List(ctx, req.toRepo())
	if err != nil {
		return PageResult[*domain.Template]{}, fmt.Errorf("list templates: %w", err)
	}
	return PageResult[*domain.Template]{Items: templates, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (u *TemplateUsecase) Search(ctx context.Context, query string) ([]*domain.Template, error) {
	templates, err := u.templates.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search templates: %w", err)
	}
	return templates, nil
}

// Send renders the template for one customer and mails it to them.
// Subject and body go through the same placeholder substitution.
func (u *TemplateUsecase) Send(ctx context.Context, templateID, customerID string) error {
	t, err := u.templates.FindByID(ctx, templateID)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}
	c, err := u.customers.FindByID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("load customer: %w", err)
	}

	subject := email.Render(t.Subject, *c, u.senderEmail)
	body := email.Render(t.Body, *c, u.senderEmail)

	if err := u.mailer.SendEmail(ctx, subject, body, c.Email); err != nil {
		u.logger.WarnContext(ctx, "template send failed",
			"template_id", t.ID,
			"customer_id", c.ID,
			"error", err,
		)
		return fmt.Errorf("send template: %w", err)
	}

	u.logger.InfoContext(ctx, "template sent", "template_id", t.ID, "customer_id", c.ID)
	return nil
}
