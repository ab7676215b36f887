package postgres

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
)

const templateColumns = `id, name, subject, body, created_at, updated_at`

type TemplateRepository struct {
	db DB
}

func NewTemplateRepository(db DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, in repository.TemplateInput) (*domain.Template, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO templates (name, subject, body) VALUES ($1, $2, $3)
		RETURNING `+templateColumns,
		in.Name, in.Subject, in.Body,
	)
	return scanTemplate(row)
}

func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*domain.Template, error) {
	row := r.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
	return scanTemplate(row)
}

func (r *TemplateRepository) Update(ctx context.Context, id string, in repository.TemplateInput) (*domain.Template, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE templates
		SET    name = $2, subject = $3, body = $4, updated_at = NOW()
		WHERE  id = $1
		RETURNING `+templateColumns,
		id, in.Name, in.Subject, in.Body,
	)
	return scanTemplate(row)
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		if isMissing(err) {
			return domain.ErrTemplateNotFound
		}
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepository) List(ctx context.Context, page repository.Page) ([]*domain.Template, int, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM templates`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count templates: %w", err)
	}

	templates, err := r.query(ctx,
		`SELECT `+templateColumns+` FROM templates
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list templates: %w", err)
	}
	return templates, int(total), nil
}

func (r *TemplateRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Template, error) {
	templates, err := r.query(ctx,
		`SELECT `+templateColumns+` FROM templates
		WHERE  name ILIKE $1 OR subject ILIKE $1
		ORDER BY name ASC, id ASC
		LIMIT $2`,
		containsPattern(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search templates: %w", err)
	}
	return templates, nil
}

func (r *TemplateRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.Template, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []*domain.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func scanTemplate(row rowScanner) (*domain.Template, error) {
	var t domain.Template
	err := row.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isMissing(err) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("scan template: %w", err)
	}
	return &t, nil
}
