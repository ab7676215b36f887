package postgres

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
)

const customerColumns = `id, name, email, created_at, updated_at`

type CustomerRepository struct {
	db DB
}

func NewCustomerRepository(db DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, name, email string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO customers (name, email) VALUES ($1, $2)
		RETURNING `+customerColumns,
		name, email,
	)
	return scanCustomer(row)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (r *CustomerRepository) Update(ctx context.Context, id, name, email string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE customers
		SET    name = $2, email = $3, updated_at = NOW()
		WHERE  id = $1
		RETURNING `+customerColumns,
		id, name, email,
	)
	return scanCustomer(row)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isMissing(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context, page repository.Page) ([]*domain.Customer, int, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	customers, err := r.query(ctx,
		`SELECT `+customerColumns+` FROM customers
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	return customers, int(total), nil
}

// Search matches query against name or email, case-insensitively.
func (r *CustomerRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Customer, error) {
	customers, err := r.query(ctx,
		`SELECT `+customerColumns+` FROM customers
		WHERE  name ILIKE $1 OR email ILIKE $1
		ORDER BY name ASC, id ASC
		LIMIT $2`,
		containsPattern(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.Customer, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []*domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isMissing(err) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return &c, nil
}
