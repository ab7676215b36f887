package postgres

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
	"github.com/jackc/pgerrcode"
)

const userColumns = `id, email, password_hash, created_at, updated_at`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2)
		RETURNING `+userColumns,
		email, passwordHash,
	)
	u, err := scanUser(row)
	if err != nil {
		if hasCode(err, pgerrcode.UniqueViolation) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, id, email, passwordHash string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users
		SET    email = $2, password_hash = $3, updated_at = NOW()
		WHERE  id = $1
		RETURNING `+userColumns,
		id, email, passwordHash,
	)
	u, err := scanUser(row)
	if err != nil {
		if hasCode(err, pgerrcode.UniqueViolation) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isMissing(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, page repository.Page) ([]*domain.User, int, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users, err := r.query(ctx,
		`SELECT `+userColumns+` FROM users
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, int(total), nil
}

func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	users, err := r.query(ctx,
		`SELECT `+userColumns+` FROM users
		WHERE  email ILIKE $1
		ORDER BY email ASC
		LIMIT $2`,
		containsPattern(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isMissing(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
