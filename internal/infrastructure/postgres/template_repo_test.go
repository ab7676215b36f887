package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/repository"
)

var (
	templateCols = []string{"id", "name", "subject", "body", "created_at", "updated_at"}
	customerCols = []string{"id", "name", "email", "created_at", "updated_at"}
)

func TestTemplateRepository_CreateAndFind(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	in := repository.TemplateInput{Name: "welcome", Subject: "Hi {{Customer.Name}}", Body: "<p>Hello</p>"}

	mock.ExpectQuery(`INSERT INTO templates`).
		WithArgs(in.Name, in.Subject, in.Body).
		WillReturnRows(pgxmock.NewRows(templateCols).
			AddRow("tpl-1", in.Name, in.Subject, in.Body, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM templates WHERE id = \$1`).
		WithArgs("tpl-1").
		WillReturnRows(pgxmock.NewRows(templateCols).
			AddRow("tpl-1", in.Name, in.Subject, in.Body, now, now))

	repo := NewTemplateRepository(mock)

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "tpl-1", created.ID)

	found, err := repo.FindByID(context.Background(), "tpl-1")
	require.NoError(t, err)
	assert.Equal(t, in.Body, found.Body)
}

func TestTemplateRepository_Update_Missing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`UPDATE templates`).
		WithArgs("tpl-9", "n", "s", "b").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewTemplateRepository(mock).Update(context.Background(), "tpl-9",
		repository.TemplateInput{Name: "n", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestCustomerRepository_Search(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(`WHERE  name ILIKE \$1 OR email ILIKE \$1`).
		WithArgs("%ali%", 50).
		WillReturnRows(pgxmock.NewRows(customerCols).
			AddRow("c-1", "Alice", "alice@example.com", now, now))

	customers, err := NewCustomerRepository(mock).Search(context.Background(), "ali", 50)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Alice", customers[0].Name)
}

func TestCustomerRepository_Delete_Missing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM customers`).
		WithArgs("c-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewCustomerRepository(mock).Delete(context.Background(), "c-1")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
