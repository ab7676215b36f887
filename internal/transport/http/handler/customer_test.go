package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/transport/http/handler"
	"github.com/ErlanBelekov/communication-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeCustomerUsecase struct {
	create func(ctx context.Context, name, email string) (*domain.Customer, error)
	update func(ctx context.Context, id, name, email string) (*domain.Customer, error)
	delete func(ctx context.Context, id string) error
}

func (f *fakeCustomerUsecase) Create(ctx context.Context, name, email string) (*domain.Customer, error) {
	return f.create(ctx, name, email)
}

func (f *fakeCustomerUsecase) Get(_ context.Context, id string) (*domain.Customer, error) {
	return &domain.Customer{ID: id}, nil
}

func (f *fakeCustomerUsecase) Update(ctx context.Context, id, name, email string) (*domain.Customer, error) {
	return f.update(ctx, id, name, email)
}

func (f *fakeCustomerUsecase) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

func (f *fakeCustomerUsecase) List(_ context.Context, req usecase.PageRequest) (usecase.PageResult[*domain.Customer], error) {
	return usecase.PageResult[*domain.Customer]{Page: req.Page, PageSize: req.PageSize}, nil
}

func (f *fakeCustomerUsecase) Search(_ context.Context, _ string) ([]*domain.Customer, error) {
	return nil, nil
}

func newCustomerEngine(uc *fakeCustomerUsecase) *gin.Engine {
	h := handler.NewCustomerHandler(uc, discardLogger())

	r := gin.New()
	r.POST("/customers", h.Create)
	r.PUT("/customers/:id", h.Update)
	r.DELETE("/customers/:id", h.Delete)
	return r
}

func TestCreateCustomer_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"name too short", `{"name":"J","email":"j@example.com"}`},
		{"bad email", `{"name":"Jane","email":"jane"}`},
		{"missing email", `{"name":"Jane"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(newCustomerEngine(&fakeCustomerUsecase{}), "/customers", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestCreateCustomer_Success_Returns201(t *testing.T) {
	uc := &fakeCustomerUsecase{
		create: func(_ context.Context, name, email string) (*domain.Customer, error) {
			return &domain.Customer{ID: "c-1", Name: name, Email: email}, nil
		},
	}
	w := postJSON(newCustomerEngine(uc), "/customers", `{"name":"Jane","email":"jane@example.com"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"id":"c-1"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUpdateCustomer_NotFound_Returns404(t *testing.T) {
	uc := &fakeCustomerUsecase{
		update: func(_ context.Context, _, _, _ string) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/customers/c-9", strings.NewReader(`{"name":"Jane","email":"jane@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	newCustomerEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteCustomer_Returns204(t *testing.T) {
	var got string
	uc := &fakeCustomerUsecase{
		delete: func(_ context.Context, id string) error {
			got = id
			return nil
		},
	}
	w := httptest.NewRecorder()
	newCustomerEngine(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/customers/c-1", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if got != "c-1" {
		t.Errorf("deleted %q, want c-1", got)
	}
}
