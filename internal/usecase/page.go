package usecase

import "github.com/ErlanBelekov/communication-service/internal/repository"

const (
	defaultPageSize = 10
	maxPageSize     = 100
	searchLimit     = 50
)

type PageRequest struct {
	Page     int
	PageSize int
}

// normalize clamps out-of-range values instead of rejecting them.
func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

func (p PageRequest) toRepo() repository.Page {
	return repository.Page{Offset: (p.Page - 1) * p.PageSize, Limit: p.PageSize}
}

type PageResult[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

func (r PageResult[T]) HasNext() bool     { return r.Page*r.PageSize < r.Total }
func (r PageResult[T]) HasPrevious() bool { return r.Page > 1 }
