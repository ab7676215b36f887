package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ErlanBelekov/communication-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type pageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type searchQuery struct {
	Query string `form:"query" binding:"required,max=100"`
}

func pageRequest(ctx *gin.Context) usecase.PageRequest {
	page, _ := strconv.Atoi(ctx.Query("page"))
	size, _ := strconv.Atoi(ctx.Query("page_size"))
	return usecase.PageRequest{Page: page, PageSize: size}
}

func newPageResponse[E, T any](ctx *gin.Context, r usecase.PageResult[E], convert func(E) T) pageResponse[T] {
	resp := pageResponse[T]{Count: r.Total, Results: make([]T, len(r.Items))}
	for i, item := range r.Items {
		resp.Results[i] = convert(item)
	}
	if r.HasNext() {
		resp.Next = pageLink(ctx, r.Page+1, r.PageSize)
	}
	if r.HasPrevious() {
		resp.Previous = pageLink(ctx, r.Page-1, r.PageSize)
	}
	return resp
}

// pageLink rebuilds the request URL as an absolute link with page replaced.
// Other query parameters are kept.
func pageLink(ctx *gin.Context, page, size int) *string {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	switch proto := strings.ToLower(ctx.GetHeader("X-Forwarded-Proto")); proto {
	case "http", "https":
		scheme = proto
	}

	q := ctx.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(size))

	u := url.URL{Scheme: scheme, Host: ctx.Request.Host, Path: ctx.Request.URL.Path, RawQuery: q.Encode()}
	link := u.String()
	return &link
}
