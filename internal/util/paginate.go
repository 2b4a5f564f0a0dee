package util

import (
	"strconv"

	"github.com/fadilmartias/submission-admin/internal/response"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page is one slice of a larger, already filtered sequence.
type Page[T any] struct {
	Items       []T
	Total       int
	TotalPages  int
	CurrentPage int
	PageSize    int
	// offset of Items[0] in the full sequence
	start int
}

// Paginate slices items into the requested page. Out of range pages yield no
// items but keep Total and TotalPages. page < 1 and pageSize < 1 fall back
// to the defaults.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	p := Page[T]{
		Items:       []T{},
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}

	// guard against (page-1)*pageSize overflowing for absurd page numbers
	if page-1 > total/pageSize {
		p.start = total
		return p
	}
	start := (page - 1) * pageSize
	if start >= total {
		p.start = total
		return p
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	p.start = start
	p.Items = items[start:end:end]
	return p
}

func (p Page[T]) Pagination() *response.Pagination {
	pg := &response.Pagination{
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
		HasMore:     p.CurrentPage < p.TotalPages,
	}
	if len(p.Items) > 0 {
		pg.From = p.start + 1
		pg.To = p.start + len(p.Items)
	}
	return pg
}

// ParsePageParams reads raw page/pageSize query values, falling back to the
// defaults for anything missing, non-numeric or below 1.
func ParsePageParams(rawPage, rawPageSize string) (int, int) {
	return parsePositive(rawPage, DefaultPage), parsePositive(rawPageSize, DefaultPageSize)
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
