package utils

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

const MaxPageSize = 100

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// Pagination is the metadata block returned next to every paged list.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// GetPaginationParams extracts pagination parameters from request
func GetPaginationParams(c echo.Context, defaultPageSize int) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	return NewPaginationParams(page, pageSize, defaultPageSize)
}

// NewPaginationParams clamps page to >= 1 and page size to [1, MaxPageSize].
// Page is also capped so the offset stays within int32, the range a
// Firestore query offset accepts.
func NewPaginationParams(page, pageSize, defaultPageSize int) PaginationParams {
	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	if maxPage := math.MaxInt32/pageSize + 1; page > maxPage {
		page = maxPage
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

func (p PaginationParams) Meta(total int64) Pagination {
	totalPages := int(total) / p.PageSize
	if int(total)%p.PageSize > 0 {
		totalPages++
	}

	return Pagination{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     p.Page < totalPages,
		HasPrev:     p.Page > 1,
	}
}
