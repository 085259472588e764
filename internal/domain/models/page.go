package models

import (
	"math"

	"github.com/Temutjin2k/ride-analytics/pkg/validator"
)

const MaxPageSize = 1000

// Page selects a window of a record listing. Pages start at 1.
type Page struct {
	Page     int
	PageSize int
}

func (p Page) Validate(v *validator.Validator) {
	v.Check(p.Page > 0, "page", "must be greater than zero")
	v.Check(p.Page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(p.PageSize > 0, "page_size", "must be greater than zero")
	v.Check(p.PageSize <= MaxPageSize, "page_size", "must be a maximum of 1000")
}

func (p Page) Limit() int {
	return p.PageSize
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	PageSize     int `json:"page_size"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	TotalRecords int `json:"total_records"`
}

// CalculateMetadata rounds the last page up, so 12 records at 5 per page end on page 3.
func CalculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{CurrentPage: page, PageSize: pageSize}
	}
	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     int(math.Ceil(float64(totalRecords) / float64(pageSize))),
		TotalRecords: totalRecords,
	}
}

// Paginate trims a records or cancellations listing to one page. Other kinds are small
// and stay whole. RowCount keeps counting the full result.
func (r *QueryResult) Paginate(p Page) Metadata {
	switch r.Kind {
	case KindRecords:
		r.Records = window(r.Records, p)
	case KindCancellations:
		r.Cancellations = window(r.Cancellations, p)
	default:
		return CalculateMetadata(r.RowCount, 1, max(r.RowCount, 1))
	}
	return CalculateMetadata(r.RowCount, p.Page, p.PageSize)
}

func window[T any](rows []T, p Page) []T {
	start := min(p.Offset(), len(rows))
	end := min(start+p.Limit(), len(rows))
	return rows[start:end]
}
