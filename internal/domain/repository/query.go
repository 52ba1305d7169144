// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import "strings"

// FilterOp is a comparison operator carried by a list filter.
type FilterOp string

const (
	OpEq  FilterOp = "eq"
	OpNe  FilterOp = "ne"
	OpGt  FilterOp = "gt"
	OpGte FilterOp = "gte"
	OpLt  FilterOp = "lt"
	OpLte FilterOp = "lte"
)

// Filter is a single field comparison applied to a collection read.
type Filter struct {
	Field string
	Op    FilterOp
	Value string
}

// SortKey is one ordering criterion; Desc is set by a '-' prefix on the
// raw key.
type SortKey struct {
	Field string
	Desc  bool
}

// ListQuery describes a bounded, deterministic read against a collection:
// filters, free-text keyword, sorting, field projection and pagination.
type ListQuery struct {
	Filters []Filter
	Keyword string   // Case-insensitive substring match over searchable fields.
	Sort    []SortKey
	Fields  []string // Projection; empty means all fields.
	Page    int
	Limit   int
}

// DefaultLimit is the page size used when the caller does not specify one.
const DefaultLimit = 50

// Normalize clamps page and limit to sane values.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
}

// Offset returns the number of records to skip for the requested page.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseSortKeys splits a comma-separated sort expression into sort keys,
// honouring the '-' descending prefix.
func ParseSortKeys(raw string) []SortKey {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	keys := make([]SortKey, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			keys = append(keys, SortKey{Field: part[1:], Desc: true})
		} else {
			keys = append(keys, SortKey{Field: part})
		}
	}

	return keys
}

// ParseFields splits a comma-separated projection list.
func ParseFields(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			fields = append(fields, part)
		}
	}

	return fields
}

// Pagination is the metadata returned alongside every collection read.
// NumberOfPages is computed from the post-filter count, so it stays
// consistent with the filtered result set.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	Limit         int  `json:"limit"`
	NumberOfPages int  `json:"numberOfPages"`
	Next          *int `json:"next,omitempty"`
	Prev          *int `json:"prev,omitempty"`
}

// Paginate computes pagination metadata for a filtered total of documents.
func Paginate(total int64, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	numberOfPages := int((total + int64(limit) - 1) / int64(limit))

	p := Pagination{
		CurrentPage:   page,
		Limit:         limit,
		NumberOfPages: numberOfPages,
	}

	skip := (page - 1) * limit
	if int64(skip+limit) < total {
		next := page + 1
		p.Next = &next
	}
	if page > 1 {
		prev := page - 1
		p.Prev = &prev
	}

	return p
}
