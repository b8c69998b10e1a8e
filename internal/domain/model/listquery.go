package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSortColumn is returned when a listing is requested with a sort
	// column outside the fixed SortColumn enumeration.
	ErrInvalidSortColumn = errors.New("invalid sort column")

	// ErrInvalidSortOrder is returned for a sort direction other than asc or desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// SortColumn identifies a column the password listing can be ordered by.
type SortColumn string

const (
	SortBySeedText  SortColumn = "seed_text"
	SortByCreatedAt SortColumn = "created_at"
)

// Valid reports whether c is one of the known sort columns.
func (c SortColumn) Valid() bool {
	switch c {
	case SortBySeedText, SortByCreatedAt:
		return true
	}
	return false
}

// ParseSortColumn converts user-supplied text to a SortColumn. The empty
// string selects SortByCreatedAt.
func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return SortByCreatedAt, nil
	}
	c := SortColumn(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortColumn, s)
	}
	return c, nil
}

// ListQuery holds the sort and filter parameters for a password listing.
// An empty Search matches every record.
type ListQuery struct {
	OrderBy   SortColumn
	Ascending bool
	Search    string
}

// DefaultListQuery returns the listing shown when no parameters are given:
// newest first, unfiltered.
func DefaultListQuery() ListQuery {
	return ListQuery{OrderBy: SortByCreatedAt, Ascending: false}
}

// ParseListQuery builds a ListQuery from the textual sort column, direction
// ("asc", "desc" or empty for descending) and search term used by the
// driving adapters.
func ParseListQuery(sort, order, search string) (ListQuery, error) {
	column, err := ParseSortColumn(sort)
	if err != nil {
		return ListQuery{}, err
	}

	var ascending bool
	switch order {
	case "asc":
		ascending = true
	case "desc", "":
	default:
		return ListQuery{}, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	return ListQuery{OrderBy: column, Ascending: ascending, Search: search}, nil
}

// Order returns the textual direction of q, the inverse of ParseListQuery.
func (q ListQuery) Order() string {
	if q.Ascending {
		return "asc"
	}
	return "desc"
}
