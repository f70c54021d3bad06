package ports

import (
	"fmt"
	"math"
	"strings"

	"frosty/internal/pkg/errs"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Direction is the sort order of a search.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc" and "desc" in any case. An empty value means Asc.
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(value))) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"direction",
			fmt.Errorf("%q is neither asc nor desc", value),
		)
	}
}

// SearchQuery describes one page of a gateway listing.
//
// Page is zero-based. Terms filters by name, case-insensitively. Sort names a
// field; each gateway decides which fields it can sort by and falls back to its
// default when Sort is empty.
//
// Example:
//
//	query, err := ports.NewSearchQuery(0, 10, "peas", "name", "desc")
//	if err != nil {
//	    return err // *errs.ValueIsOutOfRangeError or *errs.ValueIsInvalidError
//	}
//	page, err := gateway.FindAll(ctx, query)
type SearchQuery struct {
	page      int
	perPage   int
	terms     string
	sort      string
	direction Direction
}

// NewSearchQuery validates paging and sorting parameters. A zero perPage selects
// DefaultPerPage.
func NewSearchQuery(page, perPage int, terms, sort, direction string) (SearchQuery, error) {
	if perPage == 0 {
		perPage = DefaultPerPage
	}

	if page < 0 {
		return SearchQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, math.MaxInt32)
	}

	if perPage < 1 || perPage > MaxPerPage {
		return SearchQuery{}, errs.NewValueIsOutOfRangeError("perPage", perPage, 1, MaxPerPage)
	}

	dir, err := ParseDirection(direction)
	if err != nil {
		return SearchQuery{}, err
	}

	return SearchQuery{
		page:      page,
		perPage:   perPage,
		terms:     strings.TrimSpace(terms),
		sort:      strings.TrimSpace(sort),
		direction: dir,
	}, nil
}

// DefaultSearchQuery returns the first page with DefaultPerPage items.
func DefaultSearchQuery() SearchQuery {
	return SearchQuery{perPage: DefaultPerPage, direction: Asc}
}

func (q SearchQuery) Page() int {
	return q.page
}

func (q SearchQuery) PerPage() int {
	return q.perPage
}

func (q SearchQuery) Terms() string {
	return q.terms
}

func (q SearchQuery) Sort() string {
	return q.sort
}

func (q SearchQuery) Direction() Direction {
	return q.direction
}

// Offset is the number of rows skipped before the page starts.
func (q SearchQuery) Offset() int {
	return q.page * q.perPage
}
