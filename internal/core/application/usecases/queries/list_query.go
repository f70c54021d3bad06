package queries

import (
	"errors"

	"frosty/internal/core/ports"
	"frosty/internal/pkg/guard"
)

var ErrListQueryIsNotConstructed = errors.New("ListQuery must be created via NewListQuery constructor")

// ListQuery requests one page of aggregates. The same query type serves check-in
// orders, checkout orders and products; the sort keys each accepts differ.
//
// Example:
//
//	query, err := NewListQuery(0, 20, "ice", "createdAt", "desc")
type ListQuery struct {
	search ports.SearchQuery

	guard guard.ConstructorGuard
}

// NewListQuery validates the paging parameters. A perPage of 0 selects the default page size.
func NewListQuery(page, perPage int, terms, sort, direction string) (ListQuery, error) {
	search, err := ports.NewSearchQuery(page, perPage, terms, sort, direction)
	if err != nil {
		return ListQuery{}, err
	}

	return ListQuery{search: search, guard: guard.NewConstructorGuard()}, nil
}

func (q ListQuery) Validate() error {
	return q.guard.Validate(ErrListQueryIsNotConstructed)
}

func (q ListQuery) Search() ports.SearchQuery {
	return q.search
}
