package ports

// Pagination is one page of a listing together with the total number of matches.
type Pagination[T any] struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	Total       int64 `json:"total"`
	Items       []T   `json:"items"`
}

// NewPagination builds a page for query.
func NewPagination[T any](query SearchQuery, total int64, items []T) Pagination[T] {
	if items == nil {
		items = []T{}
	}
	return Pagination[T]{
		CurrentPage: query.Page(),
		PerPage:     query.PerPage(),
		Total:       total,
		Items:       items,
	}
}

// MapPagination converts the items of p with fn, keeping the paging fields.
func MapPagination[T, R any](p Pagination[T], fn func(T) R) Pagination[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Pagination[R]{
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
		Items:       items,
	}
}
