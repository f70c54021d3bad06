package queries

import (
	"context"

	"frosty/internal/core/ports"
)

type ListProductsQueryHandler struct {
	reader ProductReader
}

func NewListProductsQueryHandler(reader ProductReader) ListProductsQueryHandler {
	return ListProductsQueryHandler{reader: reader}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListQuery) (ports.Pagination[ProductResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Pagination[ProductResponse]{}, err
	}

	page, err := h.reader.FindAll(ctx, query.Search())
	if err != nil {
		return ports.Pagination[ProductResponse]{}, err
	}

	return ports.MapPagination(page, newProductResponse), nil
}
