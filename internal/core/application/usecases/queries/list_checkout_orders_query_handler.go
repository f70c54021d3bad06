package queries

import (
	"context"

	"frosty/internal/core/ports"
)

type ListCheckoutOrdersQueryHandler struct {
	reader CheckoutOrderReader
}

func NewListCheckoutOrdersQueryHandler(reader CheckoutOrderReader) ListCheckoutOrdersQueryHandler {
	return ListCheckoutOrdersQueryHandler{reader: reader}
}

func (h ListCheckoutOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListQuery,
) (ports.Pagination[CheckoutOrderResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Pagination[CheckoutOrderResponse]{}, err
	}

	page, err := h.reader.FindAll(ctx, query.Search())
	if err != nil {
		return ports.Pagination[CheckoutOrderResponse]{}, err
	}

	return ports.MapPagination(page, newCheckoutOrderResponse), nil
}
