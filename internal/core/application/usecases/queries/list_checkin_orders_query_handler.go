package queries

import (
	"context"

	"frosty/internal/core/ports"
)

type ListCheckinOrdersQueryHandler struct {
	reader CheckinOrderReader
}

func NewListCheckinOrdersQueryHandler(reader CheckinOrderReader) ListCheckinOrdersQueryHandler {
	return ListCheckinOrdersQueryHandler{reader: reader}
}

func (h ListCheckinOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListQuery,
) (ports.Pagination[CheckinOrderResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Pagination[CheckinOrderResponse]{}, err
	}

	page, err := h.reader.FindAll(ctx, query.Search())
	if err != nil {
		return ports.Pagination[CheckinOrderResponse]{}, err
	}

	return ports.MapPagination(page, newCheckinOrderResponse), nil
}
