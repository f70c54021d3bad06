package queries

import "context"

type GetCheckinOrderQueryHandler struct {
	reader CheckinOrderReader
}

func NewGetCheckinOrderQueryHandler(reader CheckinOrderReader) GetCheckinOrderQueryHandler {
	return GetCheckinOrderQueryHandler{reader: reader}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
func (h GetCheckinOrderQueryHandler) Handle(ctx context.Context, query GetCheckinOrderQuery) (CheckinOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckinOrderResponse{}, err
	}

	order, err := h.reader.FindByID(ctx, query.OrderID())
	if err != nil {
		return CheckinOrderResponse{}, err
	}

	return newCheckinOrderResponse(order), nil
}
