package queries

import "context"

type GetCheckoutOrderQueryHandler struct {
	reader CheckoutOrderReader
}

func NewGetCheckoutOrderQueryHandler(reader CheckoutOrderReader) GetCheckoutOrderQueryHandler {
	return GetCheckoutOrderQueryHandler{reader: reader}
}

func (h GetCheckoutOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCheckoutOrderQuery,
) (CheckoutOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckoutOrderResponse{}, err
	}

	order, err := h.reader.FindByID(ctx, query.OrderID())
	if err != nil {
		return CheckoutOrderResponse{}, err
	}

	return newCheckoutOrderResponse(order), nil
}
