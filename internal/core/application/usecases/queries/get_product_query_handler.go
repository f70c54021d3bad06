package queries

import "context"

type GetProductQueryHandler struct {
	reader ProductReader
}

func NewGetProductQueryHandler(reader ProductReader) GetProductQueryHandler {
	return GetProductQueryHandler{reader: reader}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	p, err := h.reader.FindByID(ctx, query.ProductID())
	if err != nil {
		return ProductResponse{}, err
	}

	return newProductResponse(p), nil
}
