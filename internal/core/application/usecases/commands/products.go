package commands

import (
	"context"
	"slices"

	"frosty/internal/core/domain/model/product"
	"frosty/internal/core/ports"
	"frosty/internal/pkg/errs"
)

// requireProducts fails with *errs.ObjectNotFoundError naming the first referenced
// product that is not stored.
func requireProducts(ctx context.Context, gateway ports.ProductGateway, rawIDs []string) error {
	unique := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if !slices.Contains(unique, raw) {
			unique = append(unique, raw)
		}
	}

	ids, err := product.IDsFrom(unique)
	if err != nil {
		return err
	}

	found, err := gateway.ExistsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if !slices.ContainsFunc(found, id.IsEqual) {
			return errs.NewObjectNotFoundError(product.AggregateName, id.String())
		}
	}
	return nil
}
