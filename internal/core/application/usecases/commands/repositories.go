// Package commands contains the operations that change stored aggregates. Every
// handler validates its command, opens a unit of work, applies one aggregate
// operation and commits; any failure rolls the transaction back.
package commands

import (
	"context"

	"frosty/internal/core/ports"
)

// Unit of Work interfaces narrowed to the gateways each group of commands needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CheckinOrderGatewayFactory interface {
		CheckinOrderGateway() ports.CheckinOrderGateway
	}

	CheckoutOrderGatewayFactory interface {
		CheckoutOrderGateway() ports.CheckoutOrderGateway
	}

	ProductGatewayFactory interface {
		ProductGateway() ports.ProductGateway
	}

	// CheckinUoW serves check-in order commands. Products are read to verify the
	// items reference stored products.
	CheckinUoW interface {
		TxManager
		CheckinOrderGatewayFactory
		ProductGatewayFactory
	}

	CheckinUoWFactory interface {
		Create() CheckinUoW
	}

	// CheckoutUoW serves checkout order commands.
	CheckoutUoW interface {
		TxManager
		CheckoutOrderGatewayFactory
		ProductGatewayFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// ProductUoW serves product commands.
	ProductUoW interface {
		TxManager
		ProductGatewayFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
