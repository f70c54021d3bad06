package commands_test

import (
	"testing"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutItemsFixture() []commands.CheckoutItem {
	return []commands.CheckoutItem{
		{Price: decimal.RequireFromString("10.75"), Quantity: 2, ProductID: "p-1"},
	}
}

func storedCheckoutOrder(t *testing.T) *checkout.Order {
	t.Helper()

	supplier := newSupplier()
	item, err := checkout.NewOrderItem(supplier, decimal.RequireFromString("10.75"), 2, "p-1")
	require.NoError(t, err)

	amount := decimal.RequireFromString("21.50")
	order, err := checkout.NewOrder(supplier, &amount, []checkout.OrderItem{item}, true, checkout.Pending, nil)
	require.NoError(t, err)
	return order
}

func TestNewCreateCheckoutOrderCommand_Status(t *testing.T) {
	t.Run("names are parsed case-insensitively", func(t *testing.T) {
		cmd, err := commands.NewCreateCheckoutOrderCommand(nil, nil, false, "completed", nil)
		require.NoError(t, err)
		assert.Equal(t, checkout.Completed, cmd.Status())
	})

	t.Run("an empty status is left for validation", func(t *testing.T) {
		cmd, err := commands.NewCreateCheckoutOrderCommand(nil, nil, true, "", nil)
		require.NoError(t, err)
		assert.Equal(t, checkout.Unknown, cmd.Status())
	})

	t.Run("an unknown name is rejected", func(t *testing.T) {
		_, err := commands.NewCreateCheckoutOrderCommand(nil, nil, true, "SHIPPED", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCloseCheckoutOrderCommand_JoinsErrors(t *testing.T) {
	_, err := commands.NewCloseCheckoutOrderCommand("", "SHIPPED")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateCheckoutOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	amount := decimal.RequireFromString("21.50")
	customer := "Jane Doe"
	cmd, err := commands.NewCreateCheckoutOrderCommand(&amount, checkoutItemsFixture(), true, "PENDING", &customer)
	require.NoError(t, err)

	ids := productIDs(t, "p-1")
	products := new(MockProductGateway)
	orders := new(MockCheckoutOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckoutUoWFactory)

	var created *checkout.Order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProductGateway").Return(products).Once(),
		products.On("ExistsByIDs", ctx, ids).Return(ids, nil).Once(),
		mockUoW.On("CheckoutOrderGateway").Return(orders).Once(),
		orders.On("Create", ctx, mock.AnythingOfType("*checkout.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*checkout.Order) }).
			Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateCheckoutOrderCommandHandler(mockFactory, newSupplier())

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, id.IsEqual(created.ID()))
	assert.Equal(t, checkout.Pending, created.Status())
	assert.True(t, created.IsOpen())
	assert.Equal(t, &customer, created.CustomerName())
	mockUoW.AssertExpectations(t)
	products.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateCheckoutOrderCommandHandler_Handle_ReportsEveryViolation(t *testing.T) {
	zero := decimal.Zero
	blank := "  "
	cmd, err := commands.NewCreateCheckoutOrderCommand(&zero, []commands.CheckoutItem{}, true, "COMPLETED", &blank)
	require.NoError(t, err)

	mockFactory := new(MockCheckoutUoWFactory)
	handler := commands.NewCreateCheckoutOrderCommandHandler(mockFactory, newSupplier())

	_, err = handler.Handle(t.Context(), cmd)

	requireValidationMessages(t, err,
		"'items' should not be empty",
		"'amount' should be greater than zero",
		"'customerName' should not be empty",
		"'status' should be 'PENDING' when is open",
	)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreateCheckoutOrderCommandHandler_Handle_MissingStatus(t *testing.T) {
	amount := decimal.RequireFromString("21.50")
	cmd, err := commands.NewCreateCheckoutOrderCommand(&amount, checkoutItemsFixture(), false, "", nil)
	require.NoError(t, err)

	handler := commands.NewCreateCheckoutOrderCommandHandler(new(MockCheckoutUoWFactory), newSupplier())

	_, err = handler.Handle(t.Context(), cmd)

	requireValidationMessages(t, err, "'status' should not be null")
}

func TestCloseCheckoutOrderCommandHandler_Handle_Completed(t *testing.T) {
	ctx := t.Context()
	order := storedCheckoutOrder(t)
	cmd, err := commands.NewCloseCheckoutOrderCommand(order.ID().String(), "COMPLETED")
	require.NoError(t, err)

	orders := new(MockCheckoutOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckoutOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		orders.On("Update", ctx, order).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCloseCheckoutOrderCommandHandler(mockFactory, newSupplier())

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.False(t, order.IsOpen())
	assert.Equal(t, checkout.Completed, order.Status())
	assert.NotNil(t, order.DeletedAt())
	mockUoW.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCloseCheckoutOrderCommandHandler_Handle_PendingIsRejected(t *testing.T) {
	ctx := t.Context()
	order := storedCheckoutOrder(t)
	cmd, err := commands.NewCloseCheckoutOrderCommand(order.ID().String(), "PENDING")
	require.NoError(t, err)

	orders := new(MockCheckoutOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckoutOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCloseCheckoutOrderCommandHandler(mockFactory, newSupplier())

	err = handler.Handle(ctx, cmd)

	requireValidationMessages(t, err, "'status' should be 'COMPLETED or ERROR' when is not open")
	assert.True(t, order.IsOpen())
	assert.Nil(t, order.DeletedAt())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOpenCheckoutOrderCommandHandler_Handle_ReopensAsPending(t *testing.T) {
	ctx := t.Context()
	order := storedCheckoutOrder(t)
	require.NoError(t, order.Close(newSupplier(), checkout.Error))

	cmd, err := commands.NewOpenCheckoutOrderCommand(order.ID().String())
	require.NoError(t, err)

	orders := new(MockCheckoutOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckoutOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		orders.On("Update", ctx, order).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewOpenCheckoutOrderCommandHandler(mockFactory, newSupplier())

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.True(t, order.IsOpen())
	assert.Equal(t, checkout.Pending, order.Status())
	assert.Nil(t, order.DeletedAt())
}

func TestUpdateCheckoutOrderCommandHandler_Handle_ClosesWithError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	order := storedCheckoutOrder(t)
	amount := decimal.RequireFromString("10.75")
	cmd, err := commands.NewUpdateCheckoutOrderCommand(
		order.ID().String(),
		&amount,
		[]commands.CheckoutItem{{Price: amount, Quantity: 1, ProductID: "p-3"}},
		false,
		"ERROR",
	)
	require.NoError(t, err)

	ids := productIDs(t, "p-3")
	products := new(MockProductGateway)
	orders := new(MockCheckoutOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckoutOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		mockUoW.On("ProductGateway").Return(products).Once(),
		products.On("ExistsByIDs", ctx, ids).Return(ids, nil).Once(),
		orders.On("Update", ctx, order).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateCheckoutOrderCommandHandler(mockFactory, newSupplier())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, order.IsOpen())
	assert.Equal(t, checkout.Error, order.Status())
	assert.True(t, amount.Equal(*order.Amount()))
	assert.Len(t, order.Items(), 1)
	mockUoW.AssertExpectations(t)
	orders.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestUpdateCheckoutOrderCommandHandler_Handle_InvalidUpdateIsNotStored(t *testing.T) {
	ctx := t.Context()
	order := storedCheckoutOrder(t)
	cmd, err := commands.NewUpdateCheckoutOrderCommand(order.ID().String(), nil, checkoutItemsFixture(), true, "")
	require.NoError(t, err)

	orders := new(MockCheckoutOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckoutOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateCheckoutOrderCommandHandler(mockFactory, newSupplier())

	err = handler.Handle(ctx, cmd)

	requireValidationMessages(t, err, "'amount' should not be null")
	require.NotNil(t, order.Amount())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteCheckoutOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteCheckoutOrderCommand("order-1")
	require.NoError(t, err)

	orders := new(MockCheckoutOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckoutUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckoutOrderGateway").Return(orders).Once(),
		orders.On("DeleteByID", ctx, cmd.OrderID()).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteCheckoutOrderCommandHandler(mockFactory)

	require.NoError(t, handler.Handle(ctx, cmd))
	mockUoW.AssertExpectations(t)
}
