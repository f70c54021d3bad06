package commands_test

import (
	"errors"
	"testing"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/product"
	"frosty/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkinItemsFixture() []commands.CheckinItem {
	return []commands.CheckinItem{
		{Name: "Vanilla ice cream", Price: decimal.RequireFromString("3.50"), Quantity: 3, ProductID: "p-1"},
		{Name: "Frozen berries", Price: decimal.RequireFromString("5.50"), Quantity: 2, ProductID: "p-2"},
		{Name: "Vanilla ice cream", Price: decimal.RequireFromString("3.50"), Quantity: 1, ProductID: "p-1"},
	}
}

func storedCheckinOrder(t *testing.T) *checkin.Order {
	t.Helper()

	supplier := newSupplier()
	item, err := checkin.NewOrderItem(supplier, "Sorbet", decimal.NewFromInt(4), 1, "p-9")
	require.NoError(t, err)

	order, err := checkin.NewOrder(supplier, []checkin.OrderItem{item}, false)
	require.NoError(t, err)
	return order
}

func TestCreateCheckinOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCheckinOrderCommand(checkinItemsFixture(), false)
	require.NoError(t, err)

	ids := productIDs(t, "p-1", "p-2")
	products := new(MockProductGateway)
	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	var created *checkin.Order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProductGateway").Return(products).Once(),
		products.On("ExistsByIDs", ctx, ids).Return(ids, nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("Create", ctx, mock.AnythingOfType("*checkin.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*checkin.Order) }).
			Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateCheckinOrderCommandHandler(mockFactory, newSupplier())

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, id.IsEqual(created.ID()))
	assert.True(t, decimal.RequireFromString("25.00").Equal(created.Total()))
	assert.Len(t, created.Items(), 3)
	assert.Nil(t, created.DeletedAt())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	products.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateCheckinOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockCheckinUoWFactory)
	handler := commands.NewCreateCheckinOrderCommandHandler(mockFactory, newSupplier())

	_, err := handler.Handle(t.Context(), commands.CreateCheckinOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateCheckinOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreateCheckinOrderCommandHandler_Handle_ValidationFailsBeforeStorage(t *testing.T) {
	cmd, err := commands.NewCreateCheckinOrderCommand([]commands.CheckinItem{
		{Name: "ab", Price: decimal.NewFromInt(1), Quantity: 1, ProductID: "p-1"},
		{Name: "Valid name", Price: decimal.NewFromInt(1), Quantity: 0, ProductID: "p-1"},
	}, false)
	require.NoError(t, err)

	mockFactory := new(MockCheckinUoWFactory)
	handler := commands.NewCreateCheckinOrderCommandHandler(mockFactory, newSupplier())

	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValidationFailed)
	requireValidationMessages(t, err,
		"'item[0].name' must be between 3 and 255 characters",
		"'item[1].quantity' should be greater than or equal to zero",
	)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreateCheckinOrderCommandHandler_Handle_NilItems(t *testing.T) {
	cmd, err := commands.NewCreateCheckinOrderCommand(nil, false)
	require.NoError(t, err)

	handler := commands.NewCreateCheckinOrderCommandHandler(new(MockCheckinUoWFactory), newSupplier())

	_, err = handler.Handle(t.Context(), cmd)

	requireValidationMessages(t, err, "'items' should not be null")
}

func TestCreateCheckinOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCheckinOrderCommand(checkinItemsFixture(), false)
	require.NoError(t, err)

	products := new(MockProductGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProductGateway").Return(products).Once(),
		products.On("ExistsByIDs", ctx, productIDs(t, "p-1", "p-2")).Return(productIDs(t, "p-1"), nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateCheckinOrderCommandHandler(mockFactory, newSupplier())

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, product.AggregateName, notFound.Aggregate)
	assert.Equal(t, "p-2", notFound.ID)
	mockUoW.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCreateCheckinOrderCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCheckinOrderCommand(checkinItemsFixture(), false)
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateCheckinOrderCommandHandler(mockFactory, newSupplier())

	_, err = handler.Handle(ctx, cmd)

	assert.Equal(t, expectedError, err)
	mockUoW.AssertNotCalled(t, "Rollback", ctx)
}

func TestCreateCheckinOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCheckinOrderCommand(checkinItemsFixture(), true)
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	ids := productIDs(t, "p-1", "p-2")
	products := new(MockProductGateway)
	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProductGateway").Return(products).Once(),
		products.On("ExistsByIDs", ctx, ids).Return(ids, nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("Create", ctx, mock.AnythingOfType("*checkin.Order")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateCheckinOrderCommandHandler(mockFactory, newSupplier())

	_, err = handler.Handle(ctx, cmd)

	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
}

func TestUpdateCheckinOrderCommandHandler_Handle_ReplacesItems(t *testing.T) {
	// Arrange
	ctx := t.Context()
	order := storedCheckinOrder(t)
	before := order.UpdatedAt()

	cmd, err := commands.NewUpdateCheckinOrderCommand(order.ID().String(), checkinItemsFixture()[:2], false)
	require.NoError(t, err)

	ids := productIDs(t, "p-1", "p-2")
	products := new(MockProductGateway)
	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		mockUoW.On("ProductGateway").Return(products).Once(),
		products.On("ExistsByIDs", ctx, ids).Return(ids, nil).Once(),
		orders.On("Update", ctx, order).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateCheckinOrderCommandHandler(mockFactory, newSupplier())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Len(t, order.Items(), 2)
	assert.True(t, decimal.RequireFromString("21.50").Equal(order.Total()))
	assert.True(t, order.UpdatedAt().After(before))
	mockUoW.AssertExpectations(t)
	orders.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestUpdateCheckinOrderCommandHandler_Handle_InvalidUpdateIsNotStored(t *testing.T) {
	ctx := t.Context()
	order := storedCheckinOrder(t)
	itemsBefore := order.Items()

	cmd, err := commands.NewUpdateCheckinOrderCommand(order.ID().String(), []commands.CheckinItem{}, true)
	require.NoError(t, err)

	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateCheckinOrderCommandHandler(mockFactory, newSupplier())

	err = handler.Handle(ctx, cmd)

	requireValidationMessages(t, err, "'items' should not be empty")
	assert.Equal(t, itemsBefore, order.Items())
	assert.False(t, order.IsCanceled())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCheckinOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCheckinOrderCommand("missing", checkinItemsFixture(), false)
	require.NoError(t, err)

	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, cmd.OrderID()).
			Return(nil, errs.NewObjectNotFoundError(checkin.AggregateName, "missing")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateCheckinOrderCommandHandler(mockFactory, newSupplier())

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
}

func TestCancelCheckinOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := storedCheckinOrder(t)
	cmd, err := commands.NewCancelCheckinOrderCommand(order.ID().String())
	require.NoError(t, err)

	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		orders.On("Update", ctx, order).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCancelCheckinOrderCommandHandler(mockFactory, newSupplier())

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, order.IsCanceled())
	assert.NotNil(t, order.DeletedAt())
	assert.True(t, order.UpdatedAt().After(order.CreatedAt()))
	mockUoW.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCancelCheckinOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	order := storedCheckinOrder(t)
	cmd, err := commands.NewCancelCheckinOrderCommand(order.ID().String())
	require.NoError(t, err)

	expectedError := errors.New("update failed")
	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("FindByID", ctx, order.ID()).Return(order, nil).Once(),
		orders.On("Update", ctx, order).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCancelCheckinOrderCommandHandler(mockFactory, newSupplier())

	err = handler.Handle(ctx, cmd)

	assert.Equal(t, expectedError, err)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteCheckinOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteCheckinOrderCommand("order-1")
	require.NoError(t, err)

	orders := new(MockCheckinOrderGateway)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCheckinUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CheckinOrderGateway").Return(orders).Once(),
		orders.On("DeleteByID", ctx, cmd.OrderID()).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteCheckinOrderCommandHandler(mockFactory)

	require.NoError(t, handler.Handle(ctx, cmd))
	mockUoW.AssertExpectations(t)
	orders.AssertExpectations(t)
}
