package commands_test

import (
	"context"
	"time"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/domain/model/checkin"
	"frosty/internal/core/domain/model/checkout"
	"frosty/internal/core/domain/model/product"
	"frosty/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockCheckinOrderGateway struct {
	mock.Mock
}

func (m *MockCheckinOrderGateway) Create(ctx context.Context, order *checkin.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockCheckinOrderGateway) Update(ctx context.Context, order *checkin.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockCheckinOrderGateway) FindByID(ctx context.Context, id checkin.OrderID) (*checkin.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*checkin.Order)
	return order, args.Error(1)
}

func (m *MockCheckinOrderGateway) DeleteByID(ctx context.Context, id checkin.OrderID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCheckinOrderGateway) FindAll(
	ctx context.Context,
	query ports.SearchQuery,
) (ports.Pagination[*checkin.Order], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(ports.Pagination[*checkin.Order]), args.Error(1)
}

func (m *MockCheckinOrderGateway) ExistsByIDs(ctx context.Context, ids []checkin.OrderID) ([]checkin.OrderID, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]checkin.OrderID)
	return found, args.Error(1)
}

type MockCheckoutOrderGateway struct {
	mock.Mock
}

func (m *MockCheckoutOrderGateway) Create(ctx context.Context, order *checkout.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockCheckoutOrderGateway) Update(ctx context.Context, order *checkout.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockCheckoutOrderGateway) FindByID(ctx context.Context, id checkout.OrderID) (*checkout.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*checkout.Order)
	return order, args.Error(1)
}

func (m *MockCheckoutOrderGateway) DeleteByID(ctx context.Context, id checkout.OrderID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCheckoutOrderGateway) FindAll(
	ctx context.Context,
	query ports.SearchQuery,
) (ports.Pagination[*checkout.Order], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(ports.Pagination[*checkout.Order]), args.Error(1)
}

func (m *MockCheckoutOrderGateway) ExistsByIDs(ctx context.Context, ids []checkout.OrderID) ([]checkout.OrderID, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]checkout.OrderID)
	return found, args.Error(1)
}

type MockProductGateway struct {
	mock.Mock
}

func (m *MockProductGateway) Create(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductGateway) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductGateway) FindByID(ctx context.Context, id product.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductGateway) DeleteByID(ctx context.Context, id product.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductGateway) FindAll(
	ctx context.Context,
	query ports.SearchQuery,
) (ports.Pagination[*product.Product], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(ports.Pagination[*product.Product]), args.Error(1)
}

func (m *MockProductGateway) ExistsByIDs(ctx context.Context, ids []product.ID) ([]product.ID, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]product.ID)
	return found, args.Error(1)
}

func (m *MockProductGateway) FindActiveExpiredAt(ctx context.Context, at time.Time, limit int) ([]*product.Product, error) {
	args := m.Called(ctx, at, limit)
	found, _ := args.Get(0).([]*product.Product)
	return found, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CheckinOrderGateway() ports.CheckinOrderGateway {
	return m.Called().Get(0).(ports.CheckinOrderGateway)
}

func (m *MockUoW) CheckoutOrderGateway() ports.CheckoutOrderGateway {
	return m.Called().Get(0).(ports.CheckoutOrderGateway)
}

func (m *MockUoW) ProductGateway() ports.ProductGateway {
	return m.Called().Get(0).(ports.ProductGateway)
}

type MockCheckinUoWFactory struct {
	mock.Mock
}

func (m *MockCheckinUoWFactory) Create() commands.CheckinUoW {
	return m.Called().Get(0).(commands.CheckinUoW)
}

type MockCheckoutUoWFactory struct {
	mock.Mock
}

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockProductUoWFactory struct {
	mock.Mock
}

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	return m.Called().Get(0).(commands.ProductUoW)
}
