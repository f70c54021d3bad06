package cmd

import (
	"log/slog"

	"frosty/internal/adapters/in/http"
	"frosty/internal/adapters/out/postgres"
	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/core/application/usecases/queries"
	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/jobs"
	"frosty/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	uowFactory postgres.GormUnitOfWorkFactory
	supplier   kernel.Supplier
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	supplier kernel.Supplier,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		supplier:   supplier,
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) checkinUoWFactory() commands.CheckinUoWFactory {
	return FuncCheckinUoWFactory(func() commands.CheckinUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCheckinOrderCommandHandler() commands.CreateCheckinOrderCommandHandler {
	return commands.NewCreateCheckinOrderCommandHandler(c.checkinUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateUpdateCheckinOrderCommandHandler() commands.UpdateCheckinOrderCommandHandler {
	return commands.NewUpdateCheckinOrderCommandHandler(c.checkinUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateCancelCheckinOrderCommandHandler() commands.CancelCheckinOrderCommandHandler {
	return commands.NewCancelCheckinOrderCommandHandler(c.checkinUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateDeleteCheckinOrderCommandHandler() commands.DeleteCheckinOrderCommandHandler {
	return commands.NewDeleteCheckinOrderCommandHandler(c.checkinUoWFactory())
}

func (c *CompositionRoot) CreateCreateCheckoutOrderCommandHandler() commands.CreateCheckoutOrderCommandHandler {
	return commands.NewCreateCheckoutOrderCommandHandler(c.checkoutUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateUpdateCheckoutOrderCommandHandler() commands.UpdateCheckoutOrderCommandHandler {
	return commands.NewUpdateCheckoutOrderCommandHandler(c.checkoutUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateCloseCheckoutOrderCommandHandler() commands.CloseCheckoutOrderCommandHandler {
	return commands.NewCloseCheckoutOrderCommandHandler(c.checkoutUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateOpenCheckoutOrderCommandHandler() commands.OpenCheckoutOrderCommandHandler {
	return commands.NewOpenCheckoutOrderCommandHandler(c.checkoutUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateDeleteCheckoutOrderCommandHandler() commands.DeleteCheckoutOrderCommandHandler {
	return commands.NewDeleteCheckoutOrderCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory(), c.supplier)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateExpiredProductsCommandHandler() commands.DeactivateExpiredProductsCommandHandler {
	return commands.NewDeactivateExpiredProductsCommandHandler(c.productUoWFactory(), c.supplier)
}

// Queries read outside of a transaction through the gateways of a fresh unit of work.

func (c *CompositionRoot) CreateGetCheckinOrderQueryHandler() queries.GetCheckinOrderQueryHandler {
	return queries.NewGetCheckinOrderQueryHandler(c.uowFactory.Create().CheckinOrderGateway())
}

func (c *CompositionRoot) CreateListCheckinOrdersQueryHandler() queries.ListCheckinOrdersQueryHandler {
	return queries.NewListCheckinOrdersQueryHandler(c.uowFactory.Create().CheckinOrderGateway())
}

func (c *CompositionRoot) CreateGetCheckoutOrderQueryHandler() queries.GetCheckoutOrderQueryHandler {
	return queries.NewGetCheckoutOrderQueryHandler(c.uowFactory.Create().CheckoutOrderGateway())
}

func (c *CompositionRoot) CreateListCheckoutOrdersQueryHandler() queries.ListCheckoutOrdersQueryHandler {
	return queries.NewListCheckoutOrdersQueryHandler(c.uowFactory.Create().CheckoutOrderGateway())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.uowFactory.Create().ProductGateway())
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.uowFactory.Create().ProductGateway())
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateCheckinOrder: c.CreateCreateCheckinOrderCommandHandler(),
		UpdateCheckinOrder: c.CreateUpdateCheckinOrderCommandHandler(),
		CancelCheckinOrder: c.CreateCancelCheckinOrderCommandHandler(),
		DeleteCheckinOrder: c.CreateDeleteCheckinOrderCommandHandler(),
		GetCheckinOrder:    c.CreateGetCheckinOrderQueryHandler(),
		ListCheckinOrders:  c.CreateListCheckinOrdersQueryHandler(),

		CreateCheckoutOrder: c.CreateCreateCheckoutOrderCommandHandler(),
		UpdateCheckoutOrder: c.CreateUpdateCheckoutOrderCommandHandler(),
		CloseCheckoutOrder:  c.CreateCloseCheckoutOrderCommandHandler(),
		OpenCheckoutOrder:   c.CreateOpenCheckoutOrderCommandHandler(),
		DeleteCheckoutOrder: c.CreateDeleteCheckoutOrderCommandHandler(),
		GetCheckoutOrder:    c.CreateGetCheckoutOrderQueryHandler(),
		ListCheckoutOrders:  c.CreateListCheckoutOrdersQueryHandler(),

		CreateProduct: c.CreateCreateProductCommandHandler(),
		UpdateProduct: c.CreateUpdateProductCommandHandler(),
		DeleteProduct: c.CreateDeleteProductCommandHandler(),
		GetProduct:    c.CreateGetProductQueryHandler(),
		ListProducts:  c.CreateListProductsQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateDeactivateExpiredProductsCommandHandler()
	job := jobs.NewProductExpirationJob(
		&handler,
		c.config.ExpirationBatchSize,
		c.config.ExpirationJobSchedule,
		c.metrics,
		c.logger,
	)
	return jobs.NewJobManager(job)
}

type FuncCheckinUoWFactory func() commands.CheckinUoW

func (f FuncCheckinUoWFactory) Create() commands.CheckinUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
