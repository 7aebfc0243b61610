package cmd

import (
	"log/slog"

	tracker_http "tracker/internal/adapters/in/http"
	"tracker/internal/adapters/out/memory"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/jobs"
	"tracker/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.TrackingMetrics
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	store := memory.NewStore()
	registry := prometheus.NewRegistry()

	return CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		registry:   registry,
		metrics:    metrics.NewTrackingMetrics(registry),
	}
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPartnerCommandHandler() commands.AddPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePartnerCommandHandler() commands.DeletePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateHTTPHandlers() tracker_http.Handlers {
	return tracker_http.Handlers{
		AddOrder:      c.CreateAddOrderCommandHandler(),
		AddPartner:    c.CreateAddPartnerCommandHandler(),
		AssignOrder:   c.CreateAssignOrderCommandHandler(),
		DeletePartner: c.CreateDeletePartnerCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),

		GetOrder:               queries.NewGetOrderQueryHandler(c.store),
		GetPartner:             queries.NewGetPartnerQueryHandler(c.store),
		GetPartnerOrderCount:   queries.NewGetPartnerOrderCountQueryHandler(c.store),
		GetPartnerOrders:       queries.NewGetPartnerOrdersQueryHandler(c.store),
		GetAllOrders:           queries.NewGetAllOrdersQueryHandler(c.store),
		GetUnassignedCount:     queries.NewGetUnassignedOrderCountQueryHandler(c.store),
		GetLastDeliveryTime:    queries.NewGetLastDeliveryTimeQueryHandler(c.store),
		GetOrdersLeftAfterTime: queries.NewGetOrdersLeftAfterTimeQueryHandler(c.store),
	}
}

func (c *CompositionRoot) CreateServer() *tracker_http.Server {
	return tracker_http.NewServer(c.CreateHTTPHandlers(), c.config.StrictNotFound, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetTrackingSummaryQueryHandler(c.store),
		c.metrics,
		c.config.SnapshotSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) Metrics() *metrics.TrackingMetrics {
	return c.metrics
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
