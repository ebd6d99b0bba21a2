package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "courierhub/internal/adapters/in/http"
	"courierhub/internal/adapters/out/events"
	"courierhub/internal/adapters/out/kafka"
	"courierhub/internal/adapters/out/memory"
	"courierhub/internal/adapters/out/notify"
	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/adapters/out/rabbitmq"
	"courierhub/internal/adapters/out/redis"
	"courierhub/internal/adapters/out/wshub"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/core/ports"
	"courierhub/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns every long-lived dependency and builds the handlers
// that use them.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	uowFactory ports.UnitOfWorkFactory

	positions ports.PositionCache
	hub       *wshub.Hub
	publisher ports.OrderEventPublisher
	notifier  ports.Notifier
	tokens    *services.ScanTokenService

	closers []func() error
}

// NewCompositionRoot connects the configured infrastructure. Anything not
// configured is replaced by an in-process adapter.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	weights, err := cfg.DispatchWeights()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{cfg: cfg, logger: logger, hub: wshub.New()}

	c.tokens, err = services.NewScanTokenService(cfg.ScanTokenSecret)
	if err != nil {
		return nil, err
	}

	if err = c.connectStorage(ctx, weights); err != nil {
		return nil, c.abort(err)
	}
	if err = c.connectPositionCache(ctx); err != nil {
		return nil, c.abort(err)
	}
	if err = c.connectPublisher(); err != nil {
		return nil, c.abort(err)
	}
	if err = c.connectNotifier(); err != nil {
		return nil, c.abort(err)
	}

	return c, nil
}

func (c *CompositionRoot) connectStorage(ctx context.Context, weights settings.DispatchWeights) error {
	if !c.cfg.UsesPostgres() {
		c.logger.Warn("DB_HOST is empty, using the in-memory store")
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(weights))
		return nil
	}

	db, err := postgres.Open(postgres.DSN(
		c.cfg.DBHost, c.cfg.DBPort, c.cfg.DBUser, c.cfg.DBPassword, c.cfg.DBName, c.cfg.DBSslMode,
	))
	if err != nil {
		return err
	}
	c.closers = append(c.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	if err = postgres.Migrate(ctx, db); err != nil {
		return err
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(db, weights)
	return nil
}

func (c *CompositionRoot) connectPositionCache(ctx context.Context) error {
	if c.cfg.RedisAddr == "" {
		c.positions = memory.NewPositionCache()
		return nil
	}

	client := redis.NewClient(c.cfg.RedisAddr, c.cfg.RedisPassword)
	c.closers = append(c.closers, client.Close)
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s: %w", c.cfg.RedisAddr, err)
	}
	c.positions = redis.NewPositionCache(client, redis.DefaultKey)
	return nil
}

func (c *CompositionRoot) connectPublisher() error {
	fanout := events.Fanout{c.hub}
	if c.cfg.KafkaHost != "" {
		publisher, err := kafka.NewOrderEventPublisher(c.cfg.KafkaHost, c.cfg.KafkaOrderChangedTopic)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, publisher.Close)
		fanout = append(fanout, publisher)
	}
	c.publisher = fanout
	return nil
}

func (c *CompositionRoot) connectNotifier() error {
	if c.cfg.RabbitMQURL == "" {
		c.notifier = notify.NewLogNotifier(c.logger)
		return nil
	}

	notifier, err := rabbitmq.Dial(c.cfg.RabbitMQURL, rabbitmq.DefaultExchange)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, notifier.Close)
	c.notifier = notifier
	return nil
}

func (c *CompositionRoot) abort(err error) error {
	return errors.Join(err, c.Close())
}

// Close releases connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) effects() commands.Effects {
	return commands.NewEffects(c.notifier, c.publisher, c.logger)
}

func (c *CompositionRoot) uow() FuncUoWFactory {
	return func() commands.UoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) orderUoW() FuncOrderUoWFactory {
	return func() commands.OrderUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) courierUoW() FuncCourierUoWFactory {
	return func() commands.CourierUoW { return c.uowFactory.Create() }
}

func (c *CompositionRoot) settingsUoW() FuncSettingsUoWFactory {
	return func() commands.SettingsUoW { return c.uowFactory.Create() }
}

// readers hands out repositories outside a transaction for the query side.
func (c *CompositionRoot) readers() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() *commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoW())
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() *commands.SetCourierAvailabilityCommandHandler {
	return commands.NewSetCourierAvailabilityCommandHandler(c.courierUoW(), c.positions, c.logger)
}

func (c *CompositionRoot) CreateReportCourierLocationCommandHandler() *commands.ReportCourierLocationCommandHandler {
	return commands.NewReportCourierLocationCommandHandler(c.courierUoW(), c.positions, c.logger)
}

func (c *CompositionRoot) CreateMarkStaleCouriersOfflineCommandHandler() *commands.MarkStaleCouriersOfflineCommandHandler {
	return commands.NewMarkStaleCouriersOfflineCommandHandler(c.courierUoW(), c.positions, c.logger)
}

func (c *CompositionRoot) CreateDebitPayoutCommandHandler() *commands.DebitPayoutCommandHandler {
	return commands.NewDebitPayoutCommandHandler(c.uow(), c.effects())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() *commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoW(), c.effects())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() *commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.uow(), c.effects())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.effects())
}

func (c *CompositionRoot) CreateIssueScanTokenCommandHandler() *commands.IssueScanTokenCommandHandler {
	return commands.NewIssueScanTokenCommandHandler(c.orderUoW(), c.tokens)
}

func (c *CompositionRoot) CreateRedeemScanCommandHandler() *commands.RedeemScanCommandHandler {
	return commands.NewRedeemScanCommandHandler(c.uow(), c.tokens, c.effects())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() *commands.DispatchOrderCommandHandler {
	dispatcher := services.NewOrderDispatcher(services.NewDispatchScorer())
	return commands.NewDispatchOrderCommandHandler(c.uow(), dispatcher, c.effects())
}

func (c *CompositionRoot) CreateDispatchPendingOrdersCommandHandler() *commands.DispatchPendingOrdersCommandHandler {
	return commands.NewDispatchPendingOrdersCommandHandler(c.uow(), c.CreateDispatchOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateUpdateDispatchWeightsCommandHandler() *commands.UpdateDispatchWeightsCommandHandler {
	return commands.NewUpdateDispatchWeightsCommandHandler(c.settingsUoW())
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.readers().CourierRepository())
}

func (c *CompositionRoot) CreateGetLiveCouriersQueryHandler() queries.GetLiveCouriersQueryHandler {
	return queries.NewGetLiveCouriersQueryHandler(c.readers().CourierRepository())
}

func (c *CompositionRoot) CreateGetCourierBalanceQueryHandler() queries.GetCourierBalanceQueryHandler {
	r := c.readers()
	return queries.NewGetCourierBalanceQueryHandler(r.CourierRepository(), r.LedgerRepository())
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.readers().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	r := c.readers()
	return queries.NewGetOrderTrackingQueryHandler(r.OrderRepository(), r.CourierRepository(), c.positions, c.logger)
}

func (c *CompositionRoot) CreateGetDispatchWeightsQueryHandler() queries.GetDispatchWeightsQueryHandler {
	return queries.NewGetDispatchWeightsQueryHandler(c.readers().SettingsRepository())
}

// NewHTTPServer builds the echo instance serving the API.
func (c *CompositionRoot) NewHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCourier:          c.CreateCreateCourierCommandHandler(),
		SetCourierAvailability: c.CreateSetCourierAvailabilityCommandHandler(),
		ReportCourierLocation:  c.CreateReportCourierLocationCommandHandler(),
		DebitPayout:            c.CreateDebitPayoutCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		AdvanceOrder:           c.CreateAdvanceOrderCommandHandler(),
		CompleteDelivery:       c.CreateCompleteDeliveryCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		IssueScanToken:         c.CreateIssueScanTokenCommandHandler(),
		RedeemScan:             c.CreateRedeemScanCommandHandler(),
		DispatchOrder:          c.CreateDispatchOrderCommandHandler(),
		UpdateDispatchWeights:  c.CreateUpdateDispatchWeightsCommandHandler(),

		GetAllCouriers:       c.CreateGetAllCouriersQueryHandler(),
		GetLiveCouriers:      c.CreateGetLiveCouriersQueryHandler(),
		GetCourierBalance:    c.CreateGetCourierBalanceQueryHandler(),
		GetUncompletedOrders: c.CreateGetUncompletedOrdersQueryHandler(),
		GetOrderTracking:     c.CreateGetOrderTrackingQueryHandler(),
		GetDispatchWeights:   c.CreateGetDispatchWeightsQueryHandler(),
	}, c.logger,
		httpin.WithScanTokenTTL(c.cfg.ScanTokenTTL),
		httpin.WithDefaultDeliveryFee(c.cfg.DeliveryFee),
		httpin.WithTrackingFeed(c.hub),
	)

	return httpin.NewRouter(server, c.cfg.AdminJWTSecret, c.logger)
}

// NewJobManager wires the background dispatch and stale courier sweeps.
func (c *CompositionRoot) NewJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		jobs.NewDispatchPendingJob(
			c.CreateDispatchPendingOrdersCommandHandler(),
			c.cfg.DispatchJobSchedule,
			c.cfg.DispatchJobBatch,
			c.logger,
		),
		jobs.NewStaleCourierSweepJob(
			c.CreateMarkStaleCouriersOfflineCommandHandler(),
			c.cfg.CourierSweepSchedule,
			c.cfg.CourierStaleAfter,
			c.logger,
		),
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
