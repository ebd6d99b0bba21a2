package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/generated/servers"
	"courierhub/internal/observability"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// DefaultAvgResponseSeconds is assumed for a courier registered without a
// response history.
const DefaultAvgResponseSeconds = 60.0

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateCourier          *commands.CreateCourierCommandHandler
	SetCourierAvailability *commands.SetCourierAvailabilityCommandHandler
	ReportCourierLocation  *commands.ReportCourierLocationCommandHandler
	DebitPayout            *commands.DebitPayoutCommandHandler
	CreateOrder            *commands.CreateOrderCommandHandler
	AdvanceOrder           *commands.AdvanceOrderCommandHandler
	CompleteDelivery       *commands.CompleteDeliveryCommandHandler
	CancelOrder            *commands.CancelOrderCommandHandler
	IssueScanToken         *commands.IssueScanTokenCommandHandler
	RedeemScan             *commands.RedeemScanCommandHandler
	DispatchOrder          *commands.DispatchOrderCommandHandler
	UpdateDispatchWeights  *commands.UpdateDispatchWeightsCommandHandler

	// Query handlers
	GetAllCouriers       queries.GetAllCouriersQueryHandler
	GetLiveCouriers      queries.GetLiveCouriersQueryHandler
	GetCourierBalance    queries.GetCourierBalanceQueryHandler
	GetUncompletedOrders queries.GetUncompletedOrdersQueryHandler
	GetOrderTracking     queries.GetOrderTrackingQueryHandler
	GetDispatchWeights   queries.GetDispatchWeightsQueryHandler
}

type ServerOption func(*Server)

// WithScanTokenTTL sets the lifetime of tokens issued without ttlMinutes.
func WithScanTokenTTL(ttl time.Duration) ServerOption {
	return func(s *Server) {
		s.scanTokenTTL = ttl
	}
}

// WithDefaultDeliveryFee sets the fee of orders created without deliveryFee.
func WithDefaultDeliveryFee(fee int64) ServerOption {
	return func(s *Server) {
		s.defaultDeliveryFee = fee
	}
}

// WithTrackingFeed enables the live tracking websocket.
func WithTrackingFeed(feed TrackingFeed) ServerOption {
	return func(s *Server) {
		s.feed = feed
	}
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
	now    func() time.Time

	scanTokenTTL       time.Duration
	defaultDeliveryFee int64

	feed     TrackingFeed
	upgrader websocket.Upgrader
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		h:            h,
		logger:       logger.With("component", "http"),
		now:          time.Now,
		scanTokenTTL: services.DefaultScanTokenTTL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DispatchAuto handles POST /dispatch/auto - binds the best ranked courier to an order.
func (s *Server) DispatchAuto(ctx echo.Context) error {
	var body servers.DispatchAutoJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	started := s.now()
	result, err := s.h.DispatchOrder.Handle(ctx.Request().Context(), cmd)
	observability.DispatchLatency.Observe(time.Since(started).Seconds())
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNoCandidate):
		observability.DispatchTotal.WithLabelValues(observability.OutcomeNoCandidate).Inc()
		return ctx.JSON(http.StatusConflict, servers.NoCandidate{Error: servers.NoCandidateErrorNoCandidate})
	case errors.Is(err, order.ErrInvalidTransition):
		observability.DispatchTotal.WithLabelValues(observability.OutcomeFailed).Inc()
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order is not in a dispatchable status",
		})
	default:
		observability.DispatchTotal.WithLabelValues(observability.OutcomeFailed).Inc()
		return s.fail(ctx, err)
	}

	observability.DispatchTotal.WithLabelValues(observability.OutcomeAssigned).Inc()
	observability.DispatchScore.Observe(result.Score)
	observability.OrderTransitionsTotal.WithLabelValues(order.Assigned.String()).Inc()

	score := result.Score
	return ctx.JSON(http.StatusAccepted, servers.DispatchResponse{
		CourierId:   result.CourierID.Bytes(),
		CourierName: result.CourierName,
		Score:       &score,
	})
}

// RedeemScan handles POST /scan - redeems a scan token at pickup or handoff.
func (s *Server) RedeemScan(ctx echo.Context) error {
	var body servers.RedeemScanJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	point, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRedeemScanCommand(body.Token, point)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.RedeemScan.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		observability.ScanRedemptionsTotal.WithLabelValues(scanFailureReason(err)).Inc()
		return s.fail(ctx, err)
	}

	observability.ScanRedemptionsTotal.WithLabelValues("redeemed").Inc()
	observability.OrderTransitionsTotal.WithLabelValues(result.Status.String()).Inc()
	return ctx.JSON(http.StatusOK, orderStatus(result.OrderID, result.Status))
}

// GetTracking handles GET /tracking/{orderId} - the customer's view of an order.
func (s *Server) GetTracking(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetOrderTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponse(view))
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.h.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:                 c.ID.Bytes(),
			Name:               c.Name,
			Status:             servers.CourierStatus(c.Status.String()),
			Location:           position(c.Location),
			Workload:           c.Workload,
			Rating:             c.Rating,
			AvgResponseSeconds: c.AvgResponseSeconds,
			Balance:            c.Balance,
			DeliveredCount:     c.DeliveredCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body servers.CreateCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rating, avgResponse := courier.RatingMax, DefaultAvgResponseSeconds
	if body.Rating != nil {
		rating = *body.Rating
	}
	if body.AvgResponseSeconds != nil {
		avgResponse = *body.AvgResponseSeconds
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, rating, avgResponse)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.CourierID().Bytes()})
}

// GetLiveCouriers handles GET /api/v1/couriers/live - idle couriers with a known position.
func (s *Server) GetLiveCouriers(ctx echo.Context) error {
	live, err := s.h.GetLiveCouriers.Handle(ctx.Request().Context(), queries.NewGetLiveCouriersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	observability.LiveCouriers.Set(float64(len(live)))

	response := make([]servers.LiveCourier, len(live))
	for i, c := range live {
		response[i] = servers.LiveCourier{
			Id:         c.ID.Bytes(),
			Name:       c.Name,
			Location:   servers.Position{Lat: c.Location.Lat(), Lng: c.Location.Lng()},
			LocationAt: c.LocationAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetCourierStatus handles POST /api/v1/couriers/{courierId}/status - starts or ends a shift.
func (s *Server) SetCourierStatus(ctx echo.Context, courierId servers.CourierId) error {
	var body servers.SetCourierStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetCourierAvailabilityCommand(courierID, body.Online)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SetCourierAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportCourierLocation handles POST /api/v1/couriers/{courierId}/location - a GPS ping.
func (s *Server) ReportCourierLocation(ctx echo.Context, courierId servers.CourierId) error {
	var body servers.ReportCourierLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return s.fail(ctx, err)
	}
	at := s.now()
	if body.Timestamp != nil {
		at = *body.Timestamp
	}

	cmd, err := commands.NewReportCourierLocationCommand(courierID, point, at)
	if err != nil {
		return s.fail(ctx, err)
	}

	applied, err := s.h.ReportCourierLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	result := "ignored"
	if applied {
		result = "applied"
	}
	observability.LocationPingsTotal.WithLabelValues(result).Inc()

	return ctx.JSON(http.StatusOK, servers.LocationPingResult{Applied: applied})
}

// CreatePayout handles POST /api/v1/couriers/{courierId}/payouts - books a manual payout.
func (s *Server) CreatePayout(ctx echo.Context, courierId servers.CourierId) error {
	var body servers.CreatePayoutJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDebitPayoutCommand(courierID, body.Amount)
	if err != nil {
		return s.fail(ctx, err)
	}

	entry, err := s.h.DebitPayout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	observability.LedgerAmountTotal.WithLabelValues(string(entry.Kind())).Add(float64(entry.Amount()))

	return ctx.JSON(http.StatusCreated, ledgerEntry(queries.LedgerEntryResponse{
		ID:        entry.ID(),
		Kind:      entry.Kind(),
		Amount:    entry.Amount(),
		OrderID:   entry.OrderID(),
		CreatedAt: entry.CreatedAt(),
	}))
}

// GetCourierBalance handles GET /api/v1/couriers/{courierId}/balance.
func (s *Server) GetCourierBalance(
	ctx echo.Context,
	courierId servers.CourierId,
	params servers.GetCourierBalanceParams,
) error {
	courierID, err := kernel.UUIDFromBytes(courierId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewGetCourierBalanceQuery(courierID, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	balance, err := s.h.GetCourierBalance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries := make([]servers.LedgerEntry, len(balance.Entries))
	for i, e := range balance.Entries {
		entries[i] = ledgerEntry(e)
	}

	return ctx.JSON(http.StatusOK, servers.CourierBalance{
		CourierId:      balance.CourierID.Bytes(),
		Balance:        balance.Balance,
		DeliveredCount: balance.DeliveredCount,
		Entries:        entries,
	})
}

// CreateOrder handles POST /api/v1/orders - takes a storefront order into delivery.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if body.OrderId != nil {
		id, err := kernel.UUIDFromBytes(body.OrderId[:])
		if err != nil {
			return s.fail(ctx, err)
		}
		orderID = id
	}
	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	pickup, pickupErr := kernel.NewGeoPoint(body.Pickup.Lat, body.Pickup.Lng)
	destination, destinationErr := kernel.NewGeoPoint(body.Destination.Lat, body.Destination.Lng)
	if err = errors.Join(pickupErr, destinationErr); err != nil {
		return s.fail(ctx, err)
	}
	fee := s.defaultDeliveryFee
	if body.DeliveryFee != nil {
		fee = *body.DeliveryFee
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, pickup, destination, body.Address, fee)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	observability.OrderTransitionsTotal.WithLabelValues(order.Created.String()).Inc()

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// GetOrders handles GET /api/v1/orders/active - retrieves all uncompleted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.h.GetUncompletedOrders.Handle(ctx.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:          o.ID.Bytes(),
			Status:      o.Status.String(),
			CourierId:   optionalID(o.CourierID),
			Pickup:      servers.Position{Lat: o.Pickup.Lat(), Lng: o.Pickup.Lng()},
			Destination: servers.Position{Lat: o.Destination.Lat(), Lng: o.Destination.Lng()},
			Address:     o.Address,
			DeliveryFee: o.DeliveryFee,
			CreatedAt:   o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AdvanceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := optionalPoint(body.Lat, body.Lng)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, target, point)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.h.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	observability.OrderTransitionsTotal.WithLabelValues(status.String()).Inc()

	return ctx.JSON(http.StatusOK, orderStatus(orderID, status))
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.CompleteOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, point)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	observability.OrderTransitionsTotal.WithLabelValues(order.Completed.String()).Inc()

	return ctx.JSON(http.StatusOK, orderStatus(orderID, order.Completed))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	reason := ""
	if body.Reason != nil {
		reason = *body.Reason
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	observability.OrderTransitionsTotal.WithLabelValues(order.Cancelled.String()).Inc()

	return ctx.JSON(http.StatusOK, orderStatus(orderID, order.Cancelled))
}

// IssueScanToken handles POST /api/v1/orders/{orderId}/scan-token.
func (s *Server) IssueScanToken(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.IssueScanTokenJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	ttl := s.scanTokenTTL
	if body.TtlMinutes != nil {
		ttl = time.Duration(*body.TtlMinutes) * time.Minute
	}

	cmd, err := commands.NewIssueScanTokenCommand(orderID, ttl)
	if err != nil {
		return s.fail(ctx, err)
	}

	token, err := s.h.IssueScanToken.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ScanToken{Token: token.String(), ExpiresAt: token.ExpiresAt.UTC()})
}

// GetDispatchWeights handles GET /api/v1/settings/dispatch-weights.
func (s *Server) GetDispatchWeights(ctx echo.Context) error {
	weights, err := s.h.GetDispatchWeights.Handle(ctx.Request().Context(), queries.NewGetDispatchWeightsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DispatchWeights{
		Distance: weights.Distance,
		Rating:   weights.Rating,
		Workload: weights.Workload,
		Response: weights.Response,
		Version:  weights.Version,
	})
}

// UpdateDispatchWeights handles PUT /api/v1/settings/dispatch-weights.
func (s *Server) UpdateDispatchWeights(ctx echo.Context) error {
	var body servers.UpdateDispatchWeightsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	expected := 0
	if body.ExpectedVersion != nil {
		expected = *body.ExpectedVersion
	}
	cmd, err := commands.NewUpdateDispatchWeightsCommand(body.Distance, body.Rating, body.Workload, body.Response, expected)
	if err != nil {
		return s.fail(ctx, err)
	}

	weights, err := s.h.UpdateDispatchWeights.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.logger.InfoContext(ctx.Request().Context(), "dispatch weights updated",
		"version", weights.Version(), "distance", weights.Distance(), "rating", weights.Rating(),
		"workload", weights.Workload(), "response", weights.Response())

	return ctx.JSON(http.StatusOK, servers.DispatchWeights{
		Distance: weights.Distance(),
		Rating:   weights.Rating(),
		Workload: weights.Workload(),
		Response: weights.Response(),
		Version:  weights.Version(),
	})
}
