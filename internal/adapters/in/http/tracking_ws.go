package http

import (
	"net/http"
	"time"

	"courierhub/internal/adapters/out/events"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/generated/servers"
	"courierhub/internal/observability"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
	wsPongWait   = wsPingPeriod + wsWriteWait
)

// TrackingFeed hands out status change subscriptions for one order. The
// channel is closed after the order's terminal event.
type TrackingFeed interface {
	Subscribe(orderID kernel.UUID) (<-chan order.StatusChanged, func())
}

// TrackLive handles GET /tracking/{orderId}/live. The first frame is the
// tracking view; every later frame is an order status message. The socket is
// closed once the order is completed or cancelled.
func (s *Server) TrackLive(ctx echo.Context) error {
	if s.feed == nil {
		return ctx.JSON(http.StatusNotImplemented, servers.Error{
			Code:    http.StatusNotImplemented,
			Message: "Live tracking is disabled",
		})
	}

	parsed, err := uuid.Parse(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter orderId")
	}
	orderID, err := kernel.UUIDFromBytes(parsed[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	// Subscribe before reading so no change between the read and the
	// subscription is lost.
	updates, cancel := s.feed.Subscribe(orderID)
	defer cancel()

	view, err := s.h.GetOrderTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	conn, err := s.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// The upgrader already answered the client.
		s.logger.DebugContext(ctx.Request().Context(), "websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	observability.TrackingSubscribers.Inc()
	defer observability.TrackingSubscribers.Dec()

	if err = s.writeFrame(conn, trackingResponse(view)); err != nil {
		return nil
	}
	if view.Status.IsTerminal() {
		s.closeFeed(conn, "order is "+view.Status.String())
		return nil
	}

	gone := make(chan struct{})
	go readUntilClosed(conn, gone)

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case evt, ok := <-updates:
			if !ok {
				s.closeFeed(conn, "order finished")
				return nil
			}
			if err = s.writeFrame(conn, events.NewOrderStatusMessage(evt)); err != nil {
				return nil
			}
		case <-ping.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return nil
			}
		case <-gone:
			return nil
		case <-ctx.Request().Context().Done():
			return nil
		}
	}
}

func (s *Server) writeFrame(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(v)
}

func (s *Server) closeFeed(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(wsWriteWait))
}

// readUntilClosed drains client frames so pongs and close frames are
// processed, and signals when the peer goes away.
func readUntilClosed(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
