package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/config"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/response"
	deliverycontext "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/context"
	domainerrors "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	socketWriteWait      = 10 * time.Second
	socketMaxMessageSize = 1 << 20

	socketMessagePlan  = "plan"
	socketMessageError = "error"
)

// RouteSocketHandlerParams holds dependencies for RouteSocketHandler, injected by Fx.
type RouteSocketHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// RouteSocketHandler keeps one route session per websocket connection.
// Every inbound stop list replaces the previous one; only the plan of the
// latest list is ever sent back.
type RouteSocketHandler struct {
	routeUC    usecase.RouteUsecase
	upgrader   websocket.Upgrader
	pongWait   time.Duration
	pingPeriod time.Duration
	logger     *slog.Logger
}

// NewRouteSocketHandler is the constructor for RouteSocketHandler
func NewRouteSocketHandler(params RouteSocketHandlerParams) *RouteSocketHandler {
	liveCfg := params.Config.LiveRoute
	if liveCfg == nil {
		liveCfg = &config.LiveRouteConfig{PongWait: 60 * time.Second, PingPeriod: 54 * time.Second}
	}

	return &RouteSocketHandler{
		routeUC: params.RouteUC,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		pongWait:   liveCfg.PongWait,
		pingPeriod: liveCfg.PingPeriod,
		logger:     params.Logger,
	}
}

// SocketMessage is sent for every completed plan or failed request.
type SocketMessage struct {
	Type  string              `json:"type"`
	Seq   uint64              `json:"seq"`
	Plan  *usecase.RoutePlan  `json:"plan,omitempty"`
	Error *response.ErrorInfo `json:"error,omitempty"`
}

// socketConn serializes writes and drops results that a newer request superseded.
type socketConn struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	latest atomic.Uint64
}

func (s *socketConn) send(msg SocketMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.Seq != s.latest.Load() {
		return nil
	}

	if err := s.conn.SetWriteDeadline(time.Now().Add(socketWriteWait)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(s.conn.WriteJSON(msg))
}

// LiveRoute handles GET /routes/live
func (h *RouteSocketHandler) LiveRoute(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already replied to the client.
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	session := h.routeUC.NewSession()
	sc := &socketConn{conn: conn}
	var wg sync.WaitGroup

	defer func() {
		cancel()
		session.Close()
		wg.Wait()
		conn.Close()
		logger.Debug("Live route session closed")
	}()

	conn.SetReadLimit(socketMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		h.keepAlive(ctx, conn)
	}()

	logger.Debug("Live route session opened")

	// Plans run one after another: each waits for the cancelled previous one
	// to unwind, so a stale request can never cancel the batch of a newer one.
	cancelPrev := context.CancelFunc(func() {})
	prevDone := make(chan struct{})
	close(prevDone)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Live route connection closed unexpectedly", slog.Any("error", err))
			}

			return nil
		}

		cancelPrev()
		seq := sc.latest.Add(1)

		var input usecase.PlanRouteInput
		if err := json.Unmarshal(data, &input); err != nil {
			h.sendError(sc, logger, seq, &response.ErrorInfo{Code: "INVALID_INPUT", Message: "Invalid route request"})

			continue
		}

		planCtx, planCancel := context.WithCancel(ctx)
		waitFor, done := prevDone, make(chan struct{})
		cancelPrev, prevDone = planCancel, done

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(done)
			defer planCancel()

			<-waitFor
			if planCtx.Err() != nil {
				return
			}
			h.plan(planCtx, sc, session, logger, seq, input)
		}()
	}
}

func (h *RouteSocketHandler) plan(ctx context.Context, sc *socketConn, session usecase.RouteSession, logger *slog.Logger, seq uint64, input usecase.PlanRouteInput) {
	plan, err := session.Plan(ctx, input)
	if err != nil {
		// Superseded by a newer request or the connection is going away.
		if errors.IsAny(err, context.Canceled, usecase.ErrSessionClosed) {
			return
		}

		info := &response.ErrorInfo{Code: "ROUTE_FAILED", Message: "Route could not be planned"}
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			info = &response.ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
		} else {
			logger.Error("Live route plan failed", slog.Any("error", err))
		}
		h.sendError(sc, logger, seq, info)

		return
	}

	if err := sc.send(SocketMessage{Type: socketMessagePlan, Seq: seq, Plan: plan}); err != nil {
		logger.Warn("Failed to write route plan", slog.Any("error", err))
	}
}

func (h *RouteSocketHandler) sendError(sc *socketConn, logger *slog.Logger, seq uint64, info *response.ErrorInfo) {
	if err := sc.send(SocketMessage{Type: socketMessageError, Seq: seq, Error: info}); err != nil {
		logger.Warn("Failed to write route error", slog.Any("error", err))
	}
}

func (h *RouteSocketHandler) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(socketWriteWait)); err != nil {
				// Unblocks the read loop.
				conn.Close()

				return
			}
		}
	}
}
