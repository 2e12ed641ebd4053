// Package osrm fetches routed segments from an OSRM-compatible HTTP routing API.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/config"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
	"go.uber.org/fx"
)

const maxResponseBytes = 8 << 20

// ErrNoRoute is returned by a single attempt when the API answers without a usable route.
var ErrNoRoute = errors.New("routing response has no route")

// Client implements service.RouteProvider against an OSRM route endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// ProviderParams holds dependencies for the route provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRouteProvider builds the OSRM client from configuration.
func NewRouteProvider(params ProviderParams) service.RouteProvider {
	return NewClient(params.Config.Routing.OSRM, params.Logger)
}

// NewClient creates a routing client. Zero config values must already be defaulted by config.New.
func NewClient(cfg config.OSRMConfig, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{},
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchSegment requests the route from -> to, retrying with exponential backoff.
// After the last failed attempt it returns an empty segment and no error so the
// caller can keep rendering markers without a connecting line.
func (c *Client) FetchSegment(ctx context.Context, from, to entity.Stop) (entity.RouteSegment, error) {
	var segment entity.RouteSegment

	attempt := 0
	operation := func() error {
		attempt++
		s, err := c.fetchOnce(ctx, from, to)
		if err != nil {
			return err
		}
		segment = s

		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Debug("Route segment attempt failed, retrying",
			slog.String("segment", entity.SegmentKey(from, to)),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)
	err := backoff.RetryNotify(operation, policy, notify)
	if err == nil {
		return segment, nil
	}

	if ctx.Err() != nil {
		return entity.EmptySegment(), errors.Wrap(ctx.Err(), "route segment fetch cancelled")
	}

	c.logger.Warn("Route segment unavailable, drawing no path",
		slog.String("segment", entity.SegmentKey(from, to)),
		slog.Int("attempts", attempt),
		slog.Any("error", err),
	)

	return entity.EmptySegment(), nil
}

// newBackOff waits baseDelay * 2^n before retry n, without jitter.
func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = c.baseDelay << 10
	b.MaxElapsedTime = 0
	b.Reset()

	return b
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string  `json:"geometry"`
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

func (c *Client) fetchOnce(ctx context.Context, from, to entity.Stop) (entity.RouteSegment, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, c.routeURL(from, to), nil)
	if err != nil {
		return entity.RouteSegment{}, backoff.Permanent(errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.RouteSegment{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

		return entity.RouteSegment{}, errors.Errorf("routing API returned status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return entity.RouteSegment{}, errors.Wrap(err, "decode routing response")
	}

	if body.Code != "" && body.Code != "Ok" {
		return entity.RouteSegment{}, errors.Wrapf(ErrNoRoute, "code %s: %s", body.Code, body.Message)
	}
	if len(body.Routes) == 0 {
		return entity.RouteSegment{}, ErrNoRoute
	}

	route := body.Routes[0]
	coords, err := decodeGeometry(route.Geometry)
	if err != nil {
		return entity.RouteSegment{}, err
	}

	return entity.RouteSegment{
		Coords:   coords,
		Duration: route.Duration,
		Distance: route.Distance,
	}, nil
}

// routeURL builds {base}/{fromLng},{fromLat};{toLng},{toLat}?overview=full
func (c *Client) routeURL(from, to entity.Stop) string {
	return fmt.Sprintf("%s/%s,%s;%s,%s?overview=full",
		c.baseURL,
		formatCoord(from.Lng), formatCoord(from.Lat),
		formatCoord(to.Lng), formatCoord(to.Lat),
	)
}

// decodeGeometry decodes a precision-5 encoded polyline into [lng, lat] points.
func decodeGeometry(encoded string) (orb.LineString, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "decode route geometry")
	}

	line := make(orb.LineString, 0, len(coords))
	for _, coord := range coords {
		line = append(line, orb.Point{coord[1], coord[0]})
	}

	return line, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
