package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"lugo/pkg/logger"
	"lugo/pkg/metrics"
	"lugo/pkg/serrors"
)

const (
	// accountKeyContextKey is the echo context key carrying the resolved
	// requester account key.
	accountKeyContextKey = "accountKey"
	// requestIDHeader is honored when the client supplies its own request id.
	requestIDHeader = "X-Request-Id"
)

// RequestLogger injects a request-scoped logger carrying the request id into
// the context and writes a structured access log after the handler finishes.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := logger.WithFields(req.Context(), zap.String("request_id", requestID))
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)

			logger.Info(ctx, "Access log",
				zap.Int("status_code", c.Response().Status),
				zap.Float64("latency", time.Since(start).Seconds()),
				zap.String("client_ip", c.RealIP()),
				zap.String("user_agent", req.UserAgent()),
				zap.String("url", req.URL.String()),
				zap.String("method", req.Method),
			)

			return err
		}
	}
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "http_request_duration_seconds",
	Help:    "HTTP request latency by method, path and status.",
	Buckets: metrics.DefaultBuckets,
}, []string{"method", "path", "status"})

// RequestMetrics observes per-request latency into the prometheus histogram,
// labelled with the route template rather than the raw URL.
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// BearerAuth resolves the Authorization bearer token through the session
// store and stores the requester's account key on the echo context. Requests
// without a resolvable session are rejected before any handler runs.
func BearerAuth(sessions Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return respondError(c, serrors.With(serrors.ErrUnauthenticated, "missing bearer token"))
			}

			accountKey, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				return respondError(c, err)
			}
			c.Set(accountKeyContextKey, accountKey)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// requesterAccountKey returns the account key stored by BearerAuth, empty on
// unauthenticated routes.
func requesterAccountKey(c echo.Context) string {
	key, _ := c.Get(accountKeyContextKey).(string)

	return key
}
