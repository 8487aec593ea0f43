// Package api exposes the HTTP surface of the service: REST routes over the
// use-case services, bearer-token authentication, access logging and
// prometheus metrics. It contains no business rules; every decision is made
// by the services underneath.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lugo/internal/account"
	"lugo/internal/company"
	"lugo/internal/config"
	"lugo/internal/listing"
	"lugo/internal/property"
)

// Sessions is the token boundary the API depends on. The redis-backed
// session store implements it.
type Sessions interface {
	Issue(ctx context.Context, accountKey string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// Deps aggregates everything the HTTP handlers call into. Person writes have
// no direct entry: they happen through signup and client registration only.
type Deps struct {
	Companies  company.Service
	Properties property.Service
	Listings   listing.Service
	Accounts   account.Service
	Sessions   Sessions
}

// Options holds configuration for the HTTP server.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// NewServer wires up and returns a configured *http.Server. The echo engine
// carries access logging and request metrics globally; routes that act on
// behalf of a requester sit behind the bearer-auth middleware.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestLogger())
	e.Use(RequestMetrics())

	e.GET(opts.MetricsPath, echo.WrapHandler(promhttp.Handler()))

	h := &handler{deps: deps}

	v1 := e.Group("/v1")

	// public surface. Person creation is deliberately absent here: persons
	// come into existence only through signup or an employee registering a
	// client, so mutations always pass an authorization check.
	v1.POST("/signup", h.signUp)
	v1.POST("/login", h.login)
	v1.POST("/accounts/password", h.changePassword)
	v1.GET("/persons/:key/company", h.affiliatedCompany)
	v1.GET("/properties/:key/listing", h.listingForProperty)

	// requester-scoped surface
	authed := v1.Group("", BearerAuth(deps.Sessions))
	authed.POST("/logout", h.logout)
	authed.POST("/companies", h.createCompany)
	authed.PUT("/companies/:key", h.alterCompany)
	authed.GET("/companies/:key/clients", h.companyClients)
	authed.POST("/clients", h.registerClient)
	authed.PUT("/clients/:key", h.alterClient)
	authed.POST("/properties", h.registerProperty)
	authed.PUT("/properties/:key", h.alterProperty)
	authed.GET("/properties/:key/owner", h.propertyOwner)
	authed.GET("/persons/:key/properties", h.propertiesOfOwner)
	authed.POST("/listings", h.createListing)
	authed.PUT("/listings/:key", h.alterListing)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           e,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
