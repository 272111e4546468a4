package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/refcode/pkg/httpserver"
	"github.com/dmitrymomot/refcode/pkg/logger"
	"github.com/dmitrymomot/refcode/pkg/reference"
)

// Defaults applied to zero RouterOptions fields.
const (
	DefaultLength    = 8
	DefaultMaxLength = 256
	DefaultMaxCount  = 100
)

// RouterOptions configures the reference API. Zero values fall back to the
// package defaults and reference.Default().
type RouterOptions struct {
	Generator *reference.Generator
	Logger    *slog.Logger

	// DefaultLength is used when a request omits the length parameter.
	DefaultLength int
	// MaxLength and MaxCount bound what a single request may ask for.
	MaxLength int
	MaxCount  int
}

func (o RouterOptions) withDefaults() RouterOptions {
	if o.Generator == nil {
		o.Generator = reference.Default()
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	if o.DefaultLength <= 0 {
		o.DefaultLength = DefaultLength
	}
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.MaxCount <= 0 {
		o.MaxCount = DefaultMaxCount
	}
	return o
}

// Router creates the reference API router.
//
//	GET  /references/{kind}?length=&prefix=&count=
//	POST /references/validate
//	GET  /guid
//	GET  /healthz
//	GET  /readyz
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/v1", api.Router(api.RouterOptions{Generator: gen, Logger: log}))
func Router(opts RouterOptions) chi.Router {
	opts = opts.withDefaults()
	h := &handler{opts: opts}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(recoverer(opts.Logger))

	r.Get("/healthz", httpserver.HealthCheckHandler(opts.Logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(opts.Logger, opts.Generator.Probe))

	r.Get("/guid", h.guid)
	r.Route("/references", func(refs chi.Router) {
		refs.Post("/validate", h.validate)
		refs.Get("/{kind}", h.generate)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	return r
}
