// Package httpserver wraps net/http with graceful shutdown, env-driven
// configuration, lifecycle hooks and health-check handlers.
//
// Run binds the listener first, so address errors are returned synchronously
// wrapped with ErrStart, then serves until the context is cancelled, an
// interrupt or SIGTERM is received, or Shutdown is called. Shutdown waits for
// in-flight requests up to the configured timeout.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, gen.Probe))
//
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run wraps listen and serve errors with ErrStart; Shutdown wraps
// http.Server.Shutdown errors with ErrShutdown.
package httpserver
