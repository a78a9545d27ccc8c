// Package httpserver provides a thin wrapper around net/http.Server with
// graceful shutdown, signal handling and env-based configuration.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
//
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or the
// listener fails; shutdown is bounded by the configured shutdown timeout.
package httpserver
