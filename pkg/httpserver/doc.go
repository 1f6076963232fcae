// Package httpserver runs the cookie demo's HTTP server with graceful
// shutdown and exposes liveness and readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run returns once ctx is cancelled or the process receives SIGINT or
// SIGTERM, after in-flight requests have drained or the shutdown timeout
// (HTTP_SHUTDOWN_TIMEOUT) has passed.
package httpserver
