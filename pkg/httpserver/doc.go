// Package httpserver runs the uatokend HTTP listener with graceful shutdown
// and provides liveness and readiness handlers.
//
//	srv := httpserver.New(cfg.HTTP, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns after ctx is cancelled and in-flight requests have drained, or
// the shutdown timeout has elapsed. Header reads are bounded by
// ReadHeaderTimeout and MaxHeaderBytes.
package httpserver
