package http

import (
	"context"
	"log"
	"net/http"
	"time"
)

type ServerOptions struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewRouter mounts the approval endpoints. Only POST /loan/approve is rate
// limited; the read-only listings are not.
func NewRouter(handler *ApprovalHandler, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(
		"/loan/approve",
		RateLimitMiddleware(
			limiter,
			http.HandlerFunc(handler.Approve),
		),
	)
	mux.HandleFunc("/loan/stages", handler.ListStages)
	mux.HandleFunc("/loan/decisions", handler.ListDecisions)
	return mux
}

// Serve runs the server until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, opts ServerOptions, handler http.Handler) error {
	server := &http.Server{
		Addr:         opts.Address,
		Handler:      handler,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", opts.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("Server exited")
	return nil
}
