package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	"personal-fitness-trainer/internal/model"
)

const shutdownTimeout = 10 * time.Second

// allowedOrigins falls back to any origin outside production.
func (srv HTTPServer) allowedOrigins() []string {
	if len(srv.corsOrigins) > 0 {
		return srv.corsOrigins
	}
	if srv.environment == model.EnvironmentProduction {
		return nil
	}
	return []string{"*"}
}

// Handler returns the engine wrapped with CORS. Production without configured
// origins serves no CORS headers at all.
func (srv HTTPServer) Handler() http.Handler {
	origins := srv.allowedOrigins()
	if len(origins) == 0 {
		return srv.gin
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(srv.gin)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv HTTPServer) Run(ctx context.Context) error {
	writeTimeout := srv.writeTimeout
	if writeTimeout <= 0 {
		writeTimeout = 2 * time.Minute
	}

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
