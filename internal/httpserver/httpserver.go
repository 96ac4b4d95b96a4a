package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

// Run starts the HTTP server and all background services, then blocks until shutdown signal.
//  1. Map HTTP handlers and routes
//  2. Start the realtime broker, the database bridge, the alert notifier and the live hub
//  3. Start HTTP server
//  4. Wait for shutdown signal and stop everything in reverse order
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	// 1. Map handlers
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}
	svc := srv.services

	// 2. Start background services
	svc.broker.Start()
	srv.logger.Info(ctx, "Realtime broker started")

	if svc.bridge != nil {
		if err := svc.bridge.Start(); err != nil {
			srv.logger.Errorf(ctx, "Failed to start PostgreSQL change bridge: %v", err)
			return err
		}
	}

	if err := svc.notifier.Start(ctx); err != nil {
		srv.logger.Errorf(ctx, "Failed to start alert notifier: %v", err)
		return err
	}

	go svc.hub.Run()
	srv.logger.Info(ctx, "Live session hub started")

	// 3. Start HTTP server in background
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}
	serveErr := serve(httpSrv)

	srv.logger.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	// 4. Wait for shutdown signal or a serve failure
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	runErr := waitForStop(serveErr, ch)
	if runErr != nil {
		srv.logger.Errorf(ctx, "HTTP server error: %v", runErr)
	}
	srv.logger.Info(ctx, "Stopping Polaris API...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}
	if err := svc.hub.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "Live hub shutdown error: %v", err)
	}
	if err := svc.notifier.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "Alert notifier shutdown error: %v", err)
	}
	if svc.bridge != nil {
		if err := svc.bridge.Shutdown(shutdownCtx); err != nil {
			srv.logger.Errorf(ctx, "PostgreSQL change bridge shutdown error: %v", err)
		}
	}
	if err := svc.broker.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "Realtime broker shutdown error: %v", err)
	}

	return runErr
}

// serve runs ListenAndServe in the background. The returned channel receives
// the error if the server stops for any reason other than Shutdown.
func serve(httpSrv *http.Server) <-chan error {
	serveErr := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	return serveErr
}

// waitForStop blocks until a signal arrives, returning nil, or the server
// fails, returning its error.
func waitForStop(serveErr <-chan error, sig <-chan os.Signal) error {
	select {
	case err := <-serveErr:
		return err
	case <-sig:
		return nil
	}
}
