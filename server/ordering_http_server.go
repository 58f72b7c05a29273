package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type OrderingHttpServer struct {
	router *Router
	srv    *http.Server
}

func NewOrderingHttpServer(router *Router, port int) *OrderingHttpServer {
	router.RegisterRoutes()
	return &OrderingHttpServer{
		router: router,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *OrderingHttpServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return eris.Wrapf(err, "listen on %s", s.srv.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *OrderingHttpServer) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("Starting server", zap.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return eris.Wrap(err, "serve")
	case <-ctx.Done():
	}

	zap.L().Info("Shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server forced to shutdown")
	}
	zap.L().Info("Server exiting")
	return nil
}
