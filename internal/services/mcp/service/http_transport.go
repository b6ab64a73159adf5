package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/edgarbjorntvedt/mcp-random/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

var listenTCP = net.Listen

// defaultHTTPAddr keeps the HTTP transport bound to loopback unless told otherwise.
const defaultHTTPAddr = "localhost:8081"

// HTTPTransport serves MCP over the SDK's streamable HTTP handler.
//
// Every request to /mcp passes the same guards: Host and Origin must name a
// loopback or explicitly allowed host, and when a token is configured the
// request must carry it as a bearer token.
type HTTPTransport struct {
	addr       string
	hosts      hostPolicy
	apiToken   string
	server     *mcp.Server
	logger     zerolog.Logger
	httpServer *http.Server
}

// HTTPTransportOption configures an HTTPTransport.
type HTTPTransportOption func(*HTTPTransport)

// WithAllowedHosts permits extra Host/Origin values beyond loopback.
func WithAllowedHosts(hosts []string) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.hosts = newHostPolicy(hosts)
	}
}

// WithAuthToken requires a bearer token on every MCP request.
func WithAuthToken(token string) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.apiToken = token
	}
}

// WithLogger sets the access logger.
func WithLogger(logger zerolog.Logger) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.logger = logger
	}
}

// NewHTTPTransport creates a transport serving server on addr.
// It defaults to localhost-only binding.
func NewHTTPTransport(addr string, server *mcp.Server, opts ...HTTPTransportOption) *HTTPTransport {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	t := &HTTPTransport{
		addr:   addr,
		hosts:  newHostPolicy(nil),
		server: server,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Handler returns the HTTP handler with /mcp and /mcp/health routes.
func (t *HTTPTransport) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", t.guard(streamable))
	mux.HandleFunc("/mcp/health", t.handleHealth)

	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("http request")
	})
	return hlog.NewHandler(t.logger)(
		hlog.RequestIDHandler("req_id", "Request-Id")(
			access(mux),
		),
	)
}

// guard applies host validation and token auth before MCP handling.
func (t *HTTPTransport) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := t.hosts.check(r); err != nil {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		if !t.authorizeRequest(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start starts the HTTP server and blocks until ctx is cancelled or the
// server fails.
func (t *HTTPTransport) Start(ctx context.Context) error {
	t.httpServer = &http.Server{
		Addr:              t.addr,
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	t.logger.Info().Str("addr", listener.Addr().String()).Msg("starting MCP HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		t.logger.Info().Msg("shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}
