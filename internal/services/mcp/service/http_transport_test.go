package service

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestHostPolicyCheck(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		origin       string
		allowedHosts []string
		wantErr      error
	}{
		{name: "localhost", host: "localhost:8081"},
		{name: "ipv4 loopback", host: "127.0.0.1:8081"},
		{name: "ipv6 loopback", host: "[::1]:8081"},
		{name: "loopback origin", host: "localhost:8081", origin: "http://localhost:3000"},
		{name: "other loopback address", host: "127.0.0.2:8081"},
		{name: "bracketed ipv6 without port", host: "[::1]"},
		{name: "uppercase localhost", host: "LOCALHOST:8081"},
		{name: "remote host", host: "example.com", wantErr: errInvalidHost},
		{name: "empty host", host: "", wantErr: errInvalidHost},
		{name: "foreign origin", host: "localhost:8081", origin: "https://evil.example", wantErr: errInvalidOrigin},
		{name: "origin without host", host: "localhost:8081", origin: "null", wantErr: errInvalidOrigin},
		{name: "allowed remote host", host: "mcp.internal:8081", allowedHosts: []string{"MCP.internal"}},
		{name: "allowed origin", host: "localhost", origin: "https://mcp.internal", allowedHosts: []string{" mcp.internal "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := NewHTTPTransport("", nil, WithAllowedHosts(tc.allowedHosts))
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			req.Host = tc.host
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if err := transport.hosts.check(req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("check = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewHTTPTransportDefaultsAddr(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	if transport.addr != defaultHTTPAddr {
		t.Fatalf("addr = %q, want %q", transport.addr, defaultHTTPAddr)
	}
}

func TestAuthorizeRequest(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantOK     bool
		wantStatus int
	}{
		{name: "no token configured", wantOK: true},
		{name: "valid bearer", token: "secret", header: "Bearer secret", wantOK: true},
		{name: "missing header", token: "secret", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", token: "secret", header: "Basic secret", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", token: "secret", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", token: "secret", header: "Bearer guess", wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := NewHTTPTransport("", nil, WithAuthToken(tc.token))
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			ok := transport.authorizeRequest(rec, req)
			if ok != tc.wantOK {
				t.Fatalf("authorizeRequest = %v, want %v", ok, tc.wantOK)
			}
			if tc.wantOK {
				return
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if rec.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Fatal("expected WWW-Authenticate: Bearer")
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	handler := NewHTTPTransport("", nil).Handler()

	tests := []struct {
		name       string
		method     string
		host       string
		wantStatus int
		wantBody   string
	}{
		{name: "ok", method: http.MethodGet, host: "localhost:8081", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "wrong method", method: http.MethodPost, host: "localhost:8081", wantStatus: http.StatusMethodNotAllowed},
		{name: "remote host", method: http.MethodGet, host: "example.com", wantStatus: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/mcp/health", nil)
			req.Host = tc.host
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
				t.Fatalf("body = %q, want %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestGuardRejectsBeforeMCPHandling(t *testing.T) {
	server := newTestServer(t, Config{})
	handler := NewHTTPTransport("", server.mcpServer, WithAuthToken("secret")).Handler()

	tests := []struct {
		name       string
		origin     string
		auth       string
		wantStatus int
	}{
		{name: "foreign origin", origin: "https://evil.example", auth: "Bearer secret", wantStatus: http.StatusForbidden},
		{name: "missing token", wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			req.Host = "localhost:8081"
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

// bearerRoundTripper adds a bearer token to every outgoing request.
type bearerRoundTripper struct {
	token string
	base  http.RoundTripper
}

func (b bearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(clone)
}

func TestStreamableHTTPEndToEnd(t *testing.T) {
	server := newTestServer(t, Config{})
	transport := NewHTTPTransport("", server.mcpServer, WithAuthToken("secret"))
	httpServer := httptest.NewServer(transport.Handler())
	defer httpServer.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), &mcp.StreamableClientTransport{
		Endpoint: httpServer.URL + "/mcp",
		HTTPClient: &http.Client{
			Transport: bearerRoundTripper{token: "secret", base: http.DefaultTransport},
		},
		MaxRetries: 1,
	}, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer session.Close()

	result := callTool(t, session, "random_int", map[string]any{"min": 42, "max": 42})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", textOf(t, result))
	}
	if text := textOf(t, result); text != "42" {
		t.Fatalf("expected 42, got %q", text)
	}
}

func TestStreamableHTTPRejectsMissingToken(t *testing.T) {
	server := newTestServer(t, Config{})
	httpServer := httptest.NewServer(NewHTTPTransport("", server.mcpServer, WithAuthToken("secret")).Handler())
	defer httpServer.Close()

	resp, err := http.Post(httpServer.URL+"/mcp", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	server := newTestServer(t, Config{})
	transport := NewHTTPTransport("127.0.0.1:0", server.mcpServer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- transport.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not stop after cancel")
	}
}

func TestStartReportsListenFailure(t *testing.T) {
	original := listenTCP
	t.Cleanup(func() { listenTCP = original })
	listenTCP = func(string, string) (net.Listener, error) {
		return nil, &net.OpError{Op: "listen", Net: "tcp", Err: io.ErrClosedPipe}
	}

	err := NewHTTPTransport("127.0.0.1:0", nil).Start(context.Background())
	if err == nil {
		t.Fatal("expected listen error")
	}
}
