package service

import (
	"crypto/subtle"
	"errors"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
)

var (
	errInvalidHost   = errors.New("invalid host")
	errInvalidOrigin = errors.New("invalid origin")
)

// hostPolicy decides which Host and Origin values may reach the server.
// Loopback names and addresses are always allowed; anything else must be
// listed explicitly. Checking both headers blocks DNS-rebinding pages from
// driving a locally bound server.
type hostPolicy struct {
	allowed map[string]struct{}
}

func newHostPolicy(hosts []string) hostPolicy {
	allowed := make(map[string]struct{}, len(hosts))
	for _, entry := range hosts {
		if name, ok := hostName(entry); ok {
			allowed[name] = struct{}{}
		}
	}
	return hostPolicy{allowed: allowed}
}

// check validates the request's Host header and, when present, its Origin.
func (p hostPolicy) check(r *http.Request) error {
	if r == nil || !p.allows(r.Host) {
		return errInvalidHost
	}
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return nil
	}
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" || !p.allows(parsed.Host) {
		return errInvalidOrigin
	}
	return nil
}

func (p hostPolicy) allows(hostport string) bool {
	name, ok := hostName(hostport)
	if !ok {
		return false
	}
	if name == "localhost" {
		return true
	}
	if addr, err := netip.ParseAddr(name); err == nil && addr.IsLoopback() {
		return true
	}
	_, ok = p.allowed[name]
	return ok
}

// hostName lowercases a Host/Origin value and strips its port and IPv6
// brackets.
func hostName(hostport string) (string, bool) {
	hostport = strings.ToLower(strings.TrimSpace(hostport))
	if hostport == "" {
		return "", false
	}
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		hostport = host
	} else if strings.Count(hostport, ":") == 1 {
		return "", false
	}
	hostport = strings.TrimSuffix(strings.TrimPrefix(hostport, "["), "]")
	return hostport, hostport != ""
}

// authorizeRequest checks the bearer token when one is configured.
func (t *HTTPTransport) authorizeRequest(w http.ResponseWriter, r *http.Request) bool {
	if t.apiToken == "" {
		return true
	}
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		t.writeUnauthorized(w, "authorization required")
		return false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(t.apiToken)) != 1 {
		t.writeUnauthorized(w, "invalid access token")
		return false
	}
	return true
}

func (t *HTTPTransport) writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, message, http.StatusUnauthorized)
}

// handleHealth answers GET /mcp/health with "OK".
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := t.hosts.check(r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		t.logger.Warn().Err(err).Msg("failed to write health response")
	}
}
