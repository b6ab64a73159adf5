package service

import (
	"fmt"
	"slices"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	"github.com/edgarbjorntvedt/mcp-random/internal/random"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "mcp-random"
	// tracerName scopes spans emitted by the tool middleware.
	tracerName = "github.com/edgarbjorntvedt/mcp-random/internal/services/mcp/service"
)

// Version identifies the MCP server release to clients and in traces.
const Version = "0.1.0"

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8081"). Defaults to localhost:8081 for HTTP transport.
	// AllowedHosts extends the loopback-only Host/Origin policy of the HTTP transport.
	AllowedHosts []string
	// AuthToken, when set, is required as a bearer token on HTTP requests.
	AuthToken string
	// MaxCount caps per-call counts and lengths; zero keeps the engine default.
	MaxCount int

	Logger zerolog.Logger
	// Source overrides the entropy source. Nil means the system's secure source.
	Source random.Source
	// Fatal is called when the entropy source fails. Nil logs at fatal level,
	// which exits the process.
	Fatal func(error)
	// TracerProvider overrides the global OpenTelemetry provider.
	TracerProvider trace.TracerProvider
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	engine    *engine.Engine
	logger    zerolog.Logger
	tracer    trace.Tracer
	fatal     func(error)
	tools     map[string]struct{}
	toolNames []string
}

// New creates a configured MCP server with every randomness tool registered.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	fatal := cfg.Fatal
	if fatal == nil {
		fatal = func(err error) {
			logger.Fatal().Err(err).Msg("entropy source unavailable")
		}
	}
	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	server := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{Name: serverName, Version: Version}, nil),
		engine:    engine.New(cfg.Source, engine.WithMaxCount(cfg.MaxCount)),
		logger:    logger,
		tracer:    provider.Tracer(tracerName),
		fatal:     fatal,
		tools:     make(map[string]struct{}),
	}

	for _, module := range newMCPRegistrationModules(server.engine) {
		if err := module.register(mcpServerRegistrationAdapter{server: server}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
		logger.Debug().Str("module", module.name).Msg("registered MCP module")
	}

	server.mcpServer.AddReceivingMiddleware(server.toolCallMiddleware)
	return server, nil
}

// ToolNames lists the registered tool names in registration order.
func (s *Server) ToolNames() []string {
	return slices.Clone(s.toolNames)
}
