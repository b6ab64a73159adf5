package service

import (
	"context"
	"fmt"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
	"github.com/edgarbjorntvedt/mcp-random/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

const (
	mcpIntegerToolsModuleName    = "integer-tools"
	mcpFloatToolsModuleName      = "float-tools"
	mcpCollectionToolsModuleName = "collection-tools"
	mcpIdentifierToolsModuleName = "identifier-tools"
)

type mcpServerRegistrationAdapter struct {
	server *Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	if _, exists := r.server.tools[tool.Name]; exists {
		return fmt.Errorf("tool %q is already registered", tool.Name)
	}
	if err := addMCPTool(r.server, tool, handler); err != nil {
		return err
	}
	r.server.tools[tool.Name] = struct{}{}
	r.server.toolNames = append(r.server.toolNames, tool.Name)
	return nil
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server.mcpServer, tool, guardToolErrors(server, tool.Name, handler.(mcp.ToolHandlerFor[I, O])))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.IntInput, domain.IntResult](),
	newMCPToolRegistrar[domain.FlipCoinInput, domain.FlipCoinResult](),
	newMCPToolRegistrar[domain.RollDiceInput, domain.RollDiceResult](),
	newMCPToolRegistrar[domain.FloatInput, domain.FloatResult](),
	newMCPToolRegistrar[domain.NormalInput, domain.NormalResult](),
	newMCPToolRegistrar[domain.ChoiceInput, domain.ChoiceResult](),
	newMCPToolRegistrar[domain.ShuffleInput, domain.ShuffleResult](),
	newMCPToolRegistrar[domain.SampleInput, domain.SampleResult](),
	newMCPToolRegistrar[domain.WeightedChoiceInput, domain.WeightedChoiceResult](),
	newMCPToolRegistrar[domain.PasswordInput, domain.PasswordResult](),
	newMCPToolRegistrar[domain.BytesInput, domain.BytesResult](),
	newMCPToolRegistrar[domain.UUIDInput, domain.UUIDResult](),
}

func addMCPTool(server *Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

// guardToolErrors logs failed tool calls and hands entropy failures to the
// server's fatal hook. A server that cannot draw secure bytes must not keep
// answering.
func guardToolErrors[I any, O any](server *Server, tool string, handler mcp.ToolHandlerFor[I, O]) mcp.ToolHandlerFor[I, O] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input I) (*mcp.CallToolResult, O, error) {
		result, out, err := handler(ctx, req, input)
		if err == nil {
			return result, out, err
		}
		code := apperrors.CodeOf(err)
		switch {
		case code.Fatal():
			server.fatal(err)
		case code.Recoverable():
			withErrorDetails(server.logger.Warn(), err).Str("tool", tool).Msg("tool call failed")
		default:
			withErrorDetails(server.logger.Error(), err).Str("tool", tool).Msg("tool call failed")
		}
		return result, out, err
	}
}

func newMCPRegistrationModules(e *engine.Engine) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpIntegerToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerIntegerTools(registrar, e)
			},
		},
		{
			name: mcpFloatToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerFloatTools(registrar, e)
			},
		},
		{
			name: mcpCollectionToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerCollectionTools(registrar, e)
			},
		},
		{
			name: mcpIdentifierToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerIdentifierTools(registrar, e)
			},
		},
	}
}
