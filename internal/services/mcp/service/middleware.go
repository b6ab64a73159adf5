package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
	"github.com/edgarbjorntvedt/mcp-random/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const methodCallTool = "tools/call"

// toolCallMiddleware traces and logs every tools/call request. Calls naming
// an unregistered tool, and calls whose arguments fail the tool's input
// schema, are answered with a tool error instead of a JSON-RPC error, so
// every failed tools/call reaches the client as "Error: ..." text.
func (s *Server) toolCallMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if method != methodCallTool {
			return next(ctx, method, req)
		}
		call, ok := req.(*mcp.CallToolRequest)
		if !ok || call.Params == nil {
			return next(ctx, method, req)
		}

		name := call.Params.Name
		ctx, span := s.tracer.Start(ctx, methodCallTool+" "+name,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool", name)),
		)
		defer span.End()
		start := time.Now()

		if _, known := s.tools[name]; !known {
			err := apperrors.WithMetadata(
				apperrors.CodeUnknownOperation,
				fmt.Sprintf("unknown operation %q", name),
				map[string]string{"tool": name},
			)
			withErrorDetails(s.logger.Warn(), err).Str("tool", name).Msg("unknown tool requested")
			return s.failedCall(span, err), nil
		}

		result, err := next(ctx, method, req)
		elapsed := time.Since(start)
		if err != nil {
			if invalid, ok := invalidArguments(name, err); ok {
				withErrorDetails(s.logger.Warn(), invalid).Str("tool", name).Dur("duration", elapsed).Msg("tool arguments rejected")
				return s.failedCall(span, invalid), nil
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.Warn().Err(err).Str("tool", name).Dur("duration", elapsed).Msg("tool call rejected")
			return result, err
		}

		isError := false
		if toolResult, ok := result.(*mcp.CallToolResult); ok && toolResult.IsError {
			isError = true
			span.SetStatus(codes.Error, toolResultText(toolResult))
		}
		span.SetAttributes(attribute.Bool("mcp.tool.error", isError))
		s.logger.Debug().Str("tool", name).Bool("is_error", isError).Dur("duration", elapsed).Msg("tool call")
		return result, nil
	}
}

// failedCall marks span as failed and wraps err as a tool error result.
func (s *Server) failedCall(span trace.Span, err error) *mcp.CallToolResult {
	toolErr := &domain.ToolError{Err: err}
	span.SetStatus(codes.Error, toolErr.Error())
	span.SetAttributes(attribute.Bool("mcp.tool.error", true))
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: toolErr.Error()}},
		IsError: true,
	}
}

// invalidArguments converts the SDK's invalid-params error for a registered
// tool into an INVALID_ARGUMENTS error.
func invalidArguments(tool string, err error) (*apperrors.Error, bool) {
	var wire *jsonrpc.Error
	if !errors.As(err, &wire) || wire.Code != jsonrpc.CodeInvalidParams {
		return nil, false
	}
	message := err.Error()
	if trimmed, ok := strings.CutPrefix(message, wire.Message+": "); ok {
		message = trimmed
	}
	return apperrors.WithMetadata(apperrors.CodeInvalidArguments,
		"invalid arguments: "+message,
		map[string]string{"tool": tool}), true
}

// withErrorDetails attaches err, its code and its metadata to event.
func withErrorDetails(event *zerolog.Event, err error) *zerolog.Event {
	event = event.Err(err)
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		return event
	}
	event = event.Str("code", string(appErr.Code))
	if len(appErr.Metadata) > 0 {
		metadata := zerolog.Dict()
		for key, value := range appErr.Metadata {
			metadata = metadata.Str(key, value)
		}
		event = event.Dict("metadata", metadata)
	}
	return event
}

func toolResultText(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
