package service

import (
	"fmt"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	"github.com/edgarbjorntvedt/mcp-random/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

func registerIntegerTools(registrar mcpRegistrationTarget, e *engine.Engine) error {
	if err := registerTool(registrar, domain.IntTool(), domain.IntHandler(e)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.FlipCoinTool(), domain.FlipCoinHandler(e)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.RollDiceTool(), domain.RollDiceHandler(e)); err != nil {
		return err
	}
	return nil
}

func registerFloatTools(registrar mcpRegistrationTarget, e *engine.Engine) error {
	if err := registerTool(registrar, domain.FloatTool(), domain.FloatHandler(e)); err != nil {
		return err
	}
	return registerTool(registrar, domain.NormalTool(), domain.NormalHandler(e))
}

func registerCollectionTools(registrar mcpRegistrationTarget, e *engine.Engine) error {
	if err := registerTool(registrar, domain.ChoiceTool(), domain.ChoiceHandler(e)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.ShuffleTool(), domain.ShuffleHandler(e)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.SampleTool(), domain.SampleHandler(e)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.WeightedChoiceTool(), domain.WeightedChoiceHandler(e)); err != nil {
		return err
	}
	return nil
}

func registerIdentifierTools(registrar mcpRegistrationTarget, e *engine.Engine) error {
	if err := registerTool(registrar, domain.UUIDTool(), domain.UUIDHandler(e)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.BytesTool(), domain.BytesHandler(e)); err != nil {
		return err
	}
	if err := registerTool(registrar, domain.PasswordTool(), domain.PasswordHandler(e)); err != nil {
		return err
	}
	return nil
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}
