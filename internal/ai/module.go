package ai

import (
	"github.com/hausabot/sannu/internal/config"
	"github.com/hausabot/sannu/internal/resolver"
	"go.uber.org/fx"
)

// Params for creating an AI service
type Params struct {
	fx.In

	Config *config.Config
}

// Result of creating an AI service
type Result struct {
	fx.Out

	Completer resolver.Completer
}

// New creates a new AI service based on configuration. Without an API key no
// completer is provided and the bot runs on the local responder alone.
func New(p Params) (Result, error) {
	if p.Config.APIKey == "" {
		return Result{}, nil
	}

	service, err := NewService(p.Config)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Completer: service,
	}, nil
}

// Module provides the AI service
func Module() fx.Option {
	return fx.Module(
		"ai",
		fx.Provide(
			New,
		),
	)
}
