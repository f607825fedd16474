package resolver

import (
	"github.com/hausabot/sannu/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Params for creating a Resolver
type Params struct {
	fx.In

	Config    *config.Config
	Completer Completer `optional:"true"`
	Logger    zerolog.Logger
}

// Result of creating a Resolver
type Result struct {
	fx.Out

	Resolver *Resolver
}

// New creates a new Resolver based on configuration
func New(p Params) Result {
	if p.Completer == nil {
		p.Logger.Info().Msg("no completion api key configured, replies use the local responder")
	}

	return Result{
		Resolver: NewResolver(p.Config, p.Completer, p.Logger),
	}
}

// Module provides the reply Resolver
func Module() fx.Option {
	return fx.Module(
		"resolver",
		fx.Provide(
			New,
		),
	)
}
