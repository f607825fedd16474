package main

import (
	"github.com/hausabot/sannu/internal/ai"
	"github.com/hausabot/sannu/internal/bot"
	"github.com/hausabot/sannu/internal/config"
	"github.com/hausabot/sannu/internal/log"
	"github.com/hausabot/sannu/internal/resolver"
	"github.com/ipfans/fxlogger"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	_ = godotenv.Load()

	logger := log.NewLogger()

	fx.New(
		fx.Supply(logger),
		fx.WithLogger(fxlogger.WithZerolog(logger)),
		config.Module(),
		ai.Module(),
		resolver.Module(),
		bot.Module(),
	).Run()
}
