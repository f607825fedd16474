package bot

import (
	"context"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/hausabot/sannu/internal/config"
	"github.com/hausabot/sannu/internal/resolver"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config   *config.Config
	Resolver *resolver.Resolver
}

type Result struct {
	fx.Out

	Bot *tbot.Bot
}

func New(lc fx.Lifecycle, p Params, log zerolog.Logger) (Result, error) {
	opts := []tbot.Option{
		tbot.WithMessageTextHandler("/start", tbot.MatchTypePrefix, handleStart),
		tbot.WithMessageTextHandler("/help", tbot.MatchTypePrefix, handleHelp),
		tbot.WithMessageTextHandler("/echo", tbot.MatchTypePrefix, handleEcho),
		tbot.WithDefaultHandler(
			func(ctx context.Context, tg *tbot.Bot, update *models.Update) {
				handleMessage(ctx, tg, update, p.Resolver, &log)
			},
		),
	}

	tg, err := tbot.New(p.Config.Token, opts...)
	if err != nil {
		return Result{}, err
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				log.Info().Msg("starting telegram bot...")
				go tg.Start(context.Background())
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info().Msg("stopping telegram bot...")
				return nil
			},
		},
	)

	return Result{
		Bot: tg,
	}, nil
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(bot *tbot.Bot) {},
		),
	)
}

func handleMessage(
	ctx context.Context,
	tg *tbot.Bot,
	update *models.Update,
	res *resolver.Resolver,
	log *zerolog.Logger,
) {
	// Guard against nil message
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	// Guard against nil user
	if update.Message.From == nil {
		log.Warn().Int64("chat_id", chatID).Msg("received message without user info")
		return
	}

	senderName := update.Message.From.FirstName
	if senderName == "" {
		senderName = "User"
	}

	// Typing indicator is best-effort and only meaningful while a completion
	// call is in flight.
	if res.CompletionEnabled() {
		tg.SendChatAction(ctx, &tbot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionTyping,
		})
	}

	reply := res.Resolve(ctx, resolver.InboundMessage{
		Text:       update.Message.Text,
		SenderName: senderName,
	})

	if _, err := tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID: chatID,
		Text:   reply,
	}); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to send reply")
	}
}
