package bot

import (
	"context"
	"strings"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const startText = "Assalamu alaikum! 👋\n" +
	"Ni bot ne — zan iya tattaunawa da kai.\n\n" +
	"Commands:\n" +
	"/help - taimako\n\n" +
	"Just send me any message and I'll reply. (If you set OPENAI_API_KEY the bot replies using OpenAI.)"

const helpText = "Help:\n" +
	"• Send any text and I'll reply.\n" +
	"• I can speak Hausa and English.\n" +
	"Note: for smarter replies set the OPENAI_API_KEY environment variable."

const echoUsage = "Usage: /echo your message"

func handleStart(ctx context.Context, tg *tbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   startText,
	})
}

func handleHelp(ctx context.Context, tg *tbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText,
	})
}

func handleEcho(ctx context.Context, tg *tbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := echoUsage
	if args := echoArgs(update.Message.Text); args != "" {
		text = args
	}

	tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}

// echoArgs extracts the arguments of an /echo command, tolerating the
// /echo@botname form used in group chats.
func echoArgs(text string) string {
	rest := strings.TrimPrefix(text, "/echo")
	if strings.HasPrefix(rest, "@") {
		i := strings.IndexAny(rest, " \n")
		if i < 0 {
			return ""
		}
		rest = rest[i:]
	}
	return strings.TrimSpace(rest)
}
