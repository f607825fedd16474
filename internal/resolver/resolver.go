package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hausabot/sannu/internal/config"
	"github.com/rs/zerolog"
)

const truncationMarker = "\n\n[truncated]"

// truncationReserve is how many characters are cut below the limit before the
// marker is appended, so the marker itself never pushes the reply back over.
const truncationReserve = 96

// Resolver turns an inbound message into exactly one outbound reply. When a
// completer is configured it gets a single attempt; any failure degrades to
// the local keyword responder and is never surfaced to the user.
type Resolver struct {
	completer    Completer
	timeout      time.Duration
	maxReplyLen  int
	keywords     []string
	hausaReply   string
	englishReply string
	log          zerolog.Logger
}

// NewResolver creates a Resolver. completer may be nil, in which case every
// message is answered by the local responder.
func NewResolver(cfg *config.Config, completer Completer, log zerolog.Logger) *Resolver {
	return &Resolver{
		completer:    completer,
		timeout:      cfg.CompletionTimeout,
		maxReplyLen:  cfg.MaxReplyLength,
		keywords:     cfg.Keywords,
		hausaReply:   cfg.Prompts.HausaReply,
		englishReply: cfg.Prompts.EnglishReply,
		log:          log,
	}
}

// CompletionEnabled reports whether a completion service is configured. The
// transport uses it to decide whether to show a typing indicator.
func (r *Resolver) CompletionEnabled() bool {
	return r.completer != nil
}

// Resolve produces the outbound reply for msg. It never fails and never
// returns an empty string.
func (r *Resolver) Resolve(ctx context.Context, msg InboundMessage) string {
	if r.completer != nil {
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		reply, err := r.completer.Complete(cctx, msg.Text)
		cancel()

		switch {
		case err != nil:
			r.log.Warn().Err(err).Msg("completion failed, using local responder")
		case reply == "":
			r.log.Warn().Msg("completion returned no text, using local responder")
		default:
			return r.clamp(reply)
		}
	}

	return r.fallback(msg)
}

// clamp enforces the reply length limit, cutting well below it and appending
// a marker so the user can tell the answer was cut short.
func (r *Resolver) clamp(reply string) string {
	runes := []rune(reply)
	if len(runes) <= r.maxReplyLen {
		return reply
	}
	return string(runes[:r.maxReplyLen-truncationReserve]) + truncationMarker
}

// fallback answers without the completion service: a Hausa acknowledgment
// when the text contains a known Hausa keyword, an English echo otherwise.
// The keyword test is a plain substring match on the lower-cased text.
func (r *Resolver) fallback(msg InboundMessage) string {
	lower := strings.ToLower(msg.Text)
	for _, kw := range r.keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return fmt.Sprintf(r.hausaReply, msg.SenderName, msg.Text)
		}
	}
	return fmt.Sprintf(r.englishReply, msg.Text)
}
