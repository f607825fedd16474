package resolver

import "context"

// InboundMessage is a single text message as delivered by the transport.
type InboundMessage struct {
	Text       string
	SenderName string
}

// Completer defines the interface for completion services the resolver can use
type Completer interface {
	Complete(ctx context.Context, userText string) (string, error)
}
