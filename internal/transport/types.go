package transport

import "context"

// ChatTarget identifies the destination chat. ThreadID is the telegram forum
// topic thread id (0 if none).
type ChatTarget struct {
	ChatID   int64
	ThreadID int
}

type MessageRef struct {
	ChatID    int64
	ThreadID  int
	MessageID int
}

type SendOptions struct {
	ParseMode      string
	DisablePreview bool
}

// Adapter is the outbound messaging surface. hwbot only ever sends; it never
// consumes incoming updates, so the adapter does not run a poller.
type Adapter interface {
	SendText(ctx context.Context, to ChatTarget, text string, opt *SendOptions) (MessageRef, error)
}
