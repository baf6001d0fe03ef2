package queue

import "context"

// Sender publishes a message body to a named queue.
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
}
