package ports

import "context"

// Notification is a single outbound email.
type Notification struct {
	To       string
	Subject  string
	HTMLBody string
}

// Notifier delivers one notification synchronously. Implementations must be
// time-bounded by ctx.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotificationQueue accepts notifications for asynchronous best-effort
// delivery. Enqueue never blocks the caller and never reports an error:
// delivery failures are the consumer's problem, logged and counted there.
// Producers enqueue only after their own durable write has succeeded.
type NotificationQueue interface {
	Enqueue(n Notification)
}
