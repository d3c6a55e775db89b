package service

import "context"

// Email is one outbound transactional message.
type Email struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends transactional email through an external provider. Callers on
// the request path must treat failures as best-effort: log and continue, never
// propagate into the primary operation's error path.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}
