package interfaces

import "context"

// EmailPart is one attachment of an outgoing notification email.
type EmailPart struct {
	Filename string
	MimeType string
	Data     []byte
}

// Email is the transport-agnostic message the pipeline hands to the
// notifier. ReplyTo is optional (owner address when known).
type Email struct {
	To          string
	From        string
	ReplyTo     string
	Subject     string
	Text        string
	HTML        string
	Attachments []EmailPart
}

// INotifier delivers a notification email with attachments. It may fail
// independently of persistence; no delivery confirmation is expected beyond
// a nil return.

type INotifier interface {
	Send(ctx context.Context, m Email) error
}
