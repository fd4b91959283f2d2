package mail

import "errors"

var (
	// ErrSendFailed is returned when the SMTP exchange fails
	ErrSendFailed = errors.New("mail client: failed to send message")

	// ErrRenderTemplate is returned when an email body cannot be rendered
	ErrRenderTemplate = errors.New("mail client: failed to render template")
)
