package notification

import (
	"context"
	"fmt"
)

// NotificationClient delivers out-of-band notifications (currently email).
type NotificationClient interface {
	SendEmail(ctx context.Context, request EmailRequest) error
}

type EmailRequest struct {
	To      string
	Subject string
	Body    string
}

type NotificationError struct {
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
