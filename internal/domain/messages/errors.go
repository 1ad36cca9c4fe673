package messages

import "errors"

var (
	ErrEmptyContent     = errors.New("message content is required")
	ErrContentTooLong   = errors.New("message too long")
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrNoRecipients     = errors.New("no users to send message to")
)
