package chat

import "errors"

var (
	ErrEmptyContent   = errors.New("message content is required")
	ErrContentTooLong = errors.New("message too long")
)
