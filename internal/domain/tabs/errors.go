package tabs

import "errors"

var (
	ErrTabExists    = errors.New("tab already exists for this role group")
	ErrInvalidRole  = errors.New("invalid role group")
	ErrEmptyTab     = errors.New("tab name and key are required")
	ErrNotPermitted = errors.New("not permitted to manage tabs for this role group")
)
