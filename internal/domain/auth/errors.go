package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionExpired     = errors.New("session expired")
	ErrUnauthenticated    = errors.New("not authenticated")
)
