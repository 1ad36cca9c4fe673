package admin

import "errors"

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidRole   = errors.New("invalid role")
	ErrWeakPassword  = errors.New("password too short")
	ErrSelfDelete    = errors.New("cannot delete your own account")
)
