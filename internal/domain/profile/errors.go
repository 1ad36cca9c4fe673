package profile

import "errors"

var (
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrWeakPassword  = errors.New("new password too short")
	ErrNotAnImage    = errors.New("profile picture must be an image")
)
