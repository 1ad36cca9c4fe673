package files

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrUnknownCategory = errors.New("unknown category for this role group")
	ErrInvalidStatus   = errors.New("status must be pending, approved or rejected")
	ErrEmptyComment    = errors.New("comment content is required")
	ErrNotPermitted    = errors.New("not permitted")
	ErrEmptyUpload     = errors.New("no file provided")
)
