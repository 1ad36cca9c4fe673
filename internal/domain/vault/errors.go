package vault

import "errors"

var (
	ErrNotFound        = errors.New("not found in vault")
	ErrWrongPassword   = errors.New("invalid vault password")
	ErrNotPermitted    = errors.New("vault access denied")
	ErrTabExists       = errors.New("vault category already exists")
	ErrEmptyTab        = errors.New("tab name and key are required")
	ErrUnknownCategory = errors.New("invalid category for vault")
	ErrFolderExists    = errors.New("vault folder already exists")
	ErrInvalidFolder   = errors.New("name, path and category are required")
	ErrEmptyUpload     = errors.New("file and category are required")
	ErrEmptyComment    = errors.New("comment content is required")
)
