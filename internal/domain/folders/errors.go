package folders

import "errors"

var (
	ErrFolderExists    = errors.New("folder already exists")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrInvalidFolder   = errors.New("name, path, category and role group are required")
	ErrUnknownCategory = errors.New("unknown category for this role group")
	ErrNotPermitted    = errors.New("not permitted")
)
