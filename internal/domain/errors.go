package domain

import "errors"

var (
	// ErrAlreadyExists is wrapped by repositories when a unique constraint rejects an insert.
	ErrAlreadyExists = errors.New("already exists")
	ErrOutOfStock    = errors.New("out of stock")
)
