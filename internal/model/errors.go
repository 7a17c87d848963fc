package model

import "errors"

// Storage-level errors. Repositories wrap or return these so usecases can
// translate them into their own sentinels.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
