package domain

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("record already exists")
	ErrForbidden         = errors.New("user role does not permit this operation")
	ErrInvalidTransition = errors.New("leave status transition not allowed")
)
