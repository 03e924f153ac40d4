package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")
	ErrProductNotFound    = errors.New("models: product not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrCategoryNotFound   = errors.New("models: category not found")
	ErrSessionNotFound    = errors.New("models: session not found")
	ErrInvalidPage        = errors.New("models: page must be a positive integer")
	ErrInvalidLimit       = errors.New("models: limit must be between 1 and 100")
)
