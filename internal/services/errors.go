package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFormat             = errors.New("invalid import format")
	ErrForbidden          = errors.New("forbidden")
	ErrBackupUnavailable  = errors.New("cloud backup is not configured")
)
