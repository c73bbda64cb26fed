package services

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrEmailNotAllowed = errors.New("this email is not authorized to access this application")
	ErrBoxNotFound     = errors.New("box not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrCleaningRunning = errors.New("cleaning is in progress")
	ErrInvalidRedirect = errors.New("redirect target is not allowed")
)
