package inventory

import "errors"

var (
	// ErrValidation marks an empty required field.
	ErrValidation = errors.New("validation failed")
	// ErrAuthorization marks an email outside the allow-list.
	ErrAuthorization = errors.New("not authorized")
	// ErrNotFound marks a box or item that cannot be resolved.
	ErrNotFound = errors.New("not found")
	// ErrRemote wraps any failure reported by the identity provider or the remote store.
	ErrRemote = errors.New("remote call failed")
)
