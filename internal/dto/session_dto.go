package dto

import "time"

// SessionDTO is returned when a login token is exchanged and by the session check.
type SessionDTO struct {
	AccessToken string    `json:"access_token,omitempty"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
}
