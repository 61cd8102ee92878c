package models

import "time"

// Session identifies a user signed in through the identity provider.
type Session struct {
	Subject     string    `json:"subject"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}
