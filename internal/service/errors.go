package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrCampaignRequired   = errors.New("campaign id is required")
	ErrClickIDRequired    = errors.New("click id is required")
	ErrSlugRequired       = errors.New("slug is required")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrCasinoRequired     = errors.New("casino id is required")
	ErrPasswordTooShort   = errors.New("password too short")
)
