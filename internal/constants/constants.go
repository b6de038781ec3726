package constants

import "time"

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	// TokenLifetime is how long an issued bearer token stays valid.
	TokenLifetime = time.Hour

	// ContextKeyUser is the gin context key holding the resolved user.
	ContextKeyUser = "currentUser"
)
