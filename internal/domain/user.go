package domain

import "time"

// User is the domain entity for an account.
type User struct {
	ID           int64
	Email        string
	Username     string
	DisplayName  string
	PasswordHash string

	Avatar   string
	Bio      string
	Location string
	Website  string

	NotificationsEnabled bool
	Subscription         Subscription

	// LastForgotRequest is the calendar day (in the configured zone) of the
	// last temporary-password request. Empty if never requested.
	LastForgotRequest string

	JoinedAt time.Time
}

// LoginRecord captures a single successful login event.
// Records are append-only; storage keeps them oldest first.
type LoginRecord struct {
	ID        int64
	UserID    int64
	Browser   string
	OS        string
	Device    string
	IPAddress string
	LoginTime time.Time
}
