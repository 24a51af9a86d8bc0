package domain

import "time"

// Client is an application allowed to request tokens.
type Client struct {
	ID         string
	Name       string
	SecretHash string
	Scopes     []string // wire form: "admin", "public", "developer"

	// RequestLimit is the hourly request allowance; zero is unlimited.
	RequestLimit uint32
	Protected    bool // bootstrap clients
	CreatedAt    time.Time
}
