package model

import "time"

// Dealer represents a wholesale customer account.
type Dealer struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
