package models

import "time"

// User represents a user account in the system.
// Accounts are never physically removed; DeletionDate marks them inactive.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // Never expose this to the client
	IsAdmin      bool       `json:"isAdmin"`
	DeletionDate *time.Time `json:"deletionDate,omitempty"`
	UpdateDate   *time.Time `json:"updateDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Deleted reports whether the account has been soft-deleted.
func (u User) Deleted() bool {
	return u.DeletionDate != nil
}
