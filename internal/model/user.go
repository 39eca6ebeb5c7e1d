package model

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered account. Users are also the owners of items.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ValidateEmail performs a shape check only. Emails are stored as given:
// no trimming, no case folding.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email must look like name@domain")
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return fmt.Errorf("email must not contain whitespace")
	}
	return nil
}

// ValidatePassword checks that a plaintext password is acceptable.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password required")
	}
	// bcrypt ignores everything past 72 bytes.
	if len(password) > 72 {
		return fmt.Errorf("password must be at most 72 bytes")
	}
	return nil
}
