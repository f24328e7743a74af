package otp

import "time"

// Entry is a pending one-time code. At most one live entry exists per phone
// number; issuing a new code overwrites any prior entry.
type Entry struct {
	PhoneNumber string
	Code        string
	ExpiresAt   time.Time // UTC
}

func (e Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
