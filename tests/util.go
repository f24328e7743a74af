package testutil

import (
	"testing"
	"time"

	"github.com/iiskills/shiksha/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	phone string,
	status user.PaymentStatus,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		PhoneNumber:   phone,
		CreatedAt:     tstamp,
		PaymentStatus: status,
		Progress:      user.NewProgress(),
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

// NopLogger discards everything; for wiring services in tests.
type NopLogger struct{}

func (NopLogger) Debug(msg string, args ...interface{}) {}
func (NopLogger) Info(msg string, args ...interface{})  {}
func (NopLogger) Warn(msg string, args ...interface{})  {}
func (NopLogger) Error(msg string, args ...interface{}) {}
func (NopLogger) Fatal(msg string, args ...interface{}) {}
