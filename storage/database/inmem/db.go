package inmemdb

import (
	"sync"

	"github.com/iiskills/shiksha/core/otp"
	"github.com/iiskills/shiksha/core/user"
)

type (
	userTable struct {
		mutex sync.RWMutex
		table map[string]*user.User // keyed by phone number
	}

	otpTable struct {
		mutex sync.RWMutex
		table map[string]otp.Entry // keyed by phone number
	}

	// DB is the default storage backend: all state lives in process memory
	// and is lost on restart.
	DB struct {
		user *userTable
		otp  *otpTable
	}
)

func Open() *DB {
	return &DB{
		user: &userTable{table: make(map[string]*user.User)},
		otp:  &otpTable{table: make(map[string]otp.Entry)},
	}
}
