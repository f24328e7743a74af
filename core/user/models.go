package user

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/iiskills/shiksha/core"
	"github.com/iiskills/shiksha/core/quiz"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Progress is owned exclusively by one User. QuizAttempts is append-only
// history; the other fields reflect only the most recent submission.
type Progress struct {
	CompletedModules  []int          `json:"completed_modules"`
	QuizScore         null.Int       `json:"quiz_score"`
	PassLevel         null.String    `json:"pass_level"`
	CertificateEarned bool           `json:"certificate_earned"`
	QuizAttempts      []quiz.Attempt `json:"quiz_attempts"`
}

func NewProgress() Progress {
	return Progress{
		CompletedModules: []int{},
		QuizAttempts:     []quiz.Attempt{},
	}
}

// User is identified by a 10-digit phone number; created on first successful
// OTP verification and never deleted.
type User struct {
	PhoneNumber   string        `json:"phone_number"`
	CreatedAt     time.Time     `json:"created_at"` // UTC
	PaymentStatus PaymentStatus `json:"payment_status"`
	Progress      Progress      `json:"progress"`
}

func (u *User) HasCompletedModule(moduleID int) bool {
	for _, id := range u.Progress.CompletedModules {
		if id == moduleID {
			return true
		}
	}
	return false
}

// Categorical user filters, as exposed on the admin search endpoint.
const (
	FilterCertified      = "certified"
	FilterNotCertified   = "not-certified"
	FilterPaid           = "paid"
	FilterPendingPayment = "pending-payment"
)

type QueryFilter struct {
	Search string `query:"query"`  // substring match on phone number
	Status string `query:"filter"` // one of the Filter* categories
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// Match applies the AND of the available filter fields to usr.
func (qf *QueryFilter) Match(usr User) bool {
	if qf.Search != "" && !strings.Contains(usr.PhoneNumber, qf.Search) {
		return false
	}
	switch qf.Status {
	case "":
	case FilterCertified:
		if !usr.Progress.CertificateEarned {
			return false
		}
	case FilterNotCertified:
		if usr.Progress.CertificateEarned {
			return false
		}
	case FilterPaid:
		if usr.PaymentStatus != PaymentCompleted {
			return false
		}
	case FilterPendingPayment:
		if usr.PaymentStatus != PaymentPending {
			return false
		}
	default:
		return false
	}
	return true
}
