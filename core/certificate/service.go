package certificate

import (
	"errors"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/iiskills/shiksha/core/user"
)

// ErrNotEarned is returned when the user exists but has not passed the quiz.
var ErrNotEarned = errors.New("certificate not earned")

var NowFunc = time.Now // mockable

// Certificate is derived from a user's current progress on demand; it is never
// stored. Issuing twice yields two certificates with distinct serial numbers.
type Certificate struct {
	HolderPhone  string      `json:"holder_phone"`
	CourseName   string      `json:"course_name"`
	IssuedAt     time.Time   `json:"issued_at"` // UTC
	Score        null.Int    `json:"score"`
	PassLevel    null.String `json:"pass_level"`
	SerialNumber string      `json:"serial_number"`
}

type Service struct {
	users      *user.Service
	courseName string
}

func NewService(users *user.Service, courseName string) *Service {
	return &Service{users: users, courseName: courseName}
}

// Issue builds a certificate for the user registered under phone. It fails
// with user.ErrNotFound for unknown users and ErrNotEarned for users whose
// latest quiz attempt did not reach a pass level.
func (svc *Service) Issue(phone string) (Certificate, error) {
	usr, err := svc.users.GetByPhone(phone)
	if err != nil {
		return Certificate{}, err
	}
	if !usr.Progress.CertificateEarned {
		return Certificate{}, ErrNotEarned
	}

	now := NowFunc().UTC()
	return Certificate{
		HolderPhone:  usr.PhoneNumber,
		CourseName:   svc.courseName,
		IssuedAt:     now,
		Score:        usr.Progress.QuizScore,
		PassLevel:    usr.Progress.PassLevel,
		SerialNumber: serialNumber(usr.PhoneNumber, now),
	}, nil
}

func serialNumber(phone string, now time.Time) string {
	millis := now.UnixNano() / int64(time.Millisecond)
	return fmt.Sprintf("CERT-%s-%d", phone, millis)
}
