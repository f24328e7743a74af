package admin

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/iiskills/shiksha/core"
	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLength = 6

// Stats is a point-in-time aggregation over all registered users.
type Stats struct {
	TotalUsers         int `json:"total_users"`
	PaidUsers          int `json:"paid_users"`
	CertifiedUsers     int `json:"certified_users"`
	GoldCertificates   int `json:"gold_certificates"`
	SilverCertificates int `json:"silver_certificates"`
	BronzeCertificates int `json:"bronze_certificates"`
	TotalQuizAttempts  int `json:"total_quiz_attempts"`
}

// Service guards the admin surface behind a single shared password. The hash
// is seeded from configuration; ChangePassword replaces it in-process only.
type Service struct {
	users        *user.Service
	passwordHash []byte
}

func NewService(users *user.Service, passwordHash string) *Service {
	return &Service{users: users, passwordHash: []byte(passwordHash)}
}

func (svc *Service) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword(svc.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword verifies currentPassword and installs newPassword. The change
// does not survive a restart; the configured hash applies again on boot.
func (svc *Service) ChangePassword(currentPassword, newPassword string) error {
	if err := svc.Authenticate(currentPassword); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return core.NewValidationError(
			errors.New("password too short"),
			core.FieldError{Field: "new_password", Error: "must be at least 6 characters"},
		)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkgerrors.Wrap(err, "hashing password")
	}
	svc.passwordHash = hash
	return nil
}

// Stats aggregates over the full user set in one pass.
func (svc *Service) Stats() (Stats, error) {
	users, err := svc.users.QueryAll()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalUsers: len(users)}
	for _, usr := range users {
		if usr.PaymentStatus == user.PaymentCompleted {
			stats.PaidUsers++
		}
		if usr.Progress.CertificateEarned {
			stats.CertifiedUsers++
		}
		switch usr.Progress.PassLevel.String {
		case quiz.TierGold:
			stats.GoldCertificates++
		case quiz.TierSilver:
			stats.SilverCertificates++
		case quiz.TierBronze:
			stats.BronzeCertificates++
		}
		stats.TotalQuizAttempts += len(usr.Progress.QuizAttempts)
	}
	return stats, nil
}

// SearchUsers applies filter to the user set; an empty filter returns all.
func (svc *Service) SearchUsers(filter user.QueryFilter) ([]user.User, error) {
	if filter.IsEmpty() {
		return svc.users.QueryAll()
	}
	return svc.users.Filter(filter)
}

var csvHeader = []string{
	"Phone Number", "Created At", "Payment Status", "Completed Modules",
	"Quiz Score", "Pass Level", "Certificate Earned", "Quiz Attempts",
}

// WriteCSV streams all users to w as a CSV report, one row per user.
func (svc *Service) WriteCSV(w io.Writer) error {
	users, err := svc.users.QueryAll()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return pkgerrors.Wrap(err, "writing header")
	}
	for _, usr := range users {
		if err := cw.Write(csvRow(usr)); err != nil {
			return pkgerrors.Wrap(err, "writing row")
		}
	}
	cw.Flush()
	return pkgerrors.Wrap(cw.Error(), "flushing")
}

func csvRow(usr user.User) []string {
	score := "N/A"
	if usr.Progress.QuizScore.Valid {
		score = strconv.FormatInt(int64(usr.Progress.QuizScore.Int), 10)
	}
	level := "N/A"
	if usr.Progress.PassLevel.Valid {
		level = usr.Progress.PassLevel.String
	}
	certified := "No"
	if usr.Progress.CertificateEarned {
		certified = "Yes"
	}
	return []string{
		usr.PhoneNumber,
		usr.CreatedAt.Format("2006-01-02 15:04:05"),
		string(usr.PaymentStatus),
		strconv.Itoa(len(usr.Progress.CompletedModules)),
		score,
		level,
		certified,
		strconv.Itoa(len(usr.Progress.QuizAttempts)),
	}
}
