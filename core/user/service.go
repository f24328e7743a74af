package user

import (
	"errors"
	"time"

	"github.com/iiskills/shiksha/core/quiz"
)

var (
	ErrNotFound = errors.New("user not found")

	NowFunc = time.Now // mockable
)

type (
	// Repository operations are each atomic with respect to a single user
	// record; cross-key transactions are not required.
	Repository interface {
		// CreateUser stores usr, or returns the existing record untouched
		// if the phone number is already registered.
		CreateUser(usr User) (User, error)
		GetUserByPhone(phone string) (User, error)
		QueryAllUsers() ([]User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a substring match on User.PhoneNumber.
		FilterUsers(filter QueryFilter) ([]User, error)
		// CompleteModule adds moduleID to the completed set if not already
		// present. Idempotent.
		CompleteModule(phone string, moduleID int) (User, error)
		SetPaymentStatus(phone string, status PaymentStatus) (User, error)
		// AppendQuizAttempt appends att to the attempt history and overwrites
		// the current score/level/certificate fields from it, atomically.
		AppendQuizAttempt(phone string, att quiz.Attempt) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate returns the user registered under phone, creating one with
// empty progress and pending payment on first login. Idempotent.
func (svc *Service) GetOrCreate(phone string) (User, error) {
	usr := User{
		PhoneNumber:   phone,
		CreatedAt:     NowFunc().UTC(),
		PaymentStatus: PaymentPending,
		Progress:      NewProgress(),
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) GetByPhone(phone string) (User, error) {
	return svc.repo.GetUserByPhone(phone)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) Filter(filter QueryFilter) ([]User, error) {
	filter.Clean()
	return svc.repo.FilterUsers(filter)
}

func (svc *Service) CompleteModule(phone string, moduleID int) (User, error) {
	return svc.repo.CompleteModule(phone, moduleID)
}

func (svc *Service) RecordPayment(phone string) (User, error) {
	return svc.repo.SetPaymentStatus(phone, PaymentCompleted)
}

// RecordQuizAttempt satisfies quiz.AttemptRecorder.
func (svc *Service) RecordQuizAttempt(phone string, att quiz.Attempt) error {
	_, err := svc.repo.AppendQuizAttempt(phone, att)
	return err
}

func (svc *Service) QuizHistory(phone string) ([]quiz.Attempt, error) {
	usr, err := svc.repo.GetUserByPhone(phone)
	if err != nil {
		return nil, err
	}
	return usr.Progress.QuizAttempts, nil
}
