package inmemdb

import (
	"github.com/volatiletech/null/v8"

	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
)

type userRepository struct {
	db *userTable
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

// clone detaches the record from the table so callers cannot mutate stored
// state through the returned slices.
func clone(usr *user.User) user.User {
	out := *usr
	out.Progress.CompletedModules = append([]int(nil), usr.Progress.CompletedModules...)
	out.Progress.QuizAttempts = append([]quiz.Attempt(nil), usr.Progress.QuizAttempts...)
	return out
}

func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.db.table))
	for _, usr := range repo.db.table {
		users = append(users, clone(usr))
	}
	return users
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if existing, ok := repo.db.table[usr.PhoneNumber]; ok {
		return clone(existing), nil
	}
	repo.db.table[usr.PhoneNumber] = &usr
	return clone(&usr), nil
}

func (repo *userRepository) GetUserByPhone(phone string) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if usr, ok := repo.db.table[phone]; ok {
		return clone(usr), nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]user.User, 0, len(repo.db.table))
	for _, usr := range repo.db.table {
		if filter.Match(*usr) {
			users = append(users, clone(usr))
		}
	}
	return users, nil
}

func (repo *userRepository) CompleteModule(phone string, moduleID int) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr, ok := repo.db.table[phone]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if !usr.HasCompletedModule(moduleID) {
		usr.Progress.CompletedModules = append(usr.Progress.CompletedModules, moduleID)
	}
	return clone(usr), nil
}

func (repo *userRepository) SetPaymentStatus(phone string, status user.PaymentStatus) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr, ok := repo.db.table[phone]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	usr.PaymentStatus = status
	return clone(usr), nil
}

func (repo *userRepository) AppendQuizAttempt(phone string, att quiz.Attempt) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr, ok := repo.db.table[phone]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	usr.Progress.QuizAttempts = append(usr.Progress.QuizAttempts, att)
	usr.Progress.QuizScore = null.IntFrom(att.Percentage)
	usr.Progress.PassLevel = att.PassLevel
	usr.Progress.CertificateEarned = att.PassLevel.Valid
	return clone(usr), nil
}
