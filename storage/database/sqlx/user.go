package sqlxrepos

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/iiskills/shiksha/core/quiz"
	"github.com/iiskills/shiksha/core/user"
)

// dbUser mirrors the "user" table; progress is stored as a JSONB document so
// the schema never churns as progress evolves.
type dbUser struct {
	PhoneNumber   string    `db:"phone_number"`
	CreatedAt     time.Time `db:"created_at"`
	PaymentStatus string    `db:"payment_status"`
	Progress      []byte    `db:"progress"`
}

func (du dbUser) toUser() (user.User, error) {
	usr := user.User{
		PhoneNumber:   du.PhoneNumber,
		CreatedAt:     du.CreatedAt.UTC(),
		PaymentStatus: user.PaymentStatus(du.PaymentStatus),
		Progress:      user.NewProgress(),
	}
	if len(du.Progress) > 0 {
		if err := json.Unmarshal(du.Progress, &usr.Progress); err != nil {
			return user.User{}, pkgerrors.Wrap(err, "decoding progress")
		}
	}
	return usr, nil
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	progress, err := json.Marshal(usr.Progress)
	if err != nil {
		return user.User{}, pkgerrors.Wrap(err, "encoding progress")
	}

	// first writer wins; concurrent logins converge on the stored record
	q := `INSERT INTO "user" (phone_number, created_at, payment_status, progress)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone_number) DO NOTHING`
	if _, err = repo.db.Exec(q, usr.PhoneNumber, usr.CreatedAt, usr.PaymentStatus, progress); err != nil {
		return user.User{}, pkgerrors.Wrap(err, "inserting user")
	}
	return repo.GetUserByPhone(usr.PhoneNumber)
}

func (repo *userRepository) GetUserByPhone(phone string) (user.User, error) {
	var du dbUser
	err := repo.db.Get(&du, `SELECT * FROM "user" WHERE phone_number = $1`, phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, pkgerrors.Wrap(err, "getting user")
	}
	return du.toUser()
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	return repo.selectUsers(`SELECT * FROM "user" ORDER BY created_at`)
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	q := `SELECT * FROM "user" WHERE true`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		q += ` AND phone_number LIKE $1`
	}
	switch filter.Status {
	case "":
	case user.FilterCertified:
		q += ` AND (progress->>'certificate_earned')::boolean IS TRUE`
	case user.FilterNotCertified:
		q += ` AND (progress->>'certificate_earned')::boolean IS NOT TRUE`
	case user.FilterPaid:
		q += ` AND payment_status = 'completed'`
	case user.FilterPendingPayment:
		q += ` AND payment_status = 'pending'`
	default:
		return []user.User{}, nil
	}
	q += ` ORDER BY created_at`
	return repo.selectUsers(q, args...)
}

func (repo *userRepository) selectUsers(q string, args ...interface{}) ([]user.User, error) {
	var dus []dbUser
	if err := repo.db.Select(&dus, q, args...); err != nil {
		return nil, pkgerrors.Wrap(err, "querying users")
	}
	users := make([]user.User, 0, len(dus))
	for _, du := range dus {
		usr, err := du.toUser()
		if err != nil {
			return nil, err
		}
		users = append(users, usr)
	}
	return users, nil
}

func (repo *userRepository) SetPaymentStatus(phone string, status user.PaymentStatus) (user.User, error) {
	res, err := repo.db.Exec(`UPDATE "user" SET payment_status = $1 WHERE phone_number = $2`, status, phone)
	if err != nil {
		return user.User{}, pkgerrors.Wrap(err, "updating payment status")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return repo.GetUserByPhone(phone)
}

func (repo *userRepository) CompleteModule(phone string, moduleID int) (user.User, error) {
	return repo.updateProgress(phone, func(p *user.Progress) {
		for _, id := range p.CompletedModules {
			if id == moduleID {
				return
			}
		}
		p.CompletedModules = append(p.CompletedModules, moduleID)
	})
}

func (repo *userRepository) AppendQuizAttempt(phone string, att quiz.Attempt) (user.User, error) {
	return repo.updateProgress(phone, func(p *user.Progress) {
		p.QuizAttempts = append(p.QuizAttempts, att)
		p.QuizScore = null.IntFrom(att.Percentage)
		p.PassLevel = att.PassLevel
		p.CertificateEarned = att.PassLevel.Valid
	})
}

// updateProgress applies mutate to the user's progress document inside a
// transaction, with the row locked for the read-modify-write.
func (repo *userRepository) updateProgress(phone string, mutate func(*user.Progress)) (user.User, error) {
	tx, err := repo.db.Beginx()
	if err != nil {
		return user.User{}, pkgerrors.Wrap(err, "beginning transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var du dbUser
	err = tx.Get(&du, `SELECT * FROM "user" WHERE phone_number = $1 FOR UPDATE`, phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, pkgerrors.Wrap(err, "getting user")
	}

	usr, err := du.toUser()
	if err != nil {
		return user.User{}, err
	}
	mutate(&usr.Progress)

	progress, err := json.Marshal(usr.Progress)
	if err != nil {
		return user.User{}, pkgerrors.Wrap(err, "encoding progress")
	}
	if _, err = tx.Exec(`UPDATE "user" SET progress = $1 WHERE phone_number = $2`, progress, phone); err != nil {
		return user.User{}, pkgerrors.Wrap(err, "updating progress")
	}
	if err = tx.Commit(); err != nil {
		return user.User{}, pkgerrors.Wrap(err, "committing transaction")
	}
	return usr, nil
}
