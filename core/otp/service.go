package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("code not found")
	ErrExpired  = errors.New("code expired")
	ErrMismatch = errors.New("invalid code")

	ErrInvalidPhone = errors.New("invalid phone number")

	NowFunc = time.Now // mockable

	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

type (
	// Repository holds pending entries keyed by phone number. Save overwrites.
	Repository interface {
		SaveEntry(e Entry) error
		GetEntry(phone string) (Entry, error)
		DeleteEntry(phone string) error
	}

	Service struct {
		repo   Repository
		length int
		expiry time.Duration
	}
)

func NewService(repo Repository, length int, expiry time.Duration) *Service {
	return &Service{repo: repo, length: length, expiry: expiry}
}

// Issue generates a uniformly random numeric code (leading zeros kept) and
// stores it under phone, overwriting any prior entry. The code is returned to
// the caller for out-of-band delivery.
func (svc *Service) Issue(phone string) (string, error) {
	if !phoneRegex.MatchString(phone) {
		return "", ErrInvalidPhone
	}

	code, err := generateCode(svc.length)
	if err != nil {
		return "", pkgerrors.Wrap(err, "generating code")
	}
	entry := Entry{
		PhoneNumber: phone,
		Code:        code,
		ExpiresAt:   NowFunc().UTC().Add(svc.expiry),
	}
	if err := svc.repo.SaveEntry(entry); err != nil {
		return "", pkgerrors.Wrap(err, "saving entry")
	}
	return code, nil
}

// Verify checks code against the live entry for phone. Entries are single-use:
// both success and expiry consume them. A mismatch leaves the entry in place
// so the user may retry until it expires.
func (svc *Service) Verify(phone, code string) error {
	entry, err := svc.repo.GetEntry(phone)
	if err != nil {
		return err
	}
	if entry.Expired(NowFunc().UTC()) {
		if err := svc.repo.DeleteEntry(phone); err != nil {
			return pkgerrors.Wrap(err, "deleting expired entry")
		}
		return ErrExpired
	}
	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(code)) == 0 {
		return ErrMismatch
	}
	return svc.repo.DeleteEntry(phone)
}

func generateCode(length int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
