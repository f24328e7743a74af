package inmemdb

import (
	"github.com/iiskills/shiksha/core/otp"
)

type otpRepository struct {
	db *otpTable
}

func NewOTPRepository(db *DB) otp.Repository {
	return &otpRepository{db: db.otp}
}

func (repo *otpRepository) SaveEntry(e otp.Entry) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.table[e.PhoneNumber] = e
	return nil
}

func (repo *otpRepository) GetEntry(phone string) (otp.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if e, ok := repo.db.table[phone]; ok {
		return e, nil
	}
	return otp.Entry{}, otp.ErrNotFound
}

func (repo *otpRepository) DeleteEntry(phone string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	delete(repo.db.table, phone)
	return nil
}
