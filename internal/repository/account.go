package repository

import (
	"github.com/vendorlynx/vendorlynx-go/internal/domain/account"
	"gorm.io/gorm"
)

type AccountRepo interface {
	CreateAccount(a *account.Account) error
	GetAccountByID(id uint) (account.Account, error)
	GetAccountByUsername(username string) (account.Account, error)
	SaveAccount(a *account.Account) error
	WithTx(tx *gorm.DB) AccountRepo
}

type DBAccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *DBAccountRepo {
	return &DBAccountRepo{db: db}
}

func (r *DBAccountRepo) CreateAccount(a *account.Account) error {
	return r.db.Create(a).Error
}

func (r *DBAccountRepo) GetAccountByID(id uint) (account.Account, error) {
	var a account.Account
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAccountRepo) GetAccountByUsername(username string) (account.Account, error) {
	var a account.Account
	err := r.db.Where("username = ?", username).First(&a).Error
	return a, err
}

func (r *DBAccountRepo) SaveAccount(a *account.Account) error {
	return r.db.Save(a).Error
}

func (r *DBAccountRepo) WithTx(tx *gorm.DB) AccountRepo {
	if tx == nil {
		return r
	}
	return &DBAccountRepo{db: tx}
}
