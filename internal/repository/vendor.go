package repository

import (
	"github.com/vendorlynx/vendorlynx-go/internal/domain/vendor"
	"gorm.io/gorm"
)

type VendorRepo interface {
	CreateStore(s *vendor.Store) error
	GetStoreByID(id uint) (vendor.Store, error)
	GetStoreByAccountID(accountID uint) (vendor.Store, error)
	UpdateStore(s *vendor.Store) error
	ListStores(filter vendor.ListFilter) ([]vendor.Store, error)
	WithTx(tx *gorm.DB) VendorRepo
}

type DBVendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) *DBVendorRepo {
	return &DBVendorRepo{db: db}
}

func (r *DBVendorRepo) CreateStore(s *vendor.Store) error {
	return r.db.Create(s).Error
}

func (r *DBVendorRepo) GetStoreByID(id uint) (vendor.Store, error) {
	var s vendor.Store
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBVendorRepo) GetStoreByAccountID(accountID uint) (vendor.Store, error) {
	var s vendor.Store
	err := r.db.Where("account_id = ?", accountID).First(&s).Error
	return s, err
}

func (r *DBVendorRepo) UpdateStore(s *vendor.Store) error {
	return r.db.Save(s).Error
}

func (r *DBVendorRepo) ListStores(filter vendor.ListFilter) ([]vendor.Store, error) {
	var stores []vendor.Store
	q := r.db
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	err := q.Find(&stores).Error
	return stores, err
}

func (r *DBVendorRepo) WithTx(tx *gorm.DB) VendorRepo {
	if tx == nil {
		return r
	}
	return &DBVendorRepo{db: tx}
}
