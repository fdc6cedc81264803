package application

import (
	"errors"

	"github.com/vendorlynx/vendorlynx-go/internal/domain/vendor"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"gorm.io/gorm"
)

type VendorService struct {
	Repos *repository.Repos
}

func NewVendorService(repos *repository.Repos) *VendorService {
	return &VendorService{Repos: repos}
}

func (s *VendorService) CreateStore(claims *types.Claims, input vendor.CreateStoreDTO) (*vendor.Store, error) {
	if claims.Role != types.RoleVendor {
		return nil, ErrNotEntitled
	}
	_, err := s.Repos.Vendor.GetStoreByAccountID(claims.AccountID)
	if err == nil {
		return nil, ErrStoreExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	store := &vendor.Store{
		AccountID:   claims.AccountID,
		StoreName:   input.StoreName,
		Category:    input.Category,
		City:        input.City,
		Province:    input.Province,
		Description: input.Description,
		HourlyRate:  input.HourlyRate,
	}
	if err := s.Repos.Vendor.CreateStore(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *VendorService) GetStore(id uint) (*vendor.Store, error) {
	store, err := s.Repos.Vendor.GetStoreByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (s *VendorService) UpdateStore(claims *types.Claims, id uint, input vendor.UpdateStoreDTO) (*vendor.Store, error) {
	store, err := s.Repos.Vendor.GetStoreByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	if store.AccountID != claims.AccountID {
		return nil, ErrNotEntitled
	}

	if input.StoreName != nil {
		store.StoreName = *input.StoreName
	}
	if input.Category != nil {
		store.Category = *input.Category
	}
	if input.City != nil {
		store.City = *input.City
	}
	if input.Province != nil {
		store.Province = *input.Province
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.HourlyRate != nil {
		store.HourlyRate = *input.HourlyRate
	}

	if err := s.Repos.Vendor.UpdateStore(&store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (s *VendorService) ListStores(filter vendor.ListFilter) ([]vendor.Store, error) {
	return s.Repos.Vendor.ListStores(filter)
}
