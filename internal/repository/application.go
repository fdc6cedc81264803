package repository

import (
	"github.com/vendorlynx/vendorlynx-go/internal/domain/application"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	CreateApplication(a *application.ProjectApplication) error
	GetApplicationByID(id uint) (application.ProjectApplication, error)
	UpdateApplicationStatus(id uint, expect, next application.Status) (bool, error)
	ListApplicationViewsByProject(projectID uint) ([]application.View, error)
	ListApplicationViewsByVendor(vendorID uint) ([]application.View, error)
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) CreateApplication(a *application.ProjectApplication) error {
	return r.db.Create(a).Error
}

func (r *DBApplicationRepo) GetApplicationByID(id uint) (application.ProjectApplication, error) {
	var a application.ProjectApplication
	err := r.db.First(&a, id).Error
	return a, err
}

// UpdateApplicationStatus flips the status only when it still matches
// expect, so a second accept/reject loses instead of overwriting.
func (r *DBApplicationRepo) UpdateApplicationStatus(id uint, expect, next application.Status) (bool, error) {
	res := r.db.Model(&application.ProjectApplication{}).
		Where("id = ? AND status = ?", id, expect).
		Update("status", next)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

const applicationViewSelect = `
	project_applications.id, project_applications.project_id,
	projects.name AS project_name, projects.property_manager_id,
	project_applications.vendor_id, accounts.company_name AS vendor_company,
	project_applications.status, project_applications.application_date`

func (r *DBApplicationRepo) ListApplicationViewsByProject(projectID uint) ([]application.View, error) {
	var views []application.View
	err := r.db.Table("project_applications").
		Select(applicationViewSelect).
		Joins("JOIN projects ON projects.id = project_applications.project_id").
		Joins("JOIN accounts ON accounts.id = project_applications.vendor_id").
		Where("project_applications.project_id = ?", projectID).
		Order("project_applications.application_date DESC").
		Scan(&views).Error
	return views, err
}

func (r *DBApplicationRepo) ListApplicationViewsByVendor(vendorID uint) ([]application.View, error) {
	var views []application.View
	err := r.db.Table("project_applications").
		Select(applicationViewSelect).
		Joins("JOIN projects ON projects.id = project_applications.project_id").
		Joins("JOIN accounts ON accounts.id = project_applications.vendor_id").
		Where("project_applications.vendor_id = ?", vendorID).
		Order("project_applications.application_date DESC").
		Scan(&views).Error
	return views, err
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
