package repository

import (
	"github.com/vendorlynx/vendorlynx-go/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetProjectByID(id uint) (project.Project, error)
	UpdateProject(p *project.Project) error
	ListProjectsByPropertyManager(pmID uint) ([]project.Project, error)
	ListOpenProjects() ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) ListProjectsByPropertyManager(pmID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("property_manager_id = ?", pmID).Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListOpenProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("open = ?", true).Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
