package application

import (
	"errors"

	"github.com/vendorlynx/vendorlynx-go/internal/domain/project"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"gorm.io/gorm"
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

func (s *ProjectService) CreateProject(claims *types.Claims, input project.CreateProjectDTO) (*project.Project, error) {
	if claims.Role != types.RolePropertyManager {
		return nil, ErrNotEntitled
	}
	p := &project.Project{
		Name:              input.Name,
		Description:       input.Description,
		City:              input.City,
		PropertyManagerID: claims.AccountID,
		Open:              true,
	}
	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) GetProject(id uint) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) UpdateProject(claims *types.Claims, id uint, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if p.PropertyManagerID != claims.AccountID {
		return nil, ErrNotEntitled
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.City != nil {
		p.City = *input.City
	}
	if input.Open != nil {
		p.Open = *input.Open
	}

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) ListByPropertyManager(pmID uint) ([]project.Project, error) {
	return s.Repos.Project.ListProjectsByPropertyManager(pmID)
}

func (s *ProjectService) ListOpen() ([]project.Project, error) {
	return s.Repos.Project.ListOpenProjects()
}
