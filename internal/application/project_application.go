package application

import (
	"errors"

	domainapp "github.com/vendorlynx/vendorlynx-go/internal/domain/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"gorm.io/gorm"
)

type ApplicationService struct {
	Repos    *repository.Repos
	Notifier *NotificationService
}

func NewApplicationService(repos *repository.Repos, notifier *NotificationService) *ApplicationService {
	return &ApplicationService{Repos: repos, Notifier: notifier}
}

// Apply files a vendor's application to a project. A duplicate
// (vendor, project) pair is rejected by the store's unique index.
func (s *ApplicationService) Apply(claims *types.Claims, projectID uint) (*domainapp.ProjectApplication, error) {
	if claims.Role != types.RoleVendor {
		return nil, ErrNotEntitled
	}
	proj, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if !proj.Open {
		return nil, ErrProjectClosed
	}

	var (
		app  *domainapp.ProjectApplication
		note *notification.Notification
	)
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		app = &domainapp.ProjectApplication{
			ProjectID: proj.ID,
			VendorID:  claims.AccountID,
			Status:    domainapp.StatusPending,
		}
		if err := tx.Application.CreateApplication(app); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateApplication
			}
			return err
		}
		n, err := s.Notifier.Dispatch(tx, notification.DispatchInput{
			SenderID:      claims.AccountID,
			SenderType:    notification.PartyVendor,
			RecipientID:   proj.PropertyManagerID,
			RecipientType: notification.PartyPropertyManager,
			Type:          notification.ApplicationCreated,
			Data: notification.Data{
				ProjectID:     proj.ID,
				ProjectName:   proj.Name,
				ApplicationID: app.ID,
			},
		})
		if err != nil {
			return err
		}
		note = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Notifier.Push(note)
	return app, nil
}

// Decide accepts or rejects a pending application exactly once.
func (s *ApplicationService) Decide(claims *types.Claims, applicationID uint, input domainapp.DecideApplicationDTO) (*domainapp.ProjectApplication, error) {
	if claims.Role != types.RolePropertyManager {
		return nil, ErrNotEntitled
	}
	app, err := s.Repos.Application.GetApplicationByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	proj, err := s.Repos.Project.GetProjectByID(app.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if proj.PropertyManagerID != claims.AccountID {
		return nil, ErrNotEntitled
	}
	if app.Status != domainapp.StatusPending {
		return nil, ErrApplicationDecided
	}

	next := domainapp.Status(input.Status)
	notifType := notification.ApplicationAccepted
	if next == domainapp.StatusRejected {
		notifType = notification.ApplicationRejected
	}

	var note *notification.Notification
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		decided, err := tx.Application.UpdateApplicationStatus(app.ID, domainapp.StatusPending, next)
		if err != nil {
			return err
		}
		if !decided {
			return ErrApplicationDecided
		}
		n, err := s.Notifier.Dispatch(tx, notification.DispatchInput{
			SenderID:      proj.PropertyManagerID,
			SenderType:    notification.PartyPropertyManager,
			RecipientID:   app.VendorID,
			RecipientType: notification.PartyVendor,
			Type:          notifType,
			Data: notification.Data{
				ProjectID:     proj.ID,
				ProjectName:   proj.Name,
				ApplicationID: app.ID,
			},
		})
		if err != nil {
			return err
		}
		note = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Notifier.Push(note)
	app.Status = next
	return &app, nil
}

func (s *ApplicationService) ListByProject(claims *types.Claims, projectID uint) ([]domainapp.View, error) {
	proj, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if proj.PropertyManagerID != claims.AccountID {
		return nil, ErrNotEntitled
	}
	return s.Repos.Application.ListApplicationViewsByProject(projectID)
}

func (s *ApplicationService) ListByVendor(claims *types.Claims) ([]domainapp.View, error) {
	if claims.Role != types.RoleVendor {
		return nil, ErrNotEntitled
	}
	return s.Repos.Application.ListApplicationViewsByVendor(claims.AccountID)
}
