package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	domainapp "github.com/vendorlynx/vendorlynx-go/internal/domain/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/internal/repository/mock"
	"gorm.io/gorm"
)

func setupApplicationMocks(t *testing.T) (*application.ApplicationService,
	*mock.MockApplicationRepo,
	*mock.MockProjectRepo,
	*mock.MockNotificationRepo,
	*fakePusher) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock.NewMockApplicationRepo(ctrl)
	mockProject := mock.NewMockProjectRepo(ctrl)
	mockNotif := mock.NewMockNotificationRepo(ctrl)

	repos := &repository.Repos{
		Project:      mockProject,
		Application:  mockApp,
		Notification: mockNotif,
	}

	pusher := &fakePusher{}
	notifier := application.NewNotificationService(repos, pusher)
	svc := application.NewApplicationService(repos, notifier)

	return svc, mockApp, mockProject, mockNotif, pusher
}

func TestApply(t *testing.T) {
	t.Run("success notifies the property manager", func(t *testing.T) {
		svc, mockApp, mockProject, mockNotif, pusher := setupApplicationMocks(t)

		mockProject.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
		mockApp.EXPECT().CreateApplication(gomock.Any()).Do(func(a *domainapp.ProjectApplication) {
			a.ID = 4
		}).Return(nil)
		mockNotif.EXPECT().CreateNotification(gomock.Any()).Do(func(n *notification.Notification) {
			if n.Type != notification.ApplicationCreated {
				t.Fatalf("expected APPLICATION_CREATED, got %s", n.Type)
			}
			if n.RecipientType != notification.PartyPropertyManager || n.RecipientID != 10 {
				t.Fatalf("notification addressed to %s:%d", n.RecipientType, n.RecipientID)
			}
		}).Return(nil)

		app, err := svc.Apply(vendorClaims(2), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != domainapp.StatusPending {
			t.Fatalf("expected pending, got %s", app.Status)
		}
		if len(pusher.keys) != 1 || pusher.keys[0] != "PropertyManager:10" {
			t.Fatalf("expected one push to PropertyManager:10, got %v", pusher.keys)
		}
	})

	t.Run("manager cannot apply", func(t *testing.T) {
		svc, _, _, _, _ := setupApplicationMocks(t)

		if _, err := svc.Apply(managerClaims(10), 1); err != application.ErrNotEntitled {
			t.Fatalf("expected ErrNotEntitled, got %v", err)
		}
	})

	t.Run("closed project rejects applications", func(t *testing.T) {
		svc, _, mockProject, _, _ := setupApplicationMocks(t)

		closed := testProject()
		closed.Open = false
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(closed, nil)

		if _, err := svc.Apply(vendorClaims(2), 1); err != application.ErrProjectClosed {
			t.Fatalf("expected ErrProjectClosed, got %v", err)
		}
	})

	t.Run("duplicate application surfaces as conflict", func(t *testing.T) {
		svc, mockApp, mockProject, _, pusher := setupApplicationMocks(t)

		mockProject.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
		mockApp.EXPECT().CreateApplication(gomock.Any()).Return(gorm.ErrDuplicatedKey)

		if _, err := svc.Apply(vendorClaims(2), 1); err != application.ErrDuplicateApplication {
			t.Fatalf("expected ErrDuplicateApplication, got %v", err)
		}
		if len(pusher.keys) != 0 {
			t.Fatalf("no notification should fan out, got %v", pusher.keys)
		}
	})
}

func TestDecide(t *testing.T) {
	pending := domainapp.ProjectApplication{ID: 4, ProjectID: 1, VendorID: 2, Status: domainapp.StatusPending}

	t.Run("accept notifies the vendor", func(t *testing.T) {
		svc, mockApp, mockProject, mockNotif, pusher := setupApplicationMocks(t)

		mockApp.EXPECT().GetApplicationByID(uint(4)).Return(pending, nil)
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
		mockApp.EXPECT().
			UpdateApplicationStatus(uint(4), domainapp.StatusPending, domainapp.StatusAccepted).
			Return(true, nil)
		mockNotif.EXPECT().CreateNotification(gomock.Any()).Do(func(n *notification.Notification) {
			if n.Type != notification.ApplicationAccepted {
				t.Fatalf("expected APPLICATION_ACCEPTED, got %s", n.Type)
			}
		}).Return(nil)

		app, err := svc.Decide(managerClaims(10), 4, domainapp.DecideApplicationDTO{Status: "accepted"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != domainapp.StatusAccepted {
			t.Fatalf("expected accepted, got %s", app.Status)
		}
		if len(pusher.keys) != 1 || pusher.keys[0] != "Vendor:2" {
			t.Fatalf("expected one push to Vendor:2, got %v", pusher.keys)
		}
	})

	t.Run("reject sends the rejection type", func(t *testing.T) {
		svc, mockApp, mockProject, mockNotif, _ := setupApplicationMocks(t)

		mockApp.EXPECT().GetApplicationByID(uint(4)).Return(pending, nil)
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
		mockApp.EXPECT().
			UpdateApplicationStatus(uint(4), domainapp.StatusPending, domainapp.StatusRejected).
			Return(true, nil)
		mockNotif.EXPECT().CreateNotification(gomock.Any()).Do(func(n *notification.Notification) {
			if n.Type != notification.ApplicationRejected {
				t.Fatalf("expected APPLICATION_REJECTED, got %s", n.Type)
			}
		}).Return(nil)

		if _, err := svc.Decide(managerClaims(10), 4, domainapp.DecideApplicationDTO{Status: "rejected"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("only the owning manager decides", func(t *testing.T) {
		svc, mockApp, mockProject, _, _ := setupApplicationMocks(t)

		mockApp.EXPECT().GetApplicationByID(uint(4)).Return(pending, nil)
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)

		if _, err := svc.Decide(managerClaims(99), 4, domainapp.DecideApplicationDTO{Status: "accepted"}); err != application.ErrNotEntitled {
			t.Fatalf("expected ErrNotEntitled, got %v", err)
		}
	})

	t.Run("decided application cannot flip", func(t *testing.T) {
		svc, mockApp, mockProject, _, _ := setupApplicationMocks(t)

		decided := pending
		decided.Status = domainapp.StatusAccepted
		mockApp.EXPECT().GetApplicationByID(uint(4)).Return(decided, nil)
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)

		if _, err := svc.Decide(managerClaims(10), 4, domainapp.DecideApplicationDTO{Status: "rejected"}); err != application.ErrApplicationDecided {
			t.Fatalf("expected ErrApplicationDecided, got %v", err)
		}
	})

	t.Run("concurrent decision loses the swap", func(t *testing.T) {
		svc, mockApp, mockProject, _, _ := setupApplicationMocks(t)

		mockApp.EXPECT().GetApplicationByID(uint(4)).Return(pending, nil)
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
		mockApp.EXPECT().
			UpdateApplicationStatus(uint(4), domainapp.StatusPending, domainapp.StatusAccepted).
			Return(false, nil)

		if _, err := svc.Decide(managerClaims(10), 4, domainapp.DecideApplicationDTO{Status: "accepted"}); err != application.ErrApplicationDecided {
			t.Fatalf("expected ErrApplicationDecided, got %v", err)
		}
	})
}
