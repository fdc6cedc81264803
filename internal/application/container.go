package application

import (
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
)

type Services struct {
	Account      *AccountService
	Vendor       *VendorService
	Project      *ProjectService
	Application  *ApplicationService
	WorkOrder    *WorkOrderService
	Notification *NotificationService
}

func New(repos *repository.Repos, pusher Pusher) *Services {
	notifier := NewNotificationService(repos, pusher)
	return &Services{
		Account:      NewAccountService(repos),
		Vendor:       NewVendorService(repos),
		Project:      NewProjectService(repos),
		Application:  NewApplicationService(repos, notifier),
		WorkOrder:    NewWorkOrderService(repos, notifier),
		Notification: notifier,
	}
}
