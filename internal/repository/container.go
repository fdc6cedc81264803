package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Account      AccountRepo
	Vendor       VendorRepo
	Project      ProjectRepo
	Application  ApplicationRepo
	WorkOrder    WorkOrderRepo
	Notification NotificationRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Account:      NewAccountRepo(db),
		Vendor:       NewVendorRepo(db),
		Project:      NewProjectRepo(db),
		Application:  NewApplicationRepo(db),
		WorkOrder:    NewWorkOrderRepo(db),
		Notification: NewNotificationRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Account:      r.Account.WithTx(tx),
		Vendor:       r.Vendor.WithTx(tx),
		Project:      r.Project.WithTx(tx),
		Application:  r.Application.WithTx(tx),
		WorkOrder:    r.WorkOrder.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a single database transaction. Without a db
// handle (mocked repos in unit tests) fn runs against the receiver.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
