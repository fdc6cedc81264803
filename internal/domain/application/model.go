package application

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// ProjectApplication is a vendor's request to be considered for a
// project. The composite unique index makes a second application by the
// same vendor fail at the store instead of relying on a racy pre-check.
type ProjectApplication struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID        uint      `gorm:"not null;uniqueIndex:idx_project_vendor" json:"project_id"`
	VendorID         uint      `gorm:"not null;uniqueIndex:idx_project_vendor" json:"vendor_id"`
	ApplicationDate  time.Time `gorm:"autoCreateTime" json:"application_date"`
	Status           Status    `gorm:"size:32;default:'pending'" json:"status"`
	NotificationSeen bool      `gorm:"default:false" json:"notification_seen"`
}

func (ProjectApplication) TableName() string {
	return "project_applications"
}
