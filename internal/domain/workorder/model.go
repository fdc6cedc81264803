package workorder

import (
	"time"

	"gorm.io/datatypes"
)

// Status is the work-order lifecycle state. StatusAccepted is kept as a
// stored value for rows written before the accept action started moving
// orders straight to inProgress; no transition produces it anymore.
type Status string

const (
	StatusPending             Status = "pending"
	StatusAccepted            Status = "accepted"
	StatusRescheduleByVendor  Status = "rescheduleByVendor"
	StatusRescheduleByPropMgr Status = "rescheduleByPropertyManager"
	StatusInProgress          Status = "inProgress"
	StatusClosed              Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRescheduleByVendor,
		StatusRescheduleByPropMgr, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusClosed
}

// WorkOrder is a scheduled task a property manager assigns to a vendor
// within a project. Never hard-deleted; closing is terminal.
type WorkOrder struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	StartDateTime   time.Time `gorm:"not null" json:"start_date_time"`
	EndDateTime     time.Time `gorm:"not null" json:"end_date_time"`
	WorkOrderStatus Status    `gorm:"size:64;not null;default:'pending'" json:"work_order_status"`
	ProjectID       uint      `gorm:"index;not null" json:"project_id"`
	VendorID        uint      `gorm:"index;not null" json:"vendor_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}

// Log is an append-only progress note a vendor attaches to an order
// while it is inProgress. Images holds object-store keys.
type Log struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkOrderID uint           `gorm:"index;not null" json:"work_order_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Comment     string         `gorm:"type:text" json:"comment"`
	Images      datatypes.JSON `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Log) TableName() string {
	return "work_order_logs"
}
