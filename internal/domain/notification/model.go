package notification

import (
	"time"

	"gorm.io/datatypes"
)

// PartyType discriminates which side of the marketplace an id refers to.
type PartyType string

const (
	PartyVendor          PartyType = "Vendor"
	PartyPropertyManager PartyType = "PropertyManager"
)

func (p PartyType) Valid() bool {
	return p == PartyVendor || p == PartyPropertyManager
}

// Type enumerates the domain events that fan out as notifications.
type Type string

const (
	WorkOrderCreated             Type = "WORK_ORDER_CREATED"
	WorkOrderAcceptedVendor      Type = "WORK_ORDER_ACCEPTED_VENDOR"
	WorkOrderRescheduleVendor    Type = "WORK_ORDER_RESCHEDULE_VENDOR"
	WorkOrderReschedulePropMgr   Type = "WORK_ORDER_RESCHEDULE_PROP_MANAGER"
	WorkOrderClosedPropMgr       Type = "WORK_ORDER_CLOSED_PROP_MANAGER"
	ApplicationCreated           Type = "APPLICATION_CREATED"
	ApplicationAccepted          Type = "APPLICATION_ACCEPTED"
	ApplicationRejected          Type = "APPLICATION_REJECTED"
)

// Direction is the fixed sender/recipient typing of a notification type.
type Direction struct {
	Sender    PartyType
	Recipient PartyType
}

var directions = map[Type]Direction{
	WorkOrderCreated:           {PartyPropertyManager, PartyVendor},
	WorkOrderAcceptedVendor:    {PartyVendor, PartyPropertyManager},
	WorkOrderRescheduleVendor:  {PartyVendor, PartyPropertyManager},
	WorkOrderReschedulePropMgr: {PartyPropertyManager, PartyVendor},
	WorkOrderClosedPropMgr:     {PartyPropertyManager, PartyVendor},
	ApplicationCreated:         {PartyVendor, PartyPropertyManager},
	ApplicationAccepted:        {PartyPropertyManager, PartyVendor},
	ApplicationRejected:        {PartyPropertyManager, PartyVendor},
}

// DirectionOf returns the required sender/recipient typing for t.
func DirectionOf(t Type) (Direction, bool) {
	d, ok := directions[t]
	return d, ok
}

// Notification is a durable, addressed record of a cross-party event.
// The recipient owns it for mutation; the sender reference is display
// data only.
type Notification struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID      uint           `gorm:"not null" json:"sender_id"`
	SenderType    PartyType      `gorm:"size:32;not null" json:"sender_type"`
	RecipientID   uint           `gorm:"not null;index:idx_recipient" json:"recipient_id"`
	RecipientType PartyType      `gorm:"size:32;not null;index:idx_recipient" json:"recipient_type"`
	Type          Type           `gorm:"size:64;not null" json:"notification_type"`
	Message       string         `gorm:"type:text" json:"message"`
	Data          datatypes.JSON `gorm:"type:jsonb" json:"data"`
	Read          bool           `gorm:"default:false" json:"read"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
