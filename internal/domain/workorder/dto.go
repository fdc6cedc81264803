package workorder

import "time"

type CreateWorkOrderDTO struct {
	Name          string    `json:"name" binding:"required"`
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
	EndDateTime   time.Time `json:"endDateTime" binding:"required"`
	VendorID      uint      `json:"vendor" binding:"required"`
}

type RescheduleDTO struct {
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
	EndDateTime   time.Time `json:"endDateTime" binding:"required"`
}

type CreateLogDTO struct {
	Title   string `form:"title" binding:"required"`
	Comment string `form:"comment"`
}

// View is a work order joined with its project and vendor display
// fields. Every endpoint returns this shape so list and detail
// responses cannot drift.
type View struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	StartDateTime     time.Time `json:"start_date_time"`
	EndDateTime       time.Time `json:"end_date_time"`
	WorkOrderStatus   Status    `json:"work_order_status"`
	ProjectID         uint      `json:"project_id"`
	ProjectName       string    `json:"project_name"`
	PropertyManagerID uint      `json:"property_manager_id"`
	VendorID          uint      `json:"vendor_id"`
	VendorCompany     string    `json:"vendor_company"`
}
