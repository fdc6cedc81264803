package application

type DecideApplicationDTO struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// View is an application joined with its project and vendor display
// fields, the shape every listing endpoint returns.
type View struct {
	ID                uint   `json:"id"`
	ProjectID         uint   `json:"project_id"`
	ProjectName       string `json:"project_name"`
	PropertyManagerID uint   `json:"property_manager_id"`
	VendorID          uint   `json:"vendor_id"`
	VendorCompany     string `json:"vendor_company"`
	Status            Status `json:"status"`
	ApplicationDate   string `json:"application_date"`
}
