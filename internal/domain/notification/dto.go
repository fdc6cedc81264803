package notification

// Data is the opaque payload carried by every notification. ProjectID
// and ProjectName are always set; the rest depends on the event.
type Data struct {
	ProjectID     uint   `json:"projectId"`
	ProjectName   string `json:"projectName"`
	WorkOrderID   uint   `json:"workOrderId,omitempty"`
	ApplicationID uint   `json:"applicationId,omitempty"`
}

// DispatchInput is the structured request the dispatcher turns into a
// persisted notification. All fields are required.
type DispatchInput struct {
	SenderID      uint
	SenderType    PartyType
	RecipientID   uint
	RecipientType PartyType
	Type          Type
	Message       string // optional; rendered from the template when empty
	Data          Data
}

// ListQuery narrows the recipient listing; Before is an exclusive
// cursor on notification id.
type ListQuery struct {
	Before uint `form:"before"`
	Limit  int  `form:"limit"`
}
