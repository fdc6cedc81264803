package project

type CreateProjectDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type UpdateProjectDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	City        *string `json:"city,omitempty"`
	Open        *bool   `json:"open,omitempty"`
}
