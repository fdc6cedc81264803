package account

type RegisterDTO struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Email       string `json:"email" binding:"required,email"`
	CompanyName string `json:"companyName" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=vendor propertyManager"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateAccountDTO struct {
	Email       *string `json:"email"`
	CompanyName *string `json:"companyName"`
	OldPassword *string `json:"oldPassword"`
	Password    *string `json:"password"`
}
