package types

import "github.com/golang-jwt/jwt/v5"

// Role identifies which side of the marketplace an account belongs to.
type Role string

const (
	RoleVendor          Role = "vendor"
	RolePropertyManager Role = "propertyManager"
)

func (r Role) Valid() bool {
	return r == RoleVendor || r == RolePropertyManager
}

// Claims is the JWT payload attached to authenticated requests.
type Claims struct {
	AccountID uint   `json:"account_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	jwt.RegisteredClaims
}
