package account

import (
	"time"

	"github.com/vendorlynx/vendorlynx-go/pkg/types"
)

// Account is a login identity on either side of the marketplace.
// CompanyName is the display name shown to the other party.
type Account struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string     `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	Email       string     `gorm:"size:255" json:"email"`
	CompanyName string     `gorm:"size:255;not null" json:"company_name"`
	Role        types.Role `gorm:"size:32;not null" json:"role"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
