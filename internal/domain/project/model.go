package project

import "time"

// Project is a unit of work owned by a property manager, open to
// vendor applications.
type Project struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	City              string    `gorm:"size:100" json:"city"`
	PropertyManagerID uint      `gorm:"index;not null" json:"property_manager_id"`
	Open              bool      `gorm:"default:true" json:"open"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
