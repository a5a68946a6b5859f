// Package model contains the GORM table mappings.
package model

import "time"

// CourtModel is the GORM-specific struct for the 'courts' table.
type CourtModel struct {
	ID        string  `gorm:"type:varchar(64);primary_key"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Latitude  float64 `gorm:"column:lat;not null"`
	Longitude float64 `gorm:"column:lng;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourtModel) TableName() string {
	return "courts"
}
