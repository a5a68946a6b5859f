package model

import (
	"time"

	"github.com/google/uuid"
)

// CourtPresenceModel is the GORM-specific struct for the 'court_presence' table.
// The partial unique index allows a single open row per (user_id, court_id).
type CourtPresenceModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID       string     `gorm:"type:varchar(64);not null;uniqueIndex:ux_court_presence_open,where:exited_at IS NULL;index:ix_court_presence_user_entered,priority:1"`
	CourtID      string     `gorm:"type:varchar(64);not null;uniqueIndex:ux_court_presence_open,where:exited_at IS NULL"`
	EnteredAt    time.Time  `gorm:"not null;index:ix_court_presence_user_entered,priority:2,sort:desc"`
	ExitedAt     *time.Time `gorm:"check:chk_court_presence_exit_after_entry,exited_at IS NULL OR exited_at >= entered_at"`
	EntryMethod  string     `gorm:"type:varchar(20);not null"`
	RadarEventID *string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CourtPresenceModel) TableName() string {
	return "court_presence"
}
