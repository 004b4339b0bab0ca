package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table written by the event worker.
type ActivityModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID    uuid.UUID  `gorm:"type:uuid;unique;not null"`
	EventType  string     `gorm:"type:varchar(50);not null"`
	SubjectID  *uuid.UUID `gorm:"type:uuid"`
	RequestID  string     `gorm:"type:varchar(64)"`
	Summary    string     `gorm:"type:text"`
	OccurredAt time.Time  `gorm:"not null"`
	RecordedAt time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
