package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Horário de atendimento de um profissional, no formato "15:04"
type TimeSlot struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID string `gorm:"type:uuid;index;not null" json:"professional_id"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *TimeSlot) TableName() string {
	return "times"
}

func (t *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
