package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	ClientID string `gorm:"type:uuid;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID string       `gorm:"type:uuid;not null" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	SectionID string  `gorm:"type:uuid;not null" json:"section_id"`
	Section   Section `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"section"`

	TimeID string   `gorm:"type:uuid;not null" json:"time_id"`
	Time   TimeSlot `gorm:"foreignKey:TimeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"time"`

	Date  time.Time `gorm:"not null" json:"date"`
	Price float64   `gorm:"not null" json:"price"`

	// Nulo enquanto o agendamento não foi pago (receita planejada)
	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
