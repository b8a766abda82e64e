package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Cliente do negócio, sem login próprio, vinculado ao usuário dono
type Client struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Status string `gorm:"size:20;not null" json:"status"`

	Email        *string    `gorm:"size:100" json:"email"`
	Phone        *string    `gorm:"size:20" json:"phone"`
	Address      *string    `gorm:"size:255" json:"address"`
	BirthDate    *time.Time `json:"birth_date"`
	CPF          *string    `gorm:"size:14" json:"cpf"`
	Observations *string    `gorm:"type:text" json:"observations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
