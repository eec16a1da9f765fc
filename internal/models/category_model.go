package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryName  string    `gorm:"size:100;uniqueIndex;not null" json:"categoryName"`
	CategoryImage string    `gorm:"size:255" json:"categoryImage,omitempty"`
	Description   string    `gorm:"size:255" json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
