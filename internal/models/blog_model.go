package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Blog struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	FeaturedImage string         `gorm:"size:255" json:"featuredImage,omitempty"`
	Author        string         `gorm:"size:100" json:"author,omitempty"`
	Tags          datatypes.JSON `json:"tags,omitempty"`
	IsPublished   bool           `gorm:"default:false" json:"isPublished"`
	PublishedAt   *time.Time     `json:"publishedAt,omitempty"`
	Views         int            `gorm:"default:0" json:"views"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
