package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomTriple RoomType = "TRIPLE"
	RoomShared RoomType = "SHARED"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomSingle, RoomDouble, RoomTriple, RoomShared:
		return true
	}
	return false
}

type TenantType string

const (
	TenantMale   TenantType = "MALE"
	TenantFemale TenantType = "FEMALE"
	TenantAny    TenantType = "ANY"
)

func (t TenantType) Valid() bool {
	switch t {
	case TenantMale, TenantFemale, TenantAny:
		return true
	}
	return false
}

// HouseRent is a whole-house listing owned by a host profile.
type HouseRent struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Price         float64        `gorm:"not null" json:"price"`
	Bedrooms      int            `gorm:"not null" json:"bedrooms"`
	Bathrooms     int            `gorm:"not null" json:"bathrooms"`
	SquareFeet    int            `json:"squareFeet,omitempty"`
	Address       string         `gorm:"size:255;not null" json:"address"`
	City          string         `gorm:"size:100;not null;index" json:"city"`
	State         string         `gorm:"size:100" json:"state,omitempty"`
	ZipCode       string         `gorm:"size:20" json:"zipCode,omitempty"`
	Images        datatypes.JSON `json:"images,omitempty"`
	Amenities     datatypes.JSON `json:"amenities,omitempty"`
	IsAvailable   bool           `gorm:"default:true" json:"isAvailable"`
	AvailableFrom *time.Time     `json:"availableFrom,omitempty"`
	Views         int            `gorm:"default:0" json:"views"`
	IsApproved    bool           `gorm:"default:false" json:"isApproved"`
	OwnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner         *HostProfile   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid" json:"categoryId,omitempty"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// HostelRent is a per-room hostel listing owned by a host profile.
type HostelRent struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	Price           float64        `gorm:"not null" json:"price"`
	RoomType        RoomType       `gorm:"size:20;not null" json:"roomType"`
	MealIncluded    bool           `gorm:"default:false" json:"mealIncluded"`
	MealDescription string         `gorm:"size:255" json:"mealDescription,omitempty"`
	TenantType      TenantType     `gorm:"size:20;not null;default:'ANY'" json:"tenantType"`
	Address         string         `gorm:"size:255;not null" json:"address"`
	City            string         `gorm:"size:100;not null;index" json:"city"`
	State           string         `gorm:"size:100" json:"state,omitempty"`
	ZipCode         string         `gorm:"size:20" json:"zipCode,omitempty"`
	Images          datatypes.JSON `json:"images,omitempty"`
	Facilities      datatypes.JSON `json:"facilities,omitempty"`
	IsAvailable     bool           `gorm:"default:true" json:"isAvailable"`
	AvailableFrom   *time.Time     `json:"availableFrom,omitempty"`
	Views           int            `gorm:"default:0" json:"views"`
	IsApproved      bool           `gorm:"default:false" json:"isApproved"`
	OwnerID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner           *HostProfile   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CategoryID      *uuid.UUID     `gorm:"type:uuid" json:"categoryId,omitempty"`
	Category        *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (h *HouseRent) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (h *HostelRent) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
