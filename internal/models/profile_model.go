package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the role-specific record attached one-to-one to a User.
// A user carries exactly one implementation, matching its Role; loading
// dispatches on the role instead of keeping four nullable associations.
type Profile interface {
	ProfileRole() Role
	ProfileID() uuid.UUID
}

type AdminProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User           User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	ProfilePhoto   string    `gorm:"size:255" json:"profilePhoto,omitempty"`
	ContactDetails string    `gorm:"size:255" json:"contactDetails,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type HostProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User         User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	ProfilePhoto string    `gorm:"size:255" json:"profilePhoto,omitempty"`
	Address      string    `gorm:"size:255" json:"address,omitempty"`
	Preferences  string    `gorm:"size:255" json:"preferences,omitempty"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	IsVerified   bool      `gorm:"default:false" json:"isVerified"`
	BookingCount int       `gorm:"default:0" json:"bookingCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CustomerProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User         User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	ProfilePhoto string    `gorm:"size:255" json:"profilePhoto,omitempty"`
	Address      string    `gorm:"size:255" json:"address,omitempty"`
	Preferences  string    `gorm:"size:255" json:"preferences,omitempty"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	BookingCount int       `gorm:"default:0" json:"bookingCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type DoctorProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User               User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name               string    `gorm:"size:100;not null" json:"name"`
	ProfilePhoto       string    `gorm:"size:255" json:"profilePhoto,omitempty"`
	RegistrationNumber string    `gorm:"size:100;uniqueIndex;not null" json:"registrationNumber"`
	Qualification      string    `gorm:"size:255;not null" json:"qualification"`
	Specialization     string    `gorm:"size:100" json:"specialization,omitempty"`
	AppointmentFee     float64   `gorm:"not null" json:"appointmentFee"`
	Experience         int       `gorm:"default:0" json:"experience"`
	AverageRating      float64   `gorm:"default:0" json:"averageRating"`
	ClinicAddress      string    `gorm:"size:255" json:"clinicAddress,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (p *AdminProfile) ProfileRole() Role       { return RoleAdmin }
func (p *HostProfile) ProfileRole() Role        { return RoleHost }
func (p *CustomerProfile) ProfileRole() Role    { return RoleCustomer }
func (p *DoctorProfile) ProfileRole() Role      { return RoleDoctor }
func (p *AdminProfile) ProfileID() uuid.UUID    { return p.ID }
func (p *HostProfile) ProfileID() uuid.UUID     { return p.ID }
func (p *CustomerProfile) ProfileID() uuid.UUID { return p.ID }
func (p *DoctorProfile) ProfileID() uuid.UUID   { return p.ID }

func (p *AdminProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *HostProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *CustomerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *DoctorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
