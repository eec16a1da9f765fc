package auth

import (
	"errors"

	"github.com/google/uuid"
	"github.com/roomly/api/internal/models"
	"gorm.io/gorm"
)

// Principal is the resolved caller: the user record plus its single
// role profile. The password hash is cleared before the principal ever
// leaves this package.
type Principal struct {
	models.User
	Profile models.Profile `json:"profile"`
}

// LoadPrincipal fetches the user and its role-matching profile.
// Returns ErrUserNotFound when the user does not exist.
func LoadPrincipal(db *gorm.DB, userID uuid.UUID) (*Principal, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, mapStoreError(err)
	}

	profile, err := loadProfile(db, &user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &Principal{User: user, Profile: profile}, nil
}

// loadProfile dispatches on the user's role; exactly one profile row is
// expected per user.
func loadProfile(db *gorm.DB, user *models.User) (models.Profile, error) {
	switch user.Role {
	case models.RoleAdmin, models.RoleSuperAdmin:
		var p models.AdminProfile
		if err := db.First(&p, "user_id = ?", user.ID).Error; err != nil {
			return nil, mapStoreError(err)
		}
		return &p, nil
	case models.RoleHost:
		var p models.HostProfile
		if err := db.First(&p, "user_id = ?", user.ID).Error; err != nil {
			return nil, mapStoreError(err)
		}
		return &p, nil
	case models.RoleCustomer:
		var p models.CustomerProfile
		if err := db.First(&p, "user_id = ?", user.ID).Error; err != nil {
			return nil, mapStoreError(err)
		}
		return &p, nil
	case models.RoleDoctor:
		var p models.DoctorProfile
		if err := db.First(&p, "user_id = ?", user.ID).Error; err != nil {
			return nil, mapStoreError(err)
		}
		return &p, nil
	}
	return nil, ErrUserNotFound
}

// HostProfileID returns the principal's host profile id. Ownership
// checks on listings compare this against the listing's owner id.
func (p *Principal) HostProfileID() (uuid.UUID, bool) {
	host, ok := p.Profile.(*models.HostProfile)
	if !ok {
		return uuid.Nil, false
	}
	return host.ID, true
}
