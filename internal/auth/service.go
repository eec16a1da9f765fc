package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/roomly/api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserExists           = errors.New("user with this email or contact number already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountBlocked       = errors.New("your account has been blocked")
	ErrAccountInactive      = errors.New("your account is inactive")
	ErrAccountPending       = errors.New("your account is pending approval")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
	ErrInvalidRefreshToken  = errors.New("invalid or expired refresh token")
	ErrUserNotFound         = errors.New("user not found")
	ErrStoreNotReady        = errors.New("database tables are not initialized")
	ErrDoctorFieldsRequired = errors.New("registration number and qualification are required for doctors")
	ErrInvalidRole          = errors.New("invalid role")
)

type RegisterInput struct {
	Email              string      `json:"email"`
	Password           string      `json:"password"`
	ContactNumber      string      `json:"contactNumber"`
	Role               models.Role `json:"role"`
	Name               string      `json:"name"`
	RegistrationNumber string      `json:"registrationNumber"`
	Qualification      string      `json:"qualification"`
	AppointmentFee     float64     `json:"appointmentFee"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a user and its role profile atomically, then issues
// a token pair. Duplicate email or contact number fails with
// ErrUserExists before any write happens.
func Register(db *gorm.DB, in RegisterInput) (*Principal, *TokenPair, error) {
	var existing models.User
	err := db.Where("email = ? OR contact_number = ?", in.Email, in.ContactNumber).
		First(&existing).Error
	if err == nil {
		return nil, nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, mapStoreError(err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Password:      hash,
		Role:          in.Role,
		Status:        models.StatusActive,
	}

	profile, err := buildProfile(in.Role, in)
	if err != nil {
		return nil, nil, err
	}

	// User and profile are one unit of work: either both rows exist
	// afterwards or neither does.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		setProfileOwner(profile, user.ID)
		return tx.Create(profile).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, nil, ErrUserExists
		}
		return nil, nil, mapStoreError(err)
	}

	tokens, err := issueTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return &Principal{User: user, Profile: profile}, tokens, nil
}

// Login authenticates by email only. Unknown email and wrong password
// produce the same error to avoid account enumeration; account status
// is checked before the password.
func Login(db *gorm.DB, email, password string) (*Principal, *TokenPair, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, mapStoreError(err)
	}

	switch user.Status {
	case models.StatusBlocked:
		return nil, nil, ErrAccountBlocked
	case models.StatusInactive:
		return nil, nil, ErrAccountInactive
	case models.StatusPending:
		return nil, nil, ErrAccountPending
	}

	if !CheckPasswordHash(password, user.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	profile, err := loadProfile(db, &user)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := issueTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return &Principal{User: user, Profile: profile}, tokens, nil
}

// ChangePassword verifies the old password before storing the new hash
// and clears the forced-change flag.
func ChangePassword(db *gorm.DB, userID uuid.UUID, oldPassword, newPassword string) error {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return mapStoreError(err)
	}

	if !CheckPasswordHash(oldPassword, user.Password) {
		return ErrOldPasswordIncorrect
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = db.Model(&user).Updates(map[string]interface{}{
		"password":             hash,
		"need_password_change": false,
	}).Error
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

// Refresh verifies a refresh token and mints a new access token. The
// refresh token itself is not rotated. Any verification failure maps to
// the same generic error.
func Refresh(db *gorm.DB, refreshToken string) (string, error) {
	claims, err := ParseRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	// The token may outlive the account; re-load before trusting it.
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", mapStoreError(err)
	}

	return GenerateAccessToken(&user)
}

// buildProfile is the profile factory: it constructs the role-matching
// profile record from the registration fields. Roles outside the
// enumerated set are rejected by the handler before reaching here.
func buildProfile(role models.Role, in RegisterInput) (models.Profile, error) {
	switch role {
	case models.RoleAdmin, models.RoleSuperAdmin:
		return &models.AdminProfile{Name: in.Name}, nil
	case models.RoleHost:
		return &models.HostProfile{Name: in.Name}, nil
	case models.RoleCustomer:
		return &models.CustomerProfile{Name: in.Name}, nil
	case models.RoleDoctor:
		if in.RegistrationNumber == "" || in.Qualification == "" {
			return nil, ErrDoctorFieldsRequired
		}
		return &models.DoctorProfile{
			Name:               in.Name,
			RegistrationNumber: in.RegistrationNumber,
			Qualification:      in.Qualification,
			AppointmentFee:     in.AppointmentFee,
		}, nil
	}
	return nil, ErrInvalidRole
}

func setProfileOwner(profile models.Profile, userID uuid.UUID) {
	switch p := profile.(type) {
	case *models.AdminProfile:
		p.UserID = userID
	case *models.HostProfile:
		p.UserID = userID
	case *models.CustomerProfile:
		p.UserID = userID
	case *models.DoctorProfile:
		p.UserID = userID
	}
}

func issueTokenPair(user *models.User) (*TokenPair, error) {
	accessToken, err := GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// mapStoreError surfaces a missing schema as a user-facing condition
// instead of an opaque persistence fault.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "relation") || strings.Contains(msg, "no such table") {
		return ErrStoreNotReady
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
