package auth_test

import (
	"testing"

	"github.com/roomly/api/internal/auth"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func serviceTestDB(t *testing.T) *gorm.DB {
	auth.Setup(tokenTestConfig())
	return testutils.TestDB(t)
}

func registerInput(email, contact string, role models.Role) auth.RegisterInput {
	in := auth.RegisterInput{
		Email:         email,
		Password:      "password123",
		ContactNumber: contact,
		Role:          role,
		Name:          "Test User",
	}
	if role == models.RoleDoctor {
		in.RegistrationNumber = "REG-" + contact
		in.Qualification = "MBBS"
		in.AppointmentFee = 50
	}
	return in
}

func TestRegisterCreatesMatchingProfile(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
	}{
		{"admin", models.RoleAdmin},
		{"super admin", models.RoleSuperAdmin},
		{"host", models.RoleHost},
		{"customer", models.RoleCustomer},
		{"doctor", models.RoleDoctor},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := serviceTestDB(t)

			email := "user@example.com"
			contact := "+100" + string(rune('0'+i))
			principal, tokens, err := auth.Register(db, registerInput(email, contact, tt.role))
			assert.NoError(t, err)
			assert.NotNil(t, principal)
			assert.NotNil(t, principal.Profile)
			assert.NotEmpty(t, tokens.AccessToken)
			assert.NotEmpty(t, tokens.RefreshToken)
			assert.Equal(t, models.StatusActive, principal.Status)
			assert.Empty(t, principal.Password, "password hash must not leave the service")

			// Exactly one profile row exists and its type matches the role.
			var adminCount, hostCount, customerCount, doctorCount int64
			db.Model(&models.AdminProfile{}).Count(&adminCount)
			db.Model(&models.HostProfile{}).Count(&hostCount)
			db.Model(&models.CustomerProfile{}).Count(&customerCount)
			db.Model(&models.DoctorProfile{}).Count(&doctorCount)
			assert.Equal(t, int64(1), adminCount+hostCount+customerCount+doctorCount)

			switch tt.role {
			case models.RoleAdmin, models.RoleSuperAdmin:
				assert.Equal(t, int64(1), adminCount)
			case models.RoleHost:
				assert.Equal(t, int64(1), hostCount)
			case models.RoleCustomer:
				assert.Equal(t, int64(1), customerCount)
			case models.RoleDoctor:
				assert.Equal(t, int64(1), doctorCount)
			}
		})
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	db := serviceTestDB(t)

	_, _, err := auth.Register(db, registerInput("a@x.com", "+1000", models.RoleCustomer))
	assert.NoError(t, err)

	// Same email, different contact.
	_, _, err = auth.Register(db, registerInput("a@x.com", "+1001", models.RoleCustomer))
	assert.ErrorIs(t, err, auth.ErrUserExists)

	// Same contact, different email.
	_, _, err = auth.Register(db, registerInput("b@x.com", "+1000", models.RoleCustomer))
	assert.ErrorIs(t, err, auth.ErrUserExists)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterDoctorRequiresFields(t *testing.T) {
	db := serviceTestDB(t)

	in := registerInput("doc@x.com", "+2000", models.RoleDoctor)
	in.RegistrationNumber = ""

	_, _, err := auth.Register(db, in)
	assert.ErrorIs(t, err, auth.ErrDoctorFieldsRequired)

	// Nothing was persisted: no partial writes.
	var userCount, doctorCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.DoctorProfile{}).Count(&doctorCount)
	assert.Zero(t, userCount)
	assert.Zero(t, doctorCount)

	in.RegistrationNumber = "REG-1"
	in.Qualification = ""
	_, _, err = auth.Register(db, in)
	assert.ErrorIs(t, err, auth.ErrDoctorFieldsRequired)
}

func TestLoginStatusGate(t *testing.T) {
	tests := []struct {
		status  models.UserStatus
		wantErr error
	}{
		{models.StatusBlocked, auth.ErrAccountBlocked},
		{models.StatusInactive, auth.ErrAccountInactive},
		{models.StatusPending, auth.ErrAccountPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			db := serviceTestDB(t)
			user := testutils.CreateTestUser(t, db, "gate@x.com", "+3000", "password123", models.RoleCustomer)
			testutils.SetUserStatus(t, db, user.ID, tt.status)

			// Correct password still fails while the status gate holds.
			_, _, err := auth.Login(db, "gate@x.com", "password123")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := serviceTestDB(t)
	testutils.CreateTestUser(t, db, "login@x.com", "+4000", "password123", models.RoleCustomer)

	// Unknown email and wrong password are indistinguishable.
	_, _, err := auth.Login(db, "nobody@x.com", "password123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = auth.Login(db, "login@x.com", "wrongpassword")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	db := serviceTestDB(t)
	testutils.CreateTestUser(t, db, "ok@x.com", "+5000", "password123", models.RoleHost)

	principal, tokens, err := auth.Login(db, "ok@x.com", "password123")
	assert.NoError(t, err)
	assert.Empty(t, principal.Password)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	// Both tokens verify against their own class.
	_, err = auth.ParseAccessToken(tokens.AccessToken)
	assert.NoError(t, err)
	_, err = auth.ParseRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	db := serviceTestDB(t)
	user := testutils.CreateTestUser(t, db, "change@x.com", "+6000", "oldpassword", models.RoleCustomer)

	err := auth.ChangePassword(db, user.ID, "wrongold", "newpassword")
	assert.ErrorIs(t, err, auth.ErrOldPasswordIncorrect)

	err = auth.ChangePassword(db, user.ID, "oldpassword", "newpassword")
	assert.NoError(t, err)

	// Old password no longer authenticates, the new one does.
	_, _, err = auth.Login(db, "change@x.com", "oldpassword")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = auth.Login(db, "change@x.com", "newpassword")
	assert.NoError(t, err)

	var updated models.User
	db.First(&updated, "id = ?", user.ID)
	assert.False(t, updated.NeedPasswordChange)
}

func TestRefreshToken(t *testing.T) {
	db := serviceTestDB(t)
	testutils.CreateTestUser(t, db, "refresh@x.com", "+7000", "password123", models.RoleCustomer)

	_, tokens, err := auth.Login(db, "refresh@x.com", "password123")
	assert.NoError(t, err)

	accessToken, err := auth.Refresh(db, tokens.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := auth.ParseAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "refresh@x.com", claims.Email)

	// Refresh tokens are not single-use: a second call succeeds too.
	again, err := auth.Refresh(db, tokens.RefreshToken)
	assert.NoError(t, err)
	againClaims, err := auth.ParseAccessToken(again)
	assert.NoError(t, err)
	assert.Equal(t, claims.UserID, againClaims.UserID)

	// An access token is not accepted as a refresh token.
	_, err = auth.Refresh(db, tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)

	_, err = auth.Refresh(db, "garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshTokenForDeletedUser(t *testing.T) {
	db := serviceTestDB(t)
	user := testutils.CreateTestUser(t, db, "gone@x.com", "+8000", "password123", models.RoleCustomer)

	_, tokens, err := auth.Login(db, "gone@x.com", "password123")
	assert.NoError(t, err)

	db.Where("user_id = ?", user.ID).Delete(&models.CustomerProfile{})
	db.Delete(&models.User{}, "id = ?", user.ID)

	_, err = auth.Refresh(db, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}
