package auth

import (
	"errors"

	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/response"
	"github.com/gofiber/fiber/v2"
)

func RegisterHandler(c *fiber.Ctx) error {
	var body RegisterInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	fields := map[string]string{}
	if body.Email == "" {
		fields["email"] = "email is required"
	}
	if body.Password == "" {
		fields["password"] = "password is required"
	}
	if body.ContactNumber == "" {
		fields["contactNumber"] = "contactNumber is required"
	}
	if body.Name == "" {
		fields["name"] = "name is required"
	}
	if body.Role == "" {
		fields["role"] = "role is required"
	} else if !body.Role.Valid() {
		fields["role"] = "role must be one of ADMIN, SUPER_ADMIN, HOST, CUSTOMER, DOCTOR"
	}
	if len(fields) > 0 {
		return response.ValidationError(c, fields)
	}

	principal, tokens, err := Register(database.DB, body)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			return response.Conflict(c, ErrUserExists.Error())
		case errors.Is(err, ErrDoctorFieldsRequired):
			return response.BadRequest(c, ErrDoctorFieldsRequired.Error(), nil)
		case errors.Is(err, ErrStoreNotReady):
			return response.BadRequest(c, ErrStoreNotReady.Error(), nil)
		}
		return response.InternalError(c, "Failed to register user")
	}

	return response.Created(c, fiber.Map{
		"user":          principal,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	}, "User registered successfully")
}

func LoginHandler(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}

	principal, tokens, err := Login(database.DB, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, ErrAccountBlocked):
			return response.Unauthorized(c, "Your account has been blocked")
		case errors.Is(err, ErrAccountInactive):
			return response.Unauthorized(c, "Your account is inactive")
		case errors.Is(err, ErrAccountPending):
			return response.Unauthorized(c, "Your account is pending approval")
		case errors.Is(err, ErrStoreNotReady):
			return response.BadRequest(c, ErrStoreNotReady.Error(), nil)
		}
		return response.InternalError(c, "Failed to log in")
	}

	return response.Success(c, fiber.Map{
		"user":          principal,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	}, "Login successful")
}

func RefreshTokenHandler(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.RefreshToken == "" {
		return response.ValidationError(c, map[string]string{
			"refreshToken": "refreshToken is required",
		})
	}

	accessToken, err := Refresh(database.DB, body.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrStoreNotReady) {
			return response.BadRequest(c, ErrStoreNotReady.Error(), nil)
		}
		return response.Unauthorized(c, "Invalid or expired refresh token")
	}

	return response.Success(c, fiber.Map{
		"access_token": accessToken,
	}, "Access token refreshed successfully")
}

func ChangePasswordHandler(c *fiber.Ctx) error {
	principal := PrincipalFromCtx(c)
	if principal == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var body struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.OldPassword == "" || body.NewPassword == "" {
		return response.ValidationError(c, map[string]string{
			"oldPassword": "oldPassword is required",
			"newPassword": "newPassword is required",
		})
	}

	if err := ChangePassword(database.DB, principal.ID, body.OldPassword, body.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			return response.Unauthorized(c, "User not found")
		case errors.Is(err, ErrOldPasswordIncorrect):
			return response.BadRequest(c, "Old password is incorrect", nil)
		case errors.Is(err, ErrStoreNotReady):
			return response.BadRequest(c, ErrStoreNotReady.Error(), nil)
		}
		return response.InternalError(c, "Failed to change password")
	}

	return response.Success(c, nil, "Password changed successfully")
}
