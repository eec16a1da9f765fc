package user

import (
	"errors"

	"github.com/google/uuid"
	"github.com/roomly/api/internal/auth"
	"github.com/roomly/api/internal/database"
	"github.com/roomly/api/internal/models"
	"github.com/roomly/api/internal/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMeHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	if principal == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	return response.Success(c, principal, "User profile retrieved successfully")
}

type profileUpdateInput struct {
	Name           string   `json:"name"`
	ProfilePhoto   string   `json:"profilePhoto"`
	Address        string   `json:"address"`
	Preferences    string   `json:"preferences"`
	ContactDetails string   `json:"contactDetails"`
	Qualification  string   `json:"qualification"`
	Specialization string   `json:"specialization"`
	ClinicAddress  string   `json:"clinicAddress"`
	AppointmentFee *float64 `json:"appointmentFee"`
	Experience     *int     `json:"experience"`
}

// UpdateProfileHandler updates the caller's own role profile. Identity
// fields (email, contact number, role, status) are not writable here.
func UpdateProfileHandler(c *fiber.Ctx) error {
	principal := auth.PrincipalFromCtx(c)
	if principal == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var body profileUpdateInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	switch p := principal.Profile.(type) {
	case *models.AdminProfile:
		applyIfSet(&p.Name, body.Name)
		applyIfSet(&p.ProfilePhoto, body.ProfilePhoto)
		applyIfSet(&p.ContactDetails, body.ContactDetails)
		if err := database.DB.Save(p).Error; err != nil {
			return response.InternalError(c, "Failed to update profile")
		}
	case *models.HostProfile:
		applyIfSet(&p.Name, body.Name)
		applyIfSet(&p.ProfilePhoto, body.ProfilePhoto)
		applyIfSet(&p.Address, body.Address)
		applyIfSet(&p.Preferences, body.Preferences)
		if err := database.DB.Save(p).Error; err != nil {
			return response.InternalError(c, "Failed to update profile")
		}
	case *models.CustomerProfile:
		applyIfSet(&p.Name, body.Name)
		applyIfSet(&p.ProfilePhoto, body.ProfilePhoto)
		applyIfSet(&p.Address, body.Address)
		applyIfSet(&p.Preferences, body.Preferences)
		if err := database.DB.Save(p).Error; err != nil {
			return response.InternalError(c, "Failed to update profile")
		}
	case *models.DoctorProfile:
		applyIfSet(&p.Name, body.Name)
		applyIfSet(&p.ProfilePhoto, body.ProfilePhoto)
		applyIfSet(&p.Qualification, body.Qualification)
		applyIfSet(&p.Specialization, body.Specialization)
		applyIfSet(&p.ClinicAddress, body.ClinicAddress)
		if body.AppointmentFee != nil {
			p.AppointmentFee = *body.AppointmentFee
		}
		if body.Experience != nil {
			p.Experience = *body.Experience
		}
		if err := database.DB.Save(p).Error; err != nil {
			return response.InternalError(c, "Failed to update profile")
		}
	default:
		return response.InternalError(c, "Unknown profile type")
	}

	return response.Success(c, principal, "Profile updated successfully")
}

func ListUsersHandler(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := database.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("email LIKE ? OR contact_number LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to count users")
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch users")
	}

	principals := make([]*auth.Principal, 0, len(users))
	for i := range users {
		principal, err := auth.LoadPrincipal(database.DB, users[i].ID)
		if err != nil {
			return response.InternalError(c, "Failed to load user profile")
		}
		principals = append(principals, principal)
	}

	meta := response.CalculateMeta(page, limit, total)
	return response.SuccessWithMeta(c, principals, meta, "Users retrieved successfully")
}

func UpdateUserStatusHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var body struct {
		Status models.UserStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}
	if !body.Status.Valid() {
		return response.ValidationError(c, map[string]string{
			"status": "status must be one of ACTIVE, INACTIVE, BLOCKED, PENDING",
		})
	}

	var target models.User
	if err := database.DB.First(&target, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User")
		}
		return response.InternalError(c, "Failed to fetch user")
	}

	if err := database.DB.Model(&target).Update("status", body.Status).Error; err != nil {
		return response.InternalError(c, "Failed to update user status")
	}

	return response.Success(c, nil, "User status updated successfully")
}

// DeleteUserHandler removes the user and its role profile together; the
// profile never outlives its user.
func DeleteUserHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	principal := auth.PrincipalFromCtx(c)
	if principal != nil && principal.ID == id {
		return response.BadRequest(c, "Cannot delete your own account", nil)
	}

	var target models.User
	if err := database.DB.First(&target, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User")
		}
		return response.InternalError(c, "Failed to fetch user")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		switch target.Role {
		case models.RoleAdmin, models.RoleSuperAdmin:
			if err := tx.Where("user_id = ?", id).Delete(&models.AdminProfile{}).Error; err != nil {
				return err
			}
		case models.RoleHost:
			if err := tx.Where("user_id = ?", id).Delete(&models.HostProfile{}).Error; err != nil {
				return err
			}
		case models.RoleCustomer:
			if err := tx.Where("user_id = ?", id).Delete(&models.CustomerProfile{}).Error; err != nil {
				return err
			}
		case models.RoleDoctor:
			if err := tx.Where("user_id = ?", id).Delete(&models.DoctorProfile{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		return response.InternalError(c, "Failed to delete user")
	}

	return response.NoContent(c)
}

func applyIfSet(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
