package controller

import (
	"log"

	authDto "alumnihub_backend/internals/features/users/auth/dto"
	authModel "alumnihub_backend/internals/features/users/auth/model"
	"alumnihub_backend/internals/features/users/user/dto"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/u/profile
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "Profile fetched", authDto.ToUserResponse(&user))
}

// GET /api/u/profile/:user_id
// Another member's public profile.
func (ctrl *ProfileController) GetMemberProfile(c *fiber.Ctx) error {
	if _, err := helperAuth.GetUserIDFromToken(c); err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user authModel.UserModel
	if err := ctrl.DB.Where("user_id = ? AND user_is_active = TRUE", targetID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "Profile fetched", authDto.ToUserResponse(&user))
}

// PATCH /api/u/profile
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.UserBio != nil {
		updates["user_bio"] = *req.UserBio
	}
	if req.UserLocation != nil {
		updates["user_location"] = *req.UserLocation
	}
	if req.UserInterests != nil {
		updates["user_interests"] = pq.StringArray(*req.UserInterests)
	}
	if req.UserSkills != nil {
		updates["user_skills"] = pq.StringArray(*req.UserSkills)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update profile %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}

	return helper.JsonUpdated(c, "Profile updated", authDto.ToUserResponse(&user))
}

// PATCH /api/u/profile/avatar
// Multipart field "avatar".
func (ctrl *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Avatar file is required")
	}

	publicURL, err := helper.UploadImageToStorage("avatars", fileHeader)
	if err != nil {
		log.Printf("[ERROR] upload avatar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload avatar")
	}

	oldURL := user.UserAvatarURL
	if err := ctrl.DB.Model(&user).Update("user_avatar_url", publicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save avatar URL")
	}
	if oldURL != "" {
		if err := helper.DeleteFromStorage(oldURL); err != nil {
			log.Printf("[INFO] old avatar not deleted: %v", err)
		}
	}

	user.UserAvatarURL = publicURL
	return helper.JsonUpdated(c, "Avatar updated", authDto.ToUserResponse(&user))
}
