package controller

import (
	"log"
	"strings"

	"alumnihub_backend/internals/constants"
	"alumnihub_backend/internals/features/schools/dto"
	"alumnihub_backend/internals/features/schools/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// POST /api/u/schools
// Creator becomes owner of the school and its first admin member, in one
// transaction.
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SchoolCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	school := model.SchoolModel{
		SchoolName:        req.SchoolName,
		SchoolSlug:        helper.GenerateSlug(req.SchoolName),
		SchoolDescription: req.SchoolDescription,
		SchoolLocation:    req.SchoolLocation,
		SchoolWebsite:     req.SchoolWebsite,
		SchoolOwnerID:     userID,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&school).Error; err != nil {
			return err
		}
		member := model.SchoolMemberModel{
			SchoolMemberSchoolID: school.SchoolID,
			SchoolMemberUserID:   userID,
			SchoolMemberRole:     constants.RoleAdmin,
			SchoolMemberStatus:   constants.MemberStatusActive,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A school with this name already exists")
		}
		log.Printf("[ERROR] create school: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create school")
	}

	return helper.JsonCreated(c, "School created", dto.ToSchoolResponse(&school))
}

// GET /api/public/schools
// Public directory with search and pagination.
func (ctrl *SchoolController) ListSchools(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.SchoolModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("(school_name ILIKE ? OR school_location ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schools")
	}

	var schools []model.SchoolModel
	if err := tx.
		Order("school_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schools")
	}

	return helper.JsonList(c, "Schools fetched", dto.ToSchoolResponseList(schools),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/public/schools/:slug
func (ctrl *SchoolController) GetSchoolBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug is required")
	}

	var school model.SchoolModel
	if err := ctrl.DB.Where("school_slug = ?", slug).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	return helper.JsonOK(c, "School fetched", dto.ToSchoolResponse(&school))
}

// PATCH /api/a/schools
func (ctrl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var school model.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", sess.SchoolID).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	var req dto.SchoolUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.SchoolName != nil {
		updates["school_name"] = *req.SchoolName
		updates["school_slug"] = helper.GenerateSlug(*req.SchoolName)
	}
	if req.SchoolDescription != nil {
		updates["school_description"] = *req.SchoolDescription
	}
	if req.SchoolLocation != nil {
		updates["school_location"] = *req.SchoolLocation
	}
	if req.SchoolWebsite != nil {
		updates["school_website"] = *req.SchoolWebsite
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&school).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A school with this name already exists")
		}
		log.Printf("[ERROR] update school %s: %v", sess.SchoolID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update school")
	}
	if err := ctrl.DB.Where("school_id = ?", sess.SchoolID).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload school")
	}

	return helper.JsonUpdated(c, "School updated", dto.ToSchoolResponse(&school))
}

// PATCH /api/a/schools/logo
// Multipart field "logo"; the old object is removed after a successful
// swap.
func (ctrl *SchoolController) UploadLogo(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var school model.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", sess.SchoolID).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Logo file is required")
	}

	publicURL, err := helper.UploadImageToStorage("school-logos", fileHeader)
	if err != nil {
		log.Printf("[ERROR] upload school logo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload logo")
	}

	oldURL := school.SchoolLogoURL
	if err := ctrl.DB.Model(&school).Update("school_logo_url", publicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save logo URL")
	}
	if oldURL != "" {
		if err := helper.DeleteFromStorage(oldURL); err != nil {
			log.Printf("[INFO] old logo not deleted: %v", err)
		}
	}

	school.SchoolLogoURL = publicURL
	return helper.JsonUpdated(c, "Logo updated", dto.ToSchoolResponse(&school))
}

// DELETE /api/a/schools
// Owner only; soft delete.
func (ctrl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var school model.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", sess.SchoolID).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}
	if school.SchoolOwnerID != sess.UserID && !sess.IsOwner {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the school owner can delete the school")
	}

	if err := ctrl.DB.Delete(&school).Error; err != nil {
		log.Printf("[ERROR] delete school %s: %v", sess.SchoolID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school")
	}

	return helper.JsonDeleted(c, "School deleted", fiber.Map{"school_id": school.SchoolID})
}

// GET /api/u/schools/members
// Member directory: tenant-scoped, searchable by title, paginated.
func (ctrl *SchoolController) ListMembers(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.SchoolMemberModel{}).
		Where("school_member_school_id = ? AND school_member_status = ?",
			sess.SchoolID, constants.MemberStatusActive)

	if year := c.QueryInt("graduation_year"); year > 0 {
		tx = tx.Where("school_member_graduation_year = ?", year)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		tx = tx.Where("school_member_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []model.SchoolMemberModel
	if err := tx.
		Order("school_member_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	return helper.JsonList(c, "Members fetched", members,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/schools/members/:user_id
// Role or status change by an admin.
func (ctrl *SchoolController) UpdateMember(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	memberUserID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var member model.SchoolMemberModel
	if err := ctrl.DB.
		Where("school_member_school_id = ? AND school_member_user_id = ?", sess.SchoolID, memberUserID).
		First(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["school_member_role"] = *req.Role
	}
	if req.Status != nil {
		updates["school_member_status"] = *req.Status
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&member).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update member %s: %v", memberUserID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}

	return helper.JsonUpdated(c, "Member updated", member)
}
