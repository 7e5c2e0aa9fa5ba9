package controller

import (
	"log"
	"time"

	"alumnihub_backend/internals/constants"
	"alumnihub_backend/internals/features/schools/dto"
	"alumnihub_backend/internals/features/schools/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JoinRequestController struct {
	DB *gorm.DB
}

func NewJoinRequestController(db *gorm.DB) *JoinRequestController {
	return &JoinRequestController{DB: db}
}

// POST /api/u/schools/:school_id/join
// An existing member or a live pending request short-circuits.
func (ctrl *JoinRequestController) Apply(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolID, err := uuid.Parse(c.Params("school_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var req dto.JoinRequestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var school model.SchoolModel
	if err := ctrl.DB.Where("school_id = ?", schoolID).First(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	var existing int64
	if err := ctrl.DB.Model(&model.SchoolMemberModel{}).
		Where("school_member_school_id = ? AND school_member_user_id = ? AND school_member_status = ?",
			schoolID, userID, constants.MemberStatusActive).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check membership")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "You are already a member of this school")
	}

	var pending int64
	if err := ctrl.DB.Model(&model.JoinRequestModel{}).
		Where("join_request_school_id = ? AND join_request_user_id = ? AND join_request_status = ?",
			schoolID, userID, constants.JoinRequestPending).
		Count(&pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check pending requests")
	}
	if pending > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A join request is already pending")
	}

	jr := model.JoinRequestModel{
		JoinRequestSchoolID:       schoolID,
		JoinRequestUserID:         userID,
		JoinRequestMessage:        req.Message,
		JoinRequestStatus:         constants.JoinRequestPending,
		JoinRequestGraduationYear: req.GraduationYear,
	}
	if err := ctrl.DB.Create(&jr).Error; err != nil {
		log.Printf("[ERROR] create join request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit join request")
	}

	return helper.JsonCreated(c, "Join request submitted", jr)
}

// GET /api/a/join-requests
func (ctrl *JoinRequestController) ListPending(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.JoinRequestModel{}).
		Where("join_request_school_id = ?", sess.SchoolID).
		Where("join_request_status = ?", c.Query("status", constants.JoinRequestPending))

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count join requests")
	}

	var requests []model.JoinRequestModel
	if err := tx.
		Order("join_request_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch join requests")
	}

	return helper.JsonList(c, "Join requests fetched", requests,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/join-requests/:id/approve
// Membership insert and status flip share one transaction; a returning
// member's removed row is revived instead of duplicated.
func (ctrl *JoinRequestController) Approve(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var jr model.JoinRequestModel
	if err := ctrl.DB.
		Where("join_request_id = ? AND join_request_school_id = ?", requestID, sess.SchoolID).
		First(&jr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Join request not found")
	}
	if jr.JoinRequestStatus != constants.JoinRequestPending {
		return helper.JsonError(c, fiber.StatusConflict, "Join request is already settled")
	}

	now := time.Now()
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			INSERT INTO school_members (
				school_member_id,
				school_member_school_id,
				school_member_user_id,
				school_member_role,
				school_member_status,
				school_member_graduation_year
			)
			VALUES (gen_random_uuid(), ?, ?, ?, ?, ?)
			ON CONFLICT (school_member_school_id, school_member_user_id)
			DO UPDATE SET
				school_member_status = EXCLUDED.school_member_status,
				school_member_updated_at = NOW()
		`, jr.JoinRequestSchoolID, jr.JoinRequestUserID,
			constants.RoleMember, constants.MemberStatusActive,
			jr.JoinRequestGraduationYear).Error; err != nil {
			return err
		}
		return tx.Model(&jr).Updates(map[string]interface{}{
			"join_request_status":     constants.JoinRequestApproved,
			"join_request_decided_by": sess.UserID,
			"join_request_decided_at": now,
		}).Error
	})
	if err != nil {
		log.Printf("[ERROR] approve join request %s: %v", requestID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve join request")
	}

	jr.JoinRequestStatus = constants.JoinRequestApproved
	jr.JoinRequestDecidedBy = &sess.UserID
	jr.JoinRequestDecidedAt = &now
	return helper.JsonUpdated(c, "Join request approved", jr)
}

// PATCH /api/a/join-requests/:id/reject
func (ctrl *JoinRequestController) Reject(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var jr model.JoinRequestModel
	if err := ctrl.DB.
		Where("join_request_id = ? AND join_request_school_id = ?", requestID, sess.SchoolID).
		First(&jr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Join request not found")
	}
	if jr.JoinRequestStatus != constants.JoinRequestPending {
		return helper.JsonError(c, fiber.StatusConflict, "Join request is already settled")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&jr).Updates(map[string]interface{}{
		"join_request_status":     constants.JoinRequestRejected,
		"join_request_decided_by": sess.UserID,
		"join_request_decided_at": now,
	}).Error; err != nil {
		log.Printf("[ERROR] reject join request %s: %v", requestID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject join request")
	}

	jr.JoinRequestStatus = constants.JoinRequestRejected
	jr.JoinRequestDecidedBy = &sess.UserID
	jr.JoinRequestDecidedAt = &now
	return helper.JsonUpdated(c, "Join request rejected", jr)
}
