package controller

import (
	"log"
	"strings"

	"alumnihub_backend/internals/features/community/listing"
	"alumnihub_backend/internals/features/community/opportunities/dto"
	"alumnihub_backend/internals/features/community/opportunities/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityAdminController struct {
	DB      *gorm.DB
	Listing *listing.Builder
}

func NewOpportunityAdminController(db *gorm.DB) *OpportunityAdminController {
	return &OpportunityAdminController{DB: db, Listing: listing.NewBuilder(db)}
}

// POST /api/a/opportunities
func (ctrl *OpportunityAdminController) CreateOpportunity(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var req dto.OpportunityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	newOpp := req.ToModel(sess.SchoolID, sess.UserID)
	if err := ctrl.DB.Create(newOpp).Error; err != nil {
		log.Printf("[ERROR] create opportunity: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create opportunity")
	}

	return helper.JsonCreated(c, "Opportunity created", dto.ToOpportunityResponse(newOpp))
}

// GET /api/a/opportunities
func (ctrl *OpportunityAdminController) ListOpportunities(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 10, 100)

	res := ctrl.Listing.Build(c.UserContext(), listing.Query{
		SchoolID: sess.SchoolID,
		Kind:     listing.KindOpportunity,
		Filter:   strings.TrimSpace(c.Query("filter", listing.FilterAll)),
		Search:   strings.TrimSpace(c.Query("search")),
		Location: strings.TrimSpace(c.Query("location")),
		ViewerID: sess.UserID,
		Page:     paging.Page,
		PerPage:  paging.PerPage,
		Order:    listing.OrderDesc,
	})

	pagination := helper.BuildPagination(int64(res.Total), paging.Page, paging.PerPage)
	return helper.JsonListEx(c, "Opportunities fetched", res.Items, pagination, fiber.Map{
		"degraded": res.Degraded,
	})
}

// GET /api/a/opportunities/:id
func (ctrl *OpportunityAdminController) GetOpportunityByID(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	oppID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid opportunity ID")
	}

	var opp model.OpportunityModel
	if err := ctrl.DB.
		Where("opportunity_id = ? AND opportunity_school_id = ?", oppID, sess.SchoolID).
		First(&opp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}

	return helper.JsonOK(c, "Opportunity fetched", dto.ToOpportunityResponse(&opp))
}

// PATCH /api/a/opportunities/:id
func (ctrl *OpportunityAdminController) UpdateOpportunity(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	oppID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid opportunity ID")
	}

	var opp model.OpportunityModel
	if err := ctrl.DB.
		Where("opportunity_id = ? AND opportunity_school_id = ?", oppID, sess.SchoolID).
		First(&opp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}

	var req dto.OpportunityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.OpportunityTitle != nil {
		updates["opportunity_title"] = *req.OpportunityTitle
	}
	if req.OpportunityDescription != nil {
		updates["opportunity_description"] = *req.OpportunityDescription
	}
	if req.OpportunityCompanyName != nil {
		updates["opportunity_company_name"] = *req.OpportunityCompanyName
	}
	if req.OpportunityType != nil {
		updates["opportunity_type"] = *req.OpportunityType
	}
	if req.OpportunityLocation != nil {
		updates["opportunity_location"] = *req.OpportunityLocation
	}
	if req.OpportunitySalaryRange != nil {
		updates["opportunity_salary_range"] = *req.OpportunitySalaryRange
	}
	if req.OpportunityRequirements != nil {
		updates["opportunity_requirements"] = *req.OpportunityRequirements
	}
	if req.OpportunityApplicationProcess != nil {
		updates["opportunity_application_process"] = *req.OpportunityApplicationProcess
	}
	if req.OpportunityContactEmail != nil {
		updates["opportunity_contact_email"] = *req.OpportunityContactEmail
	}
	if req.OpportunityDeadline != nil {
		updates["opportunity_deadline"] = *req.OpportunityDeadline
	}
	if req.OpportunityStatus != nil {
		updates["opportunity_status"] = *req.OpportunityStatus
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&opp).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update opportunity %s: %v", oppID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update opportunity")
	}
	if err := ctrl.DB.Where("opportunity_id = ?", oppID).First(&opp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload opportunity")
	}

	return helper.JsonUpdated(c, "Opportunity updated", dto.ToOpportunityResponse(&opp))
}

// DELETE /api/a/opportunities/:id
func (ctrl *OpportunityAdminController) DeleteOpportunity(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	oppID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid opportunity ID")
	}

	var opp model.OpportunityModel
	if err := ctrl.DB.
		Where("opportunity_id = ? AND opportunity_school_id = ?", oppID, sess.SchoolID).
		First(&opp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}

	if err := ctrl.DB.Delete(&opp).Error; err != nil {
		log.Printf("[ERROR] delete opportunity %s: %v", oppID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete opportunity")
	}

	return helper.JsonDeleted(c, "Opportunity deleted", fiber.Map{"opportunity_id": oppID})
}

// GET /api/a/opportunities/:id/interests
func (ctrl *OpportunityAdminController) ListOpportunityInterests(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	oppID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid opportunity ID")
	}

	var opp model.OpportunityModel
	if err := ctrl.DB.
		Where("opportunity_id = ? AND opportunity_school_id = ?", oppID, sess.SchoolID).
		First(&opp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.OpportunityInterestModel{}).
		Where("opportunity_interest_opportunity_id = ?", oppID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count interests")
	}

	var interests []model.OpportunityInterestModel
	if err := ctrl.DB.
		Where("opportunity_interest_opportunity_id = ?", oppID).
		Order("opportunity_interest_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&interests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch interests")
	}

	return helper.JsonList(c, "Interests fetched", interests,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
