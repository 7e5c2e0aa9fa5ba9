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

type OpportunityUserController struct {
	DB      *gorm.DB
	Listing *listing.Builder
}

func NewOpportunityUserController(db *gorm.DB) *OpportunityUserController {
	return &OpportunityUserController{DB: db, Listing: listing.NewBuilder(db)}
}

// GET /api/u/opportunities
// Member feed: nearest deadline first.
func (ctrl *OpportunityUserController) ListOpportunities(c *fiber.Ctx) error {
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
		Order:    listing.OrderAsc,
	})

	pagination := helper.BuildPagination(int64(res.Total), paging.Page, paging.PerPage)
	return helper.JsonListEx(c, "Opportunities fetched", res.Items, pagination, fiber.Map{
		"degraded": res.Degraded,
	})
}

// GET /api/u/opportunities/:id
func (ctrl *OpportunityUserController) GetOpportunityByID(c *fiber.Ctx) error {
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

	// Counts are decoration; a store failure degrades them to zero.
	interestCount := helper.CountOrZero(
		ctrl.DB.Model(&model.OpportunityInterestModel{}).
			Where("opportunity_interest_opportunity_id = ?", oppID),
		"opportunity interests")
	mine := helper.CountOrZero(
		ctrl.DB.Model(&model.OpportunityInterestModel{}).
			Where("opportunity_interest_opportunity_id = ? AND opportunity_interest_user_id = ?", oppID, sess.UserID),
		"viewer interest")

	return helper.JsonOK(c, "Opportunity fetched", fiber.Map{
		"opportunity":      dto.ToOpportunityResponse(&opp),
		"interest_count":   interestCount,
		"viewer_interested": mine > 0,
	})
}

// First-write-wins: the unique index backs ON CONFLICT DO NOTHING, so a
// repeat express leaves the existing row (and the count) untouched.
const opportunityInterestInsertSQL = `
	INSERT INTO opportunity_interests (
		opportunity_interest_id,
		opportunity_interest_opportunity_id,
		opportunity_interest_user_id,
		opportunity_interest_school_id
	)
	VALUES (gen_random_uuid(), ?, ?, ?)
	ON CONFLICT (opportunity_interest_opportunity_id, opportunity_interest_user_id)
	DO NOTHING
`

// POST /api/u/opportunities/:id/interest
func (ctrl *OpportunityUserController) ExpressInterest(c *fiber.Ctx) error {
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
	if opp.OpportunityStatus == model.OpportunityStatusClosed {
		return helper.JsonError(c, fiber.StatusConflict, "Opportunity is closed")
	}

	interest := model.OpportunityInterestModel{
		OpportunityInterestOpportunityID: oppID,
		OpportunityInterestUserID:        sess.UserID,
		OpportunityInterestSchoolID:      sess.SchoolID,
	}
	res := ctrl.DB.Exec(opportunityInterestInsertSQL, oppID, sess.UserID, sess.SchoolID)
	if res.Error != nil {
		log.Printf("[ERROR] express interest %s: %v", oppID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to express interest")
	}
	if res.RowsAffected == 0 {
		return helper.JsonOK(c, "Interest already expressed", fiber.Map{
			"opportunity_id": oppID,
			"already":        true,
		})
	}

	return helper.JsonCreated(c, "Interest expressed", fiber.Map{
		"opportunity_id": interest.OpportunityInterestOpportunityID,
		"already":        false,
	})
}

// DELETE /api/u/opportunities/:id/interest
func (ctrl *OpportunityUserController) WithdrawInterest(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	oppID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid opportunity ID")
	}

	res := ctrl.DB.
		Where("opportunity_interest_opportunity_id = ? AND opportunity_interest_user_id = ?", oppID, sess.UserID).
		Delete(&model.OpportunityInterestModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to withdraw interest")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No interest to withdraw")
	}

	return helper.JsonDeleted(c, "Interest withdrawn", fiber.Map{"opportunity_id": oppID})
}
