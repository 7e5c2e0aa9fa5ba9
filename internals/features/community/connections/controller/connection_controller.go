package controller

import (
	"log"

	"alumnihub_backend/internals/constants"
	"alumnihub_backend/internals/features/community/connections/dto"
	"alumnihub_backend/internals/features/community/connections/model"
	schoolModel "alumnihub_backend/internals/features/schools/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConnectionController struct {
	DB *gorm.DB
}

func NewConnectionController(db *gorm.DB) *ConnectionController {
	return &ConnectionController{DB: db}
}

// POST /api/u/connections
// The unique index catches a duplicate request; a live reverse request or
// an accepted pair is rejected up front.
func (ctrl *ConnectionController) RequestConnection(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var req dto.ConnectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.AddresseeID == sess.UserID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot connect with yourself")
	}

	var membership int64
	if err := ctrl.DB.Model(&schoolModel.SchoolMemberModel{}).
		Where("school_member_school_id = ? AND school_member_user_id = ? AND school_member_status = ?",
			sess.SchoolID, req.AddresseeID, constants.MemberStatusActive).
		Count(&membership).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check member")
	}
	if membership == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found in this school")
	}

	var reverse int64
	if err := ctrl.DB.Model(&model.ConnectionModel{}).
		Where("connection_requester_id = ? AND connection_addressee_id = ?", req.AddresseeID, sess.UserID).
		Where("connection_status IN ?", []string{model.ConnectionStatusPending, model.ConnectionStatusAccepted}).
		Count(&reverse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check connection")
	}
	if reverse > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A connection with this member already exists")
	}

	conn := model.ConnectionModel{
		ConnectionSchoolID:    sess.SchoolID,
		ConnectionRequesterID: sess.UserID,
		ConnectionAddresseeID: req.AddresseeID,
		ConnectionStatus:      model.ConnectionStatusPending,
		ConnectionMessage:     req.Message,
	}
	if err := ctrl.DB.Create(&conn).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Connection request already sent")
		}
		log.Printf("[ERROR] request connection: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to request connection")
	}

	return helper.JsonCreated(c, "Connection requested", dto.ToConnectionResponse(&conn))
}

// PATCH /api/u/connections/:id/accept
func (ctrl *ConnectionController) AcceptConnection(c *fiber.Ctx) error {
	return ctrl.decide(c, model.ConnectionStatusAccepted, "Connection accepted")
}

// PATCH /api/u/connections/:id/reject
func (ctrl *ConnectionController) RejectConnection(c *fiber.Ctx) error {
	return ctrl.decide(c, model.ConnectionStatusRejected, "Connection rejected")
}

// decide: only the addressee can settle a pending request.
func (ctrl *ConnectionController) decide(c *fiber.Ctx, status, message string) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	connID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid connection ID")
	}

	var conn model.ConnectionModel
	if err := ctrl.DB.
		Where("connection_id = ? AND connection_school_id = ? AND connection_addressee_id = ?",
			connID, sess.SchoolID, sess.UserID).
		First(&conn).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Connection request not found")
	}
	if conn.ConnectionStatus != model.ConnectionStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Connection request is already settled")
	}

	if err := ctrl.DB.Model(&conn).
		Update("connection_status", status).Error; err != nil {
		log.Printf("[ERROR] decide connection %s: %v", connID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update connection")
	}
	conn.ConnectionStatus = status

	return helper.JsonUpdated(c, message, dto.ToConnectionResponse(&conn))
}

// GET /api/u/connections
// ?status= filters; default lists accepted connections in either direction.
func (ctrl *ConnectionController) ListConnections(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	status := c.Query("status", model.ConnectionStatusAccepted)

	tx := ctrl.DB.Model(&model.ConnectionModel{}).
		Where("connection_school_id = ?", sess.SchoolID).
		Where("connection_status = ?", status).
		Where("(connection_requester_id = ? OR connection_addressee_id = ?)", sess.UserID, sess.UserID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count connections")
	}

	var conns []model.ConnectionModel
	if err := tx.
		Order("connection_updated_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&conns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch connections")
	}

	return helper.JsonList(c, "Connections fetched", dto.ToConnectionResponseList(conns),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/connections/pending
// Incoming requests awaiting the viewer's decision.
func (ctrl *ConnectionController) ListPending(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.ConnectionModel{}).
		Where("connection_school_id = ?", sess.SchoolID).
		Where("connection_addressee_id = ?", sess.UserID).
		Where("connection_status = ?", model.ConnectionStatusPending)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count requests")
	}

	var conns []model.ConnectionModel
	if err := tx.
		Order("connection_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&conns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch requests")
	}

	return helper.JsonList(c, "Pending requests fetched", dto.ToConnectionResponseList(conns),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}
