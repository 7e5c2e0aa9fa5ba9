package controller

import (
	"log"
	"time"

	"alumnihub_backend/internals/constants"
	"alumnihub_backend/internals/features/community/messages/dto"
	"alumnihub_backend/internals/features/community/messages/model"
	schoolModel "alumnihub_backend/internals/features/schools/model"
	helper "alumnihub_backend/internals/helpers"
	helperAuth "alumnihub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// POST /api/u/messages
// Recipient must be an active member of the same school.
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}

	var req dto.MessageSendRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.RecipientID == sess.UserID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot message yourself")
	}

	var membership int64
	if err := ctrl.DB.Model(&schoolModel.SchoolMemberModel{}).
		Where("school_member_school_id = ? AND school_member_user_id = ? AND school_member_status = ?",
			sess.SchoolID, req.RecipientID, constants.MemberStatusActive).
		Count(&membership).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check recipient")
	}
	if membership == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Recipient not found in this school")
	}

	msg := model.MessageModel{
		MessageSchoolID:    sess.SchoolID,
		MessageSenderID:    sess.UserID,
		MessageRecipientID: req.RecipientID,
		MessageSubject:     req.Subject,
		MessageContent:     req.Content,
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		log.Printf("[ERROR] send message: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	return helper.JsonCreated(c, "Message sent", dto.ToMessageResponse(&msg))
}

// GET /api/u/messages/inbox
func (ctrl *MessageController) Inbox(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_school_id = ? AND message_recipient_id = ?", sess.SchoolID, sess.UserID)
	if c.Query("unread") == "true" {
		tx = tx.Where("message_is_read = FALSE")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var messages []model.MessageModel
	if err := tx.
		Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch inbox")
	}

	return helper.JsonList(c, "Inbox fetched", dto.ToMessageResponseList(messages),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/messages/sent
func (ctrl *MessageController) Sent(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_school_id = ? AND message_sender_id = ?", sess.SchoolID, sess.UserID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var messages []model.MessageModel
	if err := tx.
		Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sent messages")
	}

	return helper.JsonList(c, "Sent messages fetched", dto.ToMessageResponseList(messages),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/messages/thread/:user_id
// Both directions between the viewer and the other member, oldest first.
func (ctrl *MessageController) Thread(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	otherID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_school_id = ?", sess.SchoolID).
		Where(`(
			(message_sender_id = ? AND message_recipient_id = ?) OR
			(message_sender_id = ? AND message_recipient_id = ?)
		)`, sess.UserID, otherID, otherID, sess.UserID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count thread")
	}

	var messages []model.MessageModel
	if err := tx.
		Order("message_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch thread")
	}

	return helper.JsonList(c, "Thread fetched", dto.ToMessageResponseList(messages),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// PATCH /api/u/messages/:id/read
// Only the recipient can mark; marking twice is a no-op.
func (ctrl *MessageController) MarkRead(c *fiber.Ctx) error {
	sess, err := helperAuth.GetSessionContext(c)
	if err != nil {
		return err
	}
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message ID")
	}

	var msg model.MessageModel
	if err := ctrl.DB.
		Where("message_id = ? AND message_school_id = ? AND message_recipient_id = ?",
			messageID, sess.SchoolID, sess.UserID).
		First(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	if !msg.MessageIsRead {
		now := time.Now()
		if err := ctrl.DB.Model(&msg).Updates(map[string]interface{}{
			"message_is_read": true,
			"message_read_at": now,
		}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark message as read")
		}
		msg.MessageIsRead = true
		msg.MessageReadAt = &now
	}

	return helper.JsonUpdated(c, "Message marked as read", dto.ToMessageResponse(&msg))
}
