package dto

import (
	"time"

	"alumnihub_backend/internals/features/community/messages/model"

	"github.com/google/uuid"
)

type MessageSendRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Subject     string    `json:"subject" validate:"omitempty,max=255"`
	Content     string    `json:"content" validate:"required,max=5000"`
}

type MessageResponse struct {
	MessageID          uuid.UUID  `json:"message_id"`
	MessageSenderID    uuid.UUID  `json:"message_sender_id"`
	MessageRecipientID uuid.UUID  `json:"message_recipient_id"`
	MessageSubject     string     `json:"message_subject"`
	MessageContent     string     `json:"message_content"`
	MessageIsRead      bool       `json:"message_is_read"`
	MessageReadAt      *time.Time `json:"message_read_at"`
	MessageCreatedAt   time.Time  `json:"message_created_at"`
}

func ToMessageResponse(m *model.MessageModel) *MessageResponse {
	return &MessageResponse{
		MessageID:          m.MessageID,
		MessageSenderID:    m.MessageSenderID,
		MessageRecipientID: m.MessageRecipientID,
		MessageSubject:     m.MessageSubject,
		MessageContent:     m.MessageContent,
		MessageIsRead:      m.MessageIsRead,
		MessageReadAt:      m.MessageReadAt,
		MessageCreatedAt:   m.MessageCreatedAt,
	}
}

func ToMessageResponseList(models []model.MessageModel) []MessageResponse {
	result := make([]MessageResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToMessageResponse(&models[i]))
	}
	return result
}
