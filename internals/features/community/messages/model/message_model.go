package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageModel struct {
	MessageID          uuid.UUID `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"message_id"`
	MessageSchoolID    uuid.UUID `gorm:"column:message_school_id;type:uuid;not null;index:idx_messages_school_id" json:"message_school_id"`
	MessageSenderID    uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null;index:idx_messages_sender_id" json:"message_sender_id"`
	MessageRecipientID uuid.UUID `gorm:"column:message_recipient_id;type:uuid;not null;index:idx_messages_recipient_id" json:"message_recipient_id"`

	MessageSubject string `gorm:"column:message_subject;type:varchar(255)" json:"message_subject"`
	MessageContent string `gorm:"column:message_content;type:text;not null" json:"message_content"`

	MessageIsRead bool       `gorm:"column:message_is_read;not null;default:false" json:"message_is_read"`
	MessageReadAt *time.Time `gorm:"column:message_read_at;type:timestamptz" json:"message_read_at"`

	MessageCreatedAt time.Time      `gorm:"column:message_created_at;type:timestamptz;autoCreateTime" json:"message_created_at"`
	MessageDeletedAt gorm.DeletedAt `gorm:"column:message_deleted_at;type:timestamptz;index" json:"message_deleted_at,omitempty"`
}

func (MessageModel) TableName() string {
	return "messages"
}
