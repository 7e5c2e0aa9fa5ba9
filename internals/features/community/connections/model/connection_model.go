package model

import (
	"time"

	"github.com/google/uuid"
)

// Connection statuses
const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusRejected = "rejected"
)

// One row per directed pair; the unique index rejects a duplicate request
// and the reverse direction is checked in the controller.
type ConnectionModel struct {
	ConnectionID          uuid.UUID `gorm:"column:connection_id;type:uuid;default:gen_random_uuid();primaryKey" json:"connection_id"`
	ConnectionSchoolID    uuid.UUID `gorm:"column:connection_school_id;type:uuid;not null;index:idx_connections_school_id" json:"connection_school_id"`
	ConnectionRequesterID uuid.UUID `gorm:"column:connection_requester_id;type:uuid;not null;uniqueIndex:ux_connections_requester_addressee" json:"connection_requester_id"`
	ConnectionAddresseeID uuid.UUID `gorm:"column:connection_addressee_id;type:uuid;not null;uniqueIndex:ux_connections_requester_addressee" json:"connection_addressee_id"`

	ConnectionStatus  string `gorm:"column:connection_status;type:varchar(20);not null;default:'pending'" json:"connection_status"`
	ConnectionMessage string `gorm:"column:connection_message;type:text" json:"connection_message"`

	ConnectionCreatedAt time.Time `gorm:"column:connection_created_at;type:timestamptz;autoCreateTime" json:"connection_created_at"`
	ConnectionUpdatedAt time.Time `gorm:"column:connection_updated_at;type:timestamptz;autoUpdateTime" json:"connection_updated_at"`
}

func (ConnectionModel) TableName() string {
	return "connections"
}
