package dto

import (
	"time"

	"alumnihub_backend/internals/features/community/connections/model"

	"github.com/google/uuid"
)

type ConnectionRequest struct {
	AddresseeID uuid.UUID `json:"addressee_id" validate:"required"`
	Message     string    `json:"message" validate:"omitempty,max=500"`
}

type ConnectionResponse struct {
	ConnectionID          uuid.UUID `json:"connection_id"`
	ConnectionRequesterID uuid.UUID `json:"connection_requester_id"`
	ConnectionAddresseeID uuid.UUID `json:"connection_addressee_id"`
	ConnectionStatus      string    `json:"connection_status"`
	ConnectionMessage     string    `json:"connection_message"`
	ConnectionCreatedAt   time.Time `json:"connection_created_at"`
	ConnectionUpdatedAt   time.Time `json:"connection_updated_at"`
}

func ToConnectionResponse(m *model.ConnectionModel) *ConnectionResponse {
	return &ConnectionResponse{
		ConnectionID:          m.ConnectionID,
		ConnectionRequesterID: m.ConnectionRequesterID,
		ConnectionAddresseeID: m.ConnectionAddresseeID,
		ConnectionStatus:      m.ConnectionStatus,
		ConnectionMessage:     m.ConnectionMessage,
		ConnectionCreatedAt:   m.ConnectionCreatedAt,
		ConnectionUpdatedAt:   m.ConnectionUpdatedAt,
	}
}

func ToConnectionResponseList(models []model.ConnectionModel) []ConnectionResponse {
	result := make([]ConnectionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToConnectionResponse(&models[i]))
	}
	return result
}
