package dto

import (
	"time"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
)

// RegisterMovementRequest entrada para registrar movimento de estoque manual.
// Tipos aceitos: in, out, adjustment. O tipo sale é exclusivo da finalização.
type RegisterMovementRequest struct {
	ProductID string              `json:"productId"`
	Type      entity.MovementType `json:"type"`
	Quantity  int                 `json:"quantity"`
	Reason    string              `json:"reason"`
}

// MovementResponse saída de um movimento de estoque.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
