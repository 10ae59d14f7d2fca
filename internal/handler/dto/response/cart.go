package response

import (
	"time"

	"atelier-store/internal/domain/reservation"
	"atelier-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type HoldResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	Status        string    `json:"status"`
	ReservedUntil time.Time `json:"reserved_until"`
	CreatedAt     time.Time `json:"created_at"`
}

type CartResponse struct {
	Items []HoldResponse `json:"items"`
}

func FromHold(h *reservation.Hold) *HoldResponse {
	return &HoldResponse{
		ID:            h.ID(),
		ProductID:     h.ProductID(),
		Status:        h.Status().String(),
		ReservedUntil: h.ExpiresAt().UTC(),
		CreatedAt:     h.CreatedAt().UTC(),
	}
}

func FromHoldView(v *queries.HoldView) HoldResponse {
	return HoldResponse{
		ID:            v.ID,
		ProductID:     v.ProductID,
		Status:        v.Status,
		ReservedUntil: v.ExpiresAt.UTC(),
		CreatedAt:     v.CreatedAt.UTC(),
	}
}

func FromHoldViews(views []*queries.HoldView) *CartResponse {
	items := make([]HoldResponse, len(views))
	for i, v := range views {
		items[i] = FromHoldView(v)
	}
	return &CartResponse{Items: items}
}
