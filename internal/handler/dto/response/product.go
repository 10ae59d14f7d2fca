package response

import (
	"time"

	"atelier-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	PriceCents    int64      `json:"price_cents"`
	Sold          bool       `json:"sold"`
	ReservedUntil *time.Time `json:"reserved_until,omitempty"`
}

type AvailabilityResponse struct {
	ProductID     uuid.UUID  `json:"product_id"`
	Available     bool       `json:"available"`
	Sold          bool       `json:"sold"`
	ReservedUntil *time.Time `json:"reserved_until,omitempty"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:            v.ID,
		Name:          v.Name,
		PriceCents:    v.PriceCents,
		Sold:          v.Sold,
		ReservedUntil: v.ReservedUntil,
	}
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	result := make([]*ProductResponse, len(views))
	for i, v := range views {
		result[i] = FromProductView(v)
	}
	return result
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ProductID:     v.ProductID,
		Available:     v.Available,
		Sold:          v.Sold,
		ReservedUntil: v.ReservedUntil,
	}
}
