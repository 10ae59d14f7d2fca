package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type HoldView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	SessionID string    `json:"session_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProductView struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	PriceCents        int64      `json:"price_cents"`
	Sold              bool       `json:"sold"`
	ReservedUntil     *time.Time `json:"reserved_until,omitempty"`
	ReservedBySession *string    `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// AvailabilityView is the cheap poll answer for "can I still add this item".
type AvailabilityView struct {
	ProductID     uuid.UUID  `json:"product_id"`
	Available     bool       `json:"available"`
	Sold          bool       `json:"sold"`
	ReservedUntil *time.Time `json:"reserved_until,omitempty"`
}

type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
}
