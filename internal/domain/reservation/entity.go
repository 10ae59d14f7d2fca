package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySession    = errors.New("session id is empty")
	ErrInvalidDuration = errors.New("hold duration must be positive")
	ErrHoldNotActive   = errors.New("hold is not active")
	ErrInvalidStatus   = errors.New("invalid hold status")
)

// Hold is a time-bounded exclusive claim on one unit of inventory by one
// shopper session.
type Hold struct {
	id        uuid.UUID
	productID uuid.UUID
	sessionID string
	status    Status
	createdAt time.Time
	expiresAt time.Time
}

func NewHold(now time.Time, productID uuid.UUID, sessionID string, duration time.Duration) (*Hold, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Hold{
		id:        uuid.New(),
		productID: productID,
		sessionID: sessionID,
		status:    StatusActive,
		createdAt: now,
		expiresAt: now.Add(duration),
	}, nil
}

func ReconstructHold(
	id, productID uuid.UUID,
	sessionID string,
	status Status,
	createdAt, expiresAt time.Time,
) *Hold {
	return &Hold{
		id:        id,
		productID: productID,
		sessionID: sessionID,
		status:    status,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

// HasLapsed reports whether the hold's lifetime has passed, regardless of
// whether the sweep has recorded that yet.
func (h *Hold) HasLapsed(now time.Time) bool {
	return !now.Before(h.expiresAt)
}

func (h *Hold) Remaining(now time.Time) time.Duration {
	if h.HasLapsed(now) {
		return 0
	}
	return h.expiresAt.Sub(now)
}

func (h *Hold) IsActive() bool {
	return h.status == StatusActive
}

// Expire releases the hold by timeout or payment failure. Terminal states
// stay untouched.
func (h *Hold) Expire() error {
	if h.status.IsTerminal() {
		return ErrHoldNotActive
	}
	h.status = StatusExpired
	return nil
}

// Complete consumes the hold into a finished order.
func (h *Hold) Complete() error {
	if h.status != StatusActive {
		return ErrHoldNotActive
	}
	h.status = StatusCompleted
	return nil
}

func (h *Hold) ID() uuid.UUID        { return h.id }
func (h *Hold) ProductID() uuid.UUID { return h.productID }
func (h *Hold) SessionID() string    { return h.sessionID }
func (h *Hold) Status() Status       { return h.status }
func (h *Hold) CreatedAt() time.Time { return h.createdAt }
func (h *Hold) ExpiresAt() time.Time { return h.expiresAt }
