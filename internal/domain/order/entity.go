package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPaymentIntent = errors.New("payment intent id is empty")
	ErrEmptySession       = errors.New("session id is empty")
	ErrNoLines            = errors.New("order has no line items")
)

// Order is the durable record a successful payment finalizes into. Once it
// exists, downstream failures (stock flags, notifications) never undo it.
type Order struct {
	id              uuid.UUID
	paymentIntentID string
	sessionID       string
	email           string
	totalCents      int64
	lines           []Line
	createdAt       time.Time
}

// Line is one purchased product, snapshotted at checkout so later catalog
// edits cannot rewrite history.
type Line struct {
	ProductID  uuid.UUID
	Name       string
	PriceCents int64
}

func NewOrder(paymentIntentID, sessionID, email string, lines []Line) (*Order, error) {
	if paymentIntentID == "" {
		return nil, ErrEmptyPaymentIntent
	}
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var total int64
	for _, l := range lines {
		total += l.PriceCents
	}

	return &Order{
		id:              uuid.New(),
		paymentIntentID: paymentIntentID,
		sessionID:       sessionID,
		email:           email,
		totalCents:      total,
		lines:           lines,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	paymentIntentID, sessionID, email string,
	totalCents int64,
	lines []Line,
	createdAt time.Time,
) *Order {
	return &Order{
		id:              id,
		paymentIntentID: paymentIntentID,
		sessionID:       sessionID,
		email:           email,
		totalCents:      totalCents,
		lines:           lines,
		createdAt:       createdAt,
	}
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) PaymentIntentID() string { return o.paymentIntentID }
func (o *Order) SessionID() string       { return o.sessionID }
func (o *Order) Email() string           { return o.email }
func (o *Order) TotalCents() int64       { return o.totalCents }
func (o *Order) Lines() []Line           { return o.lines }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
