package request

import (
	"encoding/json"
	"errors"

	"atelier-store/internal/usecase/commands"
)

var (
	ErrUnknownEventType  = errors.New("unknown payment event type")
	ErrMalformedSnapshot = errors.New("malformed cart snapshot")
)

// PaymentWebhookRequest is the processor's callback body. The cart snapshot
// travels as a JSON string inside metadata because processors pass metadata
// as flat string pairs.
type PaymentWebhookRequest struct {
	ID   string `json:"id" binding:"required"`
	Type string `json:"type" binding:"required"`
	Data struct {
		PaymentIntentID string          `json:"payment_intent_id" binding:"required"`
		Metadata        PaymentMetadata `json:"metadata"`
	} `json:"data" binding:"required"`
}

type PaymentMetadata struct {
	SessionID    string `json:"session_id"`
	Email        string `json:"email"`
	CartSnapshot string `json:"cart_snapshot"`
}

func (r *PaymentWebhookRequest) ToEvent() (commands.PaymentEvent, error) {
	var outcome commands.PaymentOutcome
	switch r.Type {
	case "payment_intent.succeeded":
		outcome = commands.PaymentSucceeded
	case "payment_intent.payment_failed":
		outcome = commands.PaymentFailed
	default:
		return commands.PaymentEvent{}, ErrUnknownEventType
	}

	evt := commands.PaymentEvent{
		IntentID:  r.Data.PaymentIntentID,
		Outcome:   outcome,
		SessionID: r.Data.Metadata.SessionID,
		Email:     r.Data.Metadata.Email,
	}

	if outcome == commands.PaymentSucceeded {
		if err := json.Unmarshal([]byte(r.Data.Metadata.CartSnapshot), &evt.Items); err != nil {
			return commands.PaymentEvent{}, ErrMalformedSnapshot
		}
	}

	return evt, nil
}
