//go:build unit

package api_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier-store/internal/handler/api"
	"atelier-store/internal/pkg/config"
	"atelier-store/internal/usecase/commands"
	commandsmock "atelier-store/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec_test"

type PaymentWebhookTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
}

func (s *PaymentWebhookTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)

	cfg := config.Config{Webhook: config.WebhookConfig{Secret: webhookSecret}}
	handler := api.NewPaymentWebhookHandler(s.mockCheckout, cfg)
	s.router.POST("/webhooks/payment", handler.Handle)
}

func (s *PaymentWebhookTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentWebhookSuite(t *testing.T) {
	suite.Run(t, new(PaymentWebhookTestSuite))
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func successBody(productID uuid.UUID) []byte {
	snapshot, _ := json.Marshal([]map[string]any{
		{"product_id": productID, "name": "ceramic vase", "price_cents": 4200},
	})
	body, _ := json.Marshal(map[string]any{
		"id":   "evt_1",
		"type": "payment_intent.succeeded",
		"data": map[string]any{
			"payment_intent_id": "pi_123",
			"metadata": map[string]any{
				"session_id":    "aabbccddeeff00112233445566778899",
				"email":         "shopper@example.com",
				"cart_snapshot": string(snapshot),
			},
		},
	})
	return body
}

func (s *PaymentWebhookTestSuite) deliver(body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Payment-Signature", signature)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PaymentWebhookTestSuite) TestValidSuccessEvent() {
	productID := uuid.New()
	body := successBody(productID)

	s.mockCheckout.EXPECT().
		HandlePaymentOutcome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, evt commands.PaymentEvent) error {
			s.Equal("pi_123", evt.IntentID)
			s.Equal(commands.PaymentSucceeded, evt.Outcome)
			s.Require().Len(evt.Items, 1)
			s.Equal(productID, evt.Items[0].ProductID)
			return nil
		})

	w := s.deliver(body, sign(body, webhookSecret))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "processed")
}

func (s *PaymentWebhookTestSuite) TestMissingSignature() {
	w := s.deliver(successBody(uuid.New()), "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PaymentWebhookTestSuite) TestWrongSignature() {
	body := successBody(uuid.New())
	w := s.deliver(body, sign(body, "whsec_other"))
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PaymentWebhookTestSuite) TestTamperedBody() {
	body := successBody(uuid.New())
	signature := sign(body, webhookSecret)
	tampered := bytes.Replace(body, []byte("pi_123"), []byte("pi_999"), 1)

	w := s.deliver(tampered, signature)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PaymentWebhookTestSuite) TestUnknownEventTypeAcknowledged() {
	body, _ := json.Marshal(map[string]any{
		"id":   "evt_2",
		"type": "charge.refunded",
		"data": map[string]any{"payment_intent_id": "pi_123"},
	})

	w := s.deliver(body, sign(body, webhookSecret))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "ignored")
}

func (s *PaymentWebhookTestSuite) TestMalformedSnapshotRejected() {
	body, _ := json.Marshal(map[string]any{
		"id":   "evt_3",
		"type": "payment_intent.succeeded",
		"data": map[string]any{
			"payment_intent_id": "pi_123",
			"metadata": map[string]any{
				"session_id":    "aabbccddeeff00112233445566778899",
				"cart_snapshot": "not json",
			},
		},
	})

	w := s.deliver(body, sign(body, webhookSecret))
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PaymentWebhookTestSuite) TestCommandFailureHandsRetryToProcessor() {
	body := successBody(uuid.New())

	s.mockCheckout.EXPECT().
		HandlePaymentOutcome(gomock.Any(), gomock.Any()).
		Return(commands.ErrOrderCreationFailed)

	w := s.deliver(body, sign(body, webhookSecret))
	s.Equal(http.StatusInternalServerError, w.Code)
}
