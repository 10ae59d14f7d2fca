package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "atelier-store/internal/handler/dto/request"
	"atelier-store/internal/pkg/config"
	"atelier-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "X-Payment-Signature"

type PaymentWebhookHandler struct {
	checkoutCommands commands.CheckoutCommands
	secret           []byte
}

func NewPaymentWebhookHandler(checkoutCommands commands.CheckoutCommands, cfg config.Config) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		checkoutCommands: checkoutCommands,
		secret:           []byte(cfg.Webhook.Secret),
	}
}

// @Summary Payment processor callback
// @Description Signature-verified payment outcome; idempotent under redelivery
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Payment-Signature header string true "HMAC-SHA256 of the raw body, hex-encoded"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	if !h.verifySignature(body, c.GetHeader(signatureHeader)) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	var req reqdto.PaymentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	evt, err := req.ToEvent()
	if err != nil {
		switch {
		case errors.Is(err, reqdto.ErrUnknownEventType):
			// Events this subsystem does not consume are acknowledged so the
			// processor stops redelivering them.
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid event payload",
			})
		}
		return
	}

	if err := h.checkoutCommands.HandlePaymentOutcome(c.Request.Context(), evt); err != nil {
		// Returning 5xx hands the retry to the processor's own redelivery;
		// both outcome paths are idempotent, so that is safe.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}

func (h *PaymentWebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
