package cashfree

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/fundflow/collection-service/internal/domain"
)

// Webhook event types delivered by the gateway. Delivery is at-least-once,
// so the same event can arrive more than once.
const (
	EventPaymentSuccess     = "PAYMENT_SUCCESS_WEBHOOK"
	EventPaymentFailed      = "PAYMENT_FAILED_WEBHOOK"
	EventPaymentUserDropped = "PAYMENT_USER_DROPPED_WEBHOOK"
)

type WebhookPayload struct {
	Type string      `json:"type"`
	Data WebhookData `json:"data"`
}

type WebhookData struct {
	Order   WebhookOrder   `json:"order"`
	Payment WebhookPayment `json:"payment"`
}

type WebhookOrder struct {
	OrderID       string  `json:"order_id"`
	OrderAmount   float64 `json:"order_amount"`
	OrderCurrency string  `json:"order_currency"`
}

type WebhookPayment struct {
	CFPaymentID   json.Number `json:"cf_payment_id"`
	PaymentStatus string      `json:"payment_status"`
	PaymentMethod interface{} `json:"payment_method"`
	PaymentAmount float64     `json:"payment_amount"`
}

// ParseWebhook decodes a raw webhook body.
func ParseWebhook(body []byte) (*WebhookPayload, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ObservedStatus maps the webhook event type to the status the gateway is
// asserting for the order.
func (p *WebhookPayload) ObservedStatus() domain.ExternalStatus {
	switch p.Type {
	case EventPaymentSuccess:
		return domain.ExternalPaid
	case EventPaymentFailed, EventPaymentUserDropped:
		return domain.ExternalCancelled
	default:
		return domain.ExternalUnknown
	}
}

// PaymentMethodName flattens the gateway's payment_method field, which is
// either a string or an object keyed by method name.
func (p *WebhookPayload) PaymentMethodName() string {
	switch v := p.Data.Payment.PaymentMethod.(type) {
	case string:
		return v
	case map[string]interface{}:
		for name := range v {
			return name
		}
	}
	return ""
}

// VerifySignature checks the x-webhook-signature header: base64 of
// HMAC-SHA256 over timestamp+rawBody keyed with the merchant secret.
func VerifySignature(secretKey, timestamp string, rawBody []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(timestamp))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
