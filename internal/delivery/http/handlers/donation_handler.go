package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/fundflow/collection-service/internal/delivery/http/dto/donation/request"
	"github.com/fundflow/collection-service/internal/delivery/http/dto/donation/response"
	"github.com/fundflow/collection-service/internal/domain"
	"github.com/fundflow/collection-service/internal/infrastructure/cashfree"
	donationusecase "github.com/fundflow/collection-service/internal/usecase/donation"
	donationdto "github.com/fundflow/collection-service/internal/usecase/dto/donation"
	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	DonationUsecase donationusecase.DonationUsecase
	WebhookSecret   string
}

func NewDonationHandler(donationUsecase donationusecase.DonationUsecase, webhookSecret string) *DonationHandler {
	return &DonationHandler{
		DonationUsecase: donationUsecase,
		WebhookSecret:   webhookSecret,
	}
}

func (h *DonationHandler) CreatePaymentOrder(c *gin.Context) {
	var req request.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	order, err := h.DonationUsecase.CreatePaymentOrder(c.Request.Context(), &donationdto.CreatePaymentOrderInput{
		CollectionID: req.CollectionID,
		DonorName:    req.DonorName,
		DonorEmail:   req.DonorEmail,
		DonorPhone:   req.DonorPhone,
		Amount:       req.Amount,
		Message:      req.Message,
		Anonymous:    req.Anonymous,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCollectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
		case errors.Is(err, domain.ErrCollectionClosed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "collection is no longer accepting donations"})
		case errors.Is(err, domain.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable, try again"})
		case errors.Is(err, domain.ErrGatewayRejected):
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create payment order"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment order"})
		}
		return
	}

	c.JSON(http.StatusOK, response.PaymentOrderResponse{
		OrderID:          order.OrderID,
		CfOrderID:        order.GatewayOrderID,
		PaymentSessionID: order.PaymentSessionID,
		OrderStatus:      order.OrderStatus,
	})
}

func (h *DonationHandler) VerifyPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	out, err := h.DonationUsecase.VerifyPayment(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify payment"})
		return
	}

	resp := response.VerifyPaymentResponse{
		OrderID:       out.OrderID,
		Status:        string(out.Status),
		CfOrderStatus: string(out.GatewayStatus),
		Amount:        out.Amount,
		CollectionID:  out.CollectionID,
	}
	if !out.Verified {
		resp.Message = "unable to verify with payment gateway"
	}

	c.JSON(http.StatusOK, resp)
}

// HandlePaymentWebhook accepts gateway callbacks. Unrecognized orders and
// malformed payloads are acknowledged with 200 so the gateway stops
// redelivering them; only a genuine processing failure returns 5xx.
func (h *DonationHandler) HandlePaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	if h.WebhookSecret != "" {
		signature := c.GetHeader("x-webhook-signature")
		timestamp := c.GetHeader("x-webhook-timestamp")
		if !cashfree.VerifySignature(h.WebhookSecret, timestamp, body, signature) {
			slog.Warn("webhook signature mismatch", "remote", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	payload, err := cashfree.ParseWebhook(body)
	if err != nil {
		slog.Warn("malformed webhook payload", "error", err.Error())
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "malformed payload"})
		return
	}

	orderID := payload.Data.Order.OrderID
	if orderID == "" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "no order_id in payload"})
		return
	}

	err = h.DonationUsecase.ProcessWebhookEvent(c.Request.Context(), &donationdto.WebhookInput{
		OrderID:        orderID,
		EventType:      payload.Type,
		ObservedStatus: string(payload.ObservedStatus()),
		PaymentID:      payload.Data.Payment.CFPaymentID.String(),
		PaymentMethod:  payload.PaymentMethodName(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			slog.Warn("webhook for unknown order", "order_id", orderID)
			c.JSON(http.StatusOK, gin.H{"status": "ignored", "reason": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
