package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fundflow/collection-service/internal/config"
	"github.com/fundflow/collection-service/internal/domain"
)

const (
	sandboxBaseURL    = "https://sandbox.cashfree.com/pg"
	productionBaseURL = "https://api.cashfree.com/pg"
)

type Client struct {
	BaseURL    string
	ClientID   string
	SecretKey  string
	APIVersion string
	httpClient *http.Client
}

func NewClient(cfg config.Cashfree) *Client {
	baseURL := sandboxBaseURL
	if cfg.Environment == "PRODUCTION" {
		baseURL = productionBaseURL
	}

	return &Client{
		BaseURL:    baseURL,
		ClientID:   cfg.ClientID,
		SecretKey:  cfg.SecretKey,
		APIVersion: cfg.APIVersion,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type orderResponse struct {
	CFOrderID        string  `json:"cf_order_id"`
	OrderID          string  `json:"order_id"`
	OrderAmount      float64 `json:"order_amount"`
	OrderStatus      string  `json:"order_status"`
	PaymentSessionID string  `json:"payment_session_id"`
}

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

func (c *Client) CreateOrder(ctx context.Context, input domain.CreateGatewayOrderInput) (*domain.GatewayOrder, error) {
	requestBodyBytes, err := json.Marshal(createOrderRequest{
		OrderID:       input.OrderID,
		OrderAmount:   input.Amount,
		OrderCurrency: input.Currency,
		CustomerDetails: customerDetails{
			CustomerID:    "donor_" + input.OrderID,
			CustomerName:  input.Customer.Name,
			CustomerEmail: input.Customer.Email,
			CustomerPhone: input.Customer.Phone,
		},
		OrderMeta: orderMeta{
			ReturnURL: input.ReturnURL,
			NotifyURL: input.NotifyURL,
		},
	})
	if err != nil {
		return nil, err
	}

	var order orderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", bytes.NewReader(requestBodyBytes), &order); err != nil {
		return nil, err
	}

	return &domain.GatewayOrder{
		GatewayOrderID:   order.CFOrderID,
		PaymentSessionID: order.PaymentSessionID,
		OrderStatus:      order.OrderStatus,
	}, nil
}

func (c *Client) QueryOrderStatus(ctx context.Context, orderID string) (domain.ExternalStatus, error) {
	var order orderResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, &order); err != nil {
		return domain.ExternalUnknown, err
	}

	return MapOrderStatus(order.OrderStatus), nil
}

// MapOrderStatus converts a raw gateway order status to the closed
// ExternalStatus set. Anything unrecognized maps to UNKNOWN and causes no
// state change downstream.
func MapOrderStatus(orderStatus string) domain.ExternalStatus {
	switch orderStatus {
	case "PAID":
		return domain.ExternalPaid
	case "EXPIRED":
		return domain.ExternalExpired
	case "CANCELLED", "TERMINATED":
		return domain.ExternalCancelled
	case "ACTIVE":
		return domain.ExternalActive
	default:
		return domain.ExternalUnknown
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.ClientID)
	req.Header.Set("x-client-secret", c.SecretKey)
	req.Header.Set("x-api-version", c.APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure: no definitive answer from the gateway.
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	responseBodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", domain.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: gateway returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrOrderNotFound
	}

	if resp.StatusCode != http.StatusOK {
		var gatewayError errorResponse
		if err := json.Unmarshal(responseBodyBytes, &gatewayError); err == nil && gatewayError.Message != "" {
			return fmt.Errorf("%w: %s (%s)", domain.ErrGatewayRejected, gatewayError.Message, gatewayError.Code)
		}
		return fmt.Errorf("%w: gateway returned %d", domain.ErrGatewayRejected, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(responseBodyBytes, out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}

	return nil
}
