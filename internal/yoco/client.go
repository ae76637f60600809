package yoco

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusSucceeded is the payload status Yoco reports on a completed payment.
const StatusSucceeded = "succeeded"

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// CheckoutRequest is the body of POST /checkouts.
type CheckoutRequest struct {
	Amount     int64             `json:"amount"`
	Currency   string            `json:"currency"`
	SuccessURL string            `json:"successUrl,omitempty"`
	CancelURL  string            `json:"cancelUrl,omitempty"`
	FailureURL string            `json:"failureUrl,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	LineItems  []LineItem        `json:"lineItems,omitempty"`
	ExternalID string            `json:"externalId,omitempty"`

	// IdempotencyKey is sent as a header so a replayed request yields the same checkout.
	IdempotencyKey string `json:"-"`
}

type LineItem struct {
	DisplayName    string         `json:"displayName"`
	Description    string         `json:"description,omitempty"`
	Quantity       int            `json:"quantity"`
	PricingDetails PricingDetails `json:"pricingDetails"`
}

type PricingDetails struct {
	Price int64 `json:"price"`
}

// Checkout is the hosted session returned by Yoco.
type Checkout struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	RedirectURL string `json:"redirectUrl"`
	PaymentID   string `json:"paymentId,omitempty"`
}

// APIError is a non-2xx response from Yoco. Message carries the provider's
// own wording when the body had one.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("yoco: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("yoco: status %d, body: %s", e.StatusCode, e.Body)
}

type errorBody struct {
	Message        string `json:"message"`
	ErrorMessage   string `json:"errorMessage"`
	DisplayMessage string `json:"displayMessage"`
	Description    string `json:"description"`
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateCheckout creates a hosted checkout session.
func (c *Client) CreateCheckout(ctx context.Context, checkoutReq CheckoutRequest) (*Checkout, error) {
	jsonData, err := json.Marshal(checkoutReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkouts", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	if checkoutReq.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", checkoutReq.IdempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var result Checkout
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if result.ID == "" || result.RedirectURL == "" {
		return nil, fmt.Errorf("checkout response missing id or redirectUrl, body: %s", string(body))
	}

	return &result, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, msg := range []string{eb.DisplayMessage, eb.ErrorMessage, eb.Message, eb.Description} {
			if msg != "" {
				apiErr.Message = msg
				break
			}
		}
	}
	return apiErr
}
