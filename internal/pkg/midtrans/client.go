package midtrans

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AndikaSaputra/RumahLink/internal/pkg/env"
)

const (
	sandboxSnapURL    = "https://app.sandbox.midtrans.com/snap/v1"
	productionSnapURL = "https://app.midtrans.com/snap/v1"
)

// Client talks to the Midtrans Snap API.
type Client struct {
	serverKey  string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a Snap client for the given server key.
func NewClient(serverKey string, production bool) *Client {
	apiURL := sandboxSnapURL
	if production {
		apiURL = productionSnapURL
	}
	return &Client{
		serverKey:  serverKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientFromEnv builds a client from MIDTRANS_* environment settings.
func NewClientFromEnv() *Client {
	return NewClient(
		env.GetEnv("MIDTRANS_SERVER_KEY", ""),
		env.GetEnv("APP_ENV", "prod") == "prod" && env.GetEnv("MIDTRANS_PRODUCTION", "false") == "true",
	)
}

// ServerKey exposes the configured key for signature verification.
func (c *Client) ServerKey() string {
	return c.serverKey
}

// SnapTokenRequest describes one Snap transaction to create.
type SnapTokenRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name,omitempty"`
		Email     string `json:"email,omitempty"`
	} `json:"customer_details"`
	ItemDetails []SnapItemDetail `json:"item_details,omitempty"`
}

// SnapItemDetail is one line item shown on the payment page.
type SnapItemDetail struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type snapTokenResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// NewSnapTokenRequest assembles a single-item subscription purchase.
func NewSnapTokenRequest(orderID string, amount int64, customerName, customerEmail, description string) SnapTokenRequest {
	var req SnapTokenRequest
	req.TransactionDetails.OrderID = orderID
	req.TransactionDetails.GrossAmount = amount
	req.CustomerDetails.FirstName = customerName
	req.CustomerDetails.Email = customerEmail
	req.ItemDetails = []SnapItemDetail{{
		ID:       "premium-subscription",
		Price:    amount,
		Quantity: 1,
		Name:     description,
	}}
	return req
}

// SnapToken creates a Snap transaction and returns the payment page token.
// Without a configured server key it returns a locally generated demo token
// so the order flow keeps working in development.
func (c *Client) SnapToken(ctx context.Context, reqParams SnapTokenRequest) (string, error) {
	if c.serverKey == "" {
		raw, err := json.Marshal(reqParams)
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(raw), nil
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqParams); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/transactions", &buf)
	if err != nil {
		return "", err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(c.serverKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.New("unexpected status: " + resp.Status)
	}

	var tokenResp snapTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("snap response missing token")
	}
	return tokenResp.Token, nil
}
