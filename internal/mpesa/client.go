// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
)

const (
	tokenPath    = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath  = "/mpesa/stkpush/v1/processrequest"
	stkQueryPath = "/mpesa/stkpushquery/v1/query"

	transactionType = "CustomerPayBillOnline"
	timestampLayout = "20060102150405"

	// Provider code returned by the query endpoint while the customer has
	// not yet acted on the prompt.
	pendingErrorCode = "500.001.1001"
)

type ClientInterface interface {
	Initiate(ctx context.Context, phone string, amountShillings int64, reference string) (string, error)
	QueryStatus(ctx context.Context, correlationID string) (*StatusResult, error)
}

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	config Config
	client *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		config: config,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Initiate asks the provider to push a payment prompt to the customer's
// phone and returns the correlation id used to poll the outcome. Each call
// may trigger a real customer prompt, so callers must invoke it at most once
// per logical attempt.
func (c *Client) Initiate(ctx context.Context, phone string, amountShillings int64, reference string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "mpesa.Client.Initiate")
	defer span.End()

	token, err := c.token(ctx)
	if err != nil {
		return "", err
	}

	timestamp := time.Now().Format(timestampLayout)
	body := stkPushRequest{
		BusinessShortCode: c.config.ShortCode,
		Password:          c.password(timestamp),
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            amountShillings,
		PartyA:            phone,
		PartyB:            c.config.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       c.config.CallbackURL,
		AccountReference:  reference,
		TransactionDesc:   reference,
	}

	var resp stkPushResponse
	if err := c.post(ctx, stkPushPath, token, body, &resp); err != nil {
		return "", err
	}

	if resp.ResponseCode != "0" {
		return "", businessError(resp.ResponseCode, resp.ResponseDescription)
	}
	if resp.CheckoutRequestID == "" {
		return "", networkError(nil, "provider accepted the request but returned no correlation id")
	}

	return resp.CheckoutRequestID, nil
}

// QueryStatus polls a previously initiated payment. A still-processing
// transaction is reported as a pending StatusResult, not an error; it is
// safe to call repeatedly.
func (c *Client) QueryStatus(ctx context.Context, correlationID string) (*StatusResult, error) {
	ctx, span := c.tracer.Start(ctx, "mpesa.Client.QueryStatus")
	defer span.End()

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format(timestampLayout)
	body := stkQueryRequest{
		BusinessShortCode: c.config.ShortCode,
		Password:          c.password(timestamp),
		Timestamp:         timestamp,
		CheckoutRequestID: correlationID,
	}

	var resp stkQueryResponse
	if err := c.post(ctx, stkQueryPath, token, body, &resp); err != nil {
		var gwErr *Error
		if errors.As(err, &gwErr) && gwErr.Code == pendingErrorCode {
			return &StatusResult{Pending: true}, nil
		}
		return nil, err
	}

	return &StatusResult{
		ResultCode: resp.ResultCode,
		ResultDesc: resp.ResultDesc,
	}, nil
}

func (c *Client) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString(
		[]byte(c.config.ShortCode + c.config.Passkey + timestamp),
	)
}

// token returns a cached OAuth access token, fetching a fresh one when the
// cache is empty or about to expire.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-30*time.Second)) {
		return c.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+tokenPath, nil)
	if err != nil {
		return "", networkError(err, "failed to build token request")
	}
	req.SetBasicAuth(c.config.ConsumerKey, c.config.ConsumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		c.setAvailability(0)
		return "", networkError(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.setAvailability(0)
		return "", networkError(nil, fmt.Sprintf("token request returned status %d", resp.StatusCode))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", networkError(err, "malformed token response")
	}

	expiresIn, err := strconv.Atoi(tr.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		expiresIn = 3599
	}

	c.accessToken = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	c.setAvailability(1)

	return c.accessToken, nil
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return networkError(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return networkError(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		c.setAvailability(0)
		return networkError(err, "gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.ErrorCode != "" {
			// The pending marker arrives as an error payload; keep the code
			// so QueryStatus can recognise it.
			if resp.StatusCode >= 500 && apiErr.ErrorCode != pendingErrorCode {
				c.setAvailability(0)
				return &Error{Kind: ErrorKindNetwork, Code: apiErr.ErrorCode, Message: apiErr.ErrorMessage}
			}
			return &Error{Kind: ErrorKindBusiness, Code: apiErr.ErrorCode, Message: apiErr.ErrorMessage}
		}

		if resp.StatusCode >= 500 {
			c.setAvailability(0)
			return networkError(nil, fmt.Sprintf("gateway returned status %d", resp.StatusCode))
		}
		return businessError("", fmt.Sprintf("gateway rejected the request with status %d", resp.StatusCode))
	}

	c.setAvailability(1)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return networkError(err, "malformed gateway response")
	}

	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"dependency": "mpesa"}, v); err != nil {
		c.logger.Errorf("failed to set dependency availability metric: %v", err)
	}
}
