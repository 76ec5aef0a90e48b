// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	qrToken    string
	accessCode string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a portal credential into the tenant portal view",
	Long:  `Resolve a QR token or access code and print the portal payload returned by the service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newPortalClient(httpEndpoint)

		var path string
		switch {
		case qrToken != "":
			path = "/api/v0/portal/qr/" + qrToken
		case accessCode != "":
			path = "/api/v0/portal/access/" + accessCode
		default:
			return fmt.Errorf("one of --qr-token or --access-code is required")
		}

		body, err := client.get(cmd.Context(), path)
		if err != nil {
			return err
		}

		fmt.Println(string(body))
		return nil
	},
}

var (
	payPhone     string
	payAmount    int64
	payReference string
	pollInterval time.Duration
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Submit a rent payment and poll it to an outcome",
	Long: `Submit a payment attempt for the unit bound to the given credential, then
poll the attempt until the service reports a terminal state or the polling
budget runs out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if qrToken == "" && accessCode == "" {
			return fmt.Errorf("one of --qr-token or --access-code is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := newPortalClient(httpEndpoint)

		submission := map[string]any{
			"qr_token":     qrToken,
			"access_code":  accessCode,
			"phone":        payPhone,
			"amount_cents": payAmount,
			"reference":    payReference,
		}

		status, body, err := client.post(ctx, "/api/v0/portal/payments", submission)
		if err != nil {
			return err
		}

		var created attemptEnvelope
		if err := json.Unmarshal(body, &created); err != nil {
			return fmt.Errorf("failed to decode submit response: %w", err)
		}
		if created.Attempt == nil {
			return fmt.Errorf("submit response had no attempt")
		}

		if status == http.StatusAccepted {
			fmt.Printf("attempt %s parked with an unconfirmed initiation: %s\n", created.Attempt.ID, created.Message)
			return nil
		}

		fmt.Printf("attempt %s submitted, waiting for the customer to confirm\n", created.Attempt.ID)
		attemptID := created.Attempt.ID

		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}

			status, body, err := client.post(ctx, "/api/v0/portal/payments/"+attemptID+"/poll", nil)
			if err != nil {
				return err
			}
			if status == http.StatusAccepted {
				fmt.Println("initiation outcome is unknown, manual reconciliation required")
				return nil
			}

			var polled attemptEnvelope
			if err := json.Unmarshal(body, &polled); err != nil {
				return fmt.Errorf("failed to decode poll response: %w", err)
			}
			if polled.Attempt == nil {
				return fmt.Errorf("poll response had no attempt")
			}

			resultMessage := ""
			if polled.Attempt.Result != nil {
				resultMessage = polled.Attempt.Result.Message
			}

			switch polled.Attempt.State {
			case "completed":
				fmt.Println("payment completed")
				return nil
			case "failed":
				fmt.Printf("payment failed: %s\n", resultMessage)
				return nil
			case "timed_out":
				fmt.Printf("payment timed out: %s\n", resultMessage)
				return nil
			default:
				fmt.Printf("attempt state: %s\n", polled.Attempt.State)
			}
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{resolveCmd, payCmd} {
		cmd.Flags().StringVar(&qrToken, "qr-token", "", "QR credential token")
		cmd.Flags().StringVar(&accessCode, "access-code", "", "Access code credential")
	}

	payCmd.Flags().StringVar(&payPhone, "phone", "", "Customer phone number")
	payCmd.Flags().Int64Var(&payAmount, "amount-cents", 0, "Amount in cents")
	payCmd.Flags().StringVar(&payReference, "reference", "", "Payment reference")
	payCmd.Flags().DurationVar(&pollInterval, "poll-interval", 5*time.Second, "Delay between status polls")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(payCmd)
}

// attemptEnvelope mirrors the payment endpoints' response body.
type attemptEnvelope struct {
	Attempt *struct {
		ID     string `json:"id"`
		State  string `json:"state"`
		Result *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"result"`
	} `json:"attempt"`
	Message string `json:"message"`
}

type portalClient struct {
	endpoint string
	client   *http.Client
}

func newPortalClient(endpoint string) *portalClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	return &portalClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *portalClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return nil, err
	}

	_, body, err := c.do(req)
	return body, err
}

func (c *portalClient) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return 0, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, &buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *portalClient) do(req *http.Request) (int, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return resp.StatusCode, nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	return resp.StatusCode, body, nil
}
