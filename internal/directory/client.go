// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	baseURL string
	token   string
	client  *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL, token string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetUnitByQRToken(ctx context.Context, token string) (*Binding, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetUnitByQRToken")
	defer span.End()

	binding := new(Binding)
	err := c.do(ctx, http.MethodGet, "/units/by-qr/"+url.PathEscape(token), nil, binding)
	if err != nil {
		return nil, err
	}
	return binding, nil
}

func (c *Client) GetUnitByAccessCode(ctx context.Context, code string) (*Binding, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetUnitByAccessCode")
	defer span.End()

	binding := new(Binding)
	err := c.do(ctx, http.MethodGet, "/units/by-access-code/"+url.PathEscape(code), nil, binding)
	if err != nil {
		return nil, err
	}
	return binding, nil
}

func (c *Client) GetTenant(ctx context.Context, unitID string) (*types.Tenant, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetTenant")
	defer span.End()

	tenant := new(types.Tenant)
	if err := c.do(ctx, http.MethodGet, "/units/"+url.PathEscape(unitID)+"/tenant", nil, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (c *Client) GetPendingDue(ctx context.Context, unitID string) (*types.PaymentDue, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetPendingDue")
	defer span.End()

	due := new(types.PaymentDue)
	err := c.do(ctx, http.MethodGet, "/billing/units/"+url.PathEscape(unitID)+"/due", nil, due)
	if err != nil {
		return nil, err
	}
	return due, nil
}

func (c *Client) ListPaymentHistory(ctx context.Context, unitID string, limit int64) ([]*types.PaymentRecord, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ListPaymentHistory")
	defer span.End()

	var records []*types.PaymentRecord
	path := fmt.Sprintf("/billing/units/%s/payments?limit=%d", url.PathEscape(unitID), limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ListTickets(ctx context.Context, unitID string) ([]*types.Ticket, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ListTickets")
	defer span.End()

	var tickets []*types.Ticket
	if err := c.do(ctx, http.MethodGet, "/units/"+url.PathEscape(unitID)+"/tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListNotices returns the active notices for a property plus globally scoped
// ones; the scoping is applied directory-side.
func (c *Client) ListNotices(ctx context.Context, propertyID string) ([]*types.Notice, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ListNotices")
	defer span.End()

	var notices []*types.Notice
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(propertyID)+"/notices", nil, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

func (c *Client) CreateTicket(ctx context.Context, unitID string, payload *TicketPayload) (*types.Ticket, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.CreateTicket")
	defer span.End()

	ticket := new(types.Ticket)
	if err := c.do(ctx, http.MethodPost, "/units/"+url.PathEscape(unitID)+"/tickets", payload, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (c *Client) UpdateTenantContact(ctx context.Context, unitID string, payload *ContactPayload) error {
	ctx, span := c.tracer.Start(ctx, "directory.Client.UpdateTenantContact")
	defer span.End()

	return c.do(ctx, http.MethodPut, "/units/"+url.PathEscape(unitID)+"/tenant/contact", payload, nil)
}

func (c *Client) ResendNoticeSMS(ctx context.Context, noticeID string) error {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ResendNoticeSMS")
	defer span.End()

	return c.do(ctx, http.MethodPost, "/notices/"+url.PathEscape(noticeID)+"/resend-sms", nil, nil)
}

func (c *Client) GetRoleCapabilities(ctx context.Context, roleID string) (*types.RoleCapabilities, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetRoleCapabilities")
	defer span.End()

	caps := new(types.RoleCapabilities)
	if err := c.do(ctx, http.MethodGet, "/roles/"+url.PathEscape(roleID), nil, caps); err != nil {
		return nil, err
	}
	return caps, nil
}

func (c *Client) AssignRole(ctx context.Context, organizationID, userID, roleID string) (*types.Membership, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.AssignRole")
	defer span.End()

	body := map[string]string{
		"organization_id": organizationID,
		"user_id":         userID,
		"role_id":         roleID,
	}

	membership := new(types.Membership)
	if err := c.do(ctx, http.MethodPost, "/memberships", body, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (c *Client) UpdateMembership(ctx context.Context, organizationID, membershipID, roleID string) (*types.Membership, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.UpdateMembership")
	defer span.End()

	body := map[string]string{
		"organization_id": organizationID,
		"role_id":         roleID,
	}

	membership := new(types.Membership)
	if err := c.do(ctx, http.MethodPatch, "/memberships/"+url.PathEscape(membershipID), body, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.setAvailability(0)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusGone:
		return ErrGone
	case resp.StatusCode >= 500:
		c.setAvailability(0)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("directory: unexpected status %d", resp.StatusCode)
	}

	c.setAvailability(1)

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode directory response: %w", err)
	}

	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"dependency": "directory"}, v); err != nil {
		c.logger.Errorf("failed to set dependency availability metric: %v", err)
	}
}
