// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/portal-service/internal/db"
	"github.com/canonical/portal-service/internal/logging"
	"github.com/canonical/portal-service/internal/monitoring"
	"github.com/canonical/portal-service/internal/tracing"
	"github.com/canonical/portal-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const attemptColumns = "id, unit_id, phone, amount_cents, reference, correlation_id, state, polls, attempted_at, last_polled_at, result_code, result_message"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateAttempt(ctx context.Context, a *types.PaymentAttempt) (*types.PaymentAttempt, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAttempt")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate attempt ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("payment_attempts").
		Columns("id", "unit_id", "phone", "amount_cents", "reference", "state").
		Values(id.String(), a.UnitID, a.Phone, int64(a.AmountCents), a.Reference, string(types.AttemptStateCreated)).
		Suffix("RETURNING " + attemptColumns).
		QueryRowContext(ctx)

	created, err := scanAttempt(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment attempt: %w", err)
	}

	return created, nil
}

func (s *Storage) GetAttemptByID(ctx context.Context, id string) (*types.PaymentAttempt, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAttemptByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(attemptColumns).
		From("payment_attempts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	a, err := scanAttempt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment attempt: %w", err)
	}

	return a, nil
}

func (s *Storage) ListAttemptsByUnitID(ctx context.Context, unitID string, page, size int64) ([]*types.PaymentAttempt, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAttemptsByUnitID")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(attemptColumns).
		From("payment_attempts").
		Where(sq.Eq{"unit_id": unitID}).
		OrderBy("attempted_at DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*types.PaymentAttempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment attempt: %w", err)
		}
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment attempt rows: %w", err)
	}

	return attempts, nil
}

// terminalStates are absorbing: every attempt update excludes them in its
// WHERE clause, so a settled row can never move backward no matter which
// writer (poll loop or gateway callback) lands second.
var terminalStates = []string{
	string(types.AttemptStateCompleted),
	string(types.AttemptStateFailed),
	string(types.AttemptStateTimedOut),
}

func (s *Storage) SetAttemptState(ctx context.Context, id string, state types.AttemptState) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetAttemptState")
	defer span.End()

	return s.execAttemptUpdate(ctx, id, s.db.Statement(ctx).
		Update("payment_attempts").
		Set("state", string(state)).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"state": terminalStates}))
}

// RecordCorrelation stores the provider correlation id alongside the state
// transition. The guard on correlation_id enforces at-most-once assignment.
func (s *Storage) RecordCorrelation(ctx context.Context, id, correlationID string, state types.AttemptState) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordCorrelation")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update("payment_attempts").
		Set("correlation_id", correlationID).
		Set("state", string(state)).
		Where(sq.Eq{"id": id}).
		Where("correlation_id IS NULL").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to record correlation id: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrCorrelationAssigned
	}

	return nil
}

func (s *Storage) RecordPoll(ctx context.Context, id string, state types.AttemptState, polls int, polledAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordPoll")
	defer span.End()

	return s.execAttemptUpdate(ctx, id, s.db.Statement(ctx).
		Update("payment_attempts").
		Set("state", string(state)).
		Set("polls", polls).
		Set("last_polled_at", polledAt).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"state": terminalStates}))
}

func (s *Storage) RecordResult(ctx context.Context, id string, state types.AttemptState, result *types.TerminalResult) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordResult")
	defer span.End()

	update := s.db.Statement(ctx).
		Update("payment_attempts").
		Set("state", string(state)).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"state": terminalStates})

	if result != nil {
		update = update.
			Set("result_code", result.Code).
			Set("result_message", result.Message)
	}

	return s.execAttemptUpdate(ctx, id, update)
}

// SettleByCorrelationID applies a terminal result to the open attempt
// holding the given provider correlation id. Terminal states are absorbing:
// the guard skips attempts that already settled, so a late or duplicate
// callback cannot overwrite an earlier outcome.
func (s *Storage) SettleByCorrelationID(ctx context.Context, correlationID string, state types.AttemptState, result *types.TerminalResult) error {
	ctx, span := s.tracer.Start(ctx, "storage.SettleByCorrelationID")
	defer span.End()

	update := s.db.Statement(ctx).
		Update("payment_attempts").
		Set("state", string(state)).
		Where(sq.Eq{"correlation_id": correlationID}).
		Where(sq.NotEq{"state": terminalStates})

	if result != nil {
		update = update.
			Set("result_code", result.Code).
			Set("result_message", result.Message)
	}

	res, err := update.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to settle payment attempt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// execAttemptUpdate runs a guarded attempt update. Zero rows affected means
// either the attempt does not exist or the terminal guard refused the write;
// the reload distinguishes the two so callers can return the settled row.
func (s *Storage) execAttemptUpdate(ctx context.Context, id string, update sq.UpdateBuilder) error {
	result, err := update.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update payment attempt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		if _, err := s.GetAttemptByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadySettled
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*types.PaymentAttempt, error) {
	var (
		a             types.PaymentAttempt
		amountCents   int64
		state         string
		correlationID sql.NullString
		lastPolledAt  sql.NullTime
		resultCode    sql.NullString
		resultMessage sql.NullString
	)

	err := row.Scan(
		&a.ID,
		&a.UnitID,
		&a.Phone,
		&amountCents,
		&a.Reference,
		&correlationID,
		&state,
		&a.Polls,
		&a.AttemptedAt,
		&lastPolledAt,
		&resultCode,
		&resultMessage,
	)
	if err != nil {
		return nil, err
	}

	a.AmountCents = types.Money(amountCents)
	a.State = types.AttemptState(state)
	a.CorrelationID = correlationID.String
	if lastPolledAt.Valid {
		t := lastPolledAt.Time
		a.LastPolledAt = &t
	}
	if resultCode.Valid || resultMessage.Valid {
		a.Result = &types.TerminalResult{
			Code:    resultCode.String,
			Message: resultMessage.String,
		}
	}

	return &a, nil
}
