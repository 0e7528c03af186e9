package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Call struct {
	ID         uuid.UUID    `db:"id" json:"id"`
	CallSID    string       `db:"call_sid" json:"call_sid"`
	Direction  string       `db:"direction" json:"direction"`
	FromNumber string       `db:"from_number" json:"from_number"`
	ToNumber   string       `db:"to_number" json:"to_number"`
	Status     string       `db:"status" json:"status"`
	StartedAt  time.Time    `db:"started_at" json:"started_at"`
	EndedAt    sql.NullTime `db:"ended_at" json:"ended_at"`
	Duration   int          `db:"duration" json:"duration"`
	Transcript string       `db:"transcript" json:"transcript"`
}

const CallDirectionInbound = "inbound"
const CallDirectionOutbound = "outbound"

const CallStatusInitiated = "initiated"
const CallStatusCompleted = "completed"

// CallUpdate holds the partial fields of a call record update. Nil fields are
// left untouched.
type CallUpdate struct {
	Status     *string
	Duration   *int
	Transcript *string
	EndedAt    *time.Time
}

const sqlLogCall = `
INSERT INTO calls (call_sid, direction, from_number, to_number, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, call_sid, direction, from_number, to_number, status, started_at, ended_at, duration, transcript`

func (s *Store) LogCall(ctx context.Context, call Call) (*Call, error) {
	var logged Call
	err := s.db.GetContext(ctx, &logged, sqlLogCall,
		call.CallSID, call.Direction, call.FromNumber, call.ToNumber, call.Status)
	if err != nil {
		s.logger.Error(ctx, "failed to log call", err)
		return nil, fmt.Errorf("failed to log call: %w", err)
	}
	return &logged, nil
}

const sqlUpdateCall = `
UPDATE calls
SET status     = COALESCE($2, status),
    duration   = COALESCE($3, duration),
    transcript = COALESCE($4, transcript),
    ended_at   = COALESCE($5, ended_at)
WHERE call_sid = $1
RETURNING id, call_sid, direction, from_number, to_number, status, started_at, ended_at, duration, transcript`

func (s *Store) UpdateCall(ctx context.Context, callSID string, updates CallUpdate) (*Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlUpdateCall,
		callSID, updates.Status, updates.Duration, updates.Transcript, updates.EndedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update call", err)
		return nil, fmt.Errorf("failed to update call: %w", err)
	}
	return &call, nil
}

const sqlGetCallBySID = `
SELECT * FROM calls WHERE call_sid = $1`

func (s *Store) GetCallBySID(ctx context.Context, callSID string) (*Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlGetCallBySID, callSID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call by SID", err)
		return nil, fmt.Errorf("failed to get call by SID: %w", err)
	}
	return &call, nil
}

const sqlGetCalls = `
SELECT * FROM calls ORDER BY started_at DESC LIMIT $1 OFFSET $2`

func (s *Store) GetCalls(ctx context.Context, limit, offset int) ([]Call, error) {
	var calls []Call
	err := s.db.SelectContext(ctx, &calls, sqlGetCalls, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get calls", err)
		return nil, fmt.Errorf("failed to get calls: %w", err)
	}
	return calls, nil
}
