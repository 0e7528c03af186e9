package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	BusinessType string    `db:"business_type" json:"business_type"`
	CallSID      string    `db:"call_sid" json:"call_sid"`
	Status       string    `db:"status" json:"status"`
	Notes        string    `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

const LeadStatusNew = "new"

const sqlCreateLead = `
INSERT INTO leads (name, email, phone, business_type, call_sid, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, email, phone, business_type, call_sid, status, notes, created_at`

func (s *Store) CreateLead(ctx context.Context, lead Lead) (*Lead, error) {
	status := lead.Status
	if status == "" {
		status = LeadStatusNew
	}

	var created Lead
	err := s.db.GetContext(ctx, &created, sqlCreateLead,
		lead.Name, lead.Email, lead.Phone, lead.BusinessType, lead.CallSID, status, lead.Notes)
	if err != nil {
		s.logger.Error(ctx, "failed to create lead", err)
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return &created, nil
}

const sqlGetLeads = `
SELECT * FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`

func (s *Store) GetLeads(ctx context.Context, limit, offset int) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlGetLeads, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get leads", err)
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	return leads, nil
}
