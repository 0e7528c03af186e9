package session

import (
	"context"
	"time"

	"callagent-server/internal/observability"
	"callagent-server/internal/store"
)

// CallResult is everything the post-call pipeline needs from a finished
// session.
type CallResult struct {
	CallSID    string
	StartedAt  time.Time
	Transcript string
	Fields     map[string]string
}

// CompletionProcessor runs the post-call pipeline: persist the call record,
// create a lead when one was captured, then send the emails. Each step is
// best effort; a failed step is logged and the rest still run where that
// makes sense.
type CompletionProcessor struct {
	calls     CallStore
	leads     LeadStore
	notifier  Notifier
	extractor LeadExtractor
	logger    *observability.Logger
}

// NewCompletionProcessor builds the pipeline. extractor may be nil; live
// extraction rules alone then decide whether a lead was captured.
func NewCompletionProcessor(calls CallStore, leads LeadStore, notifier Notifier, extractor LeadExtractor, logger *observability.Logger) *CompletionProcessor {
	return &CompletionProcessor{
		calls:     calls,
		leads:     leads,
		notifier:  notifier,
		extractor: extractor,
		logger:    logger,
	}
}

func (p *CompletionProcessor) Process(ctx context.Context, result CallResult) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: result.CallSID})

	fields := p.enrichFields(ctx, result)

	p.updateCall(ctx, result)

	if fields[FieldName] == "" && fields[FieldEmail] == "" {
		p.logger.Info(ctx, "No lead captured on call")
		return
	}

	lead, err := p.leads.CreateLead(ctx, store.Lead{
		Name:         fields[FieldName],
		Email:        fields[FieldEmail],
		Phone:        fields[FieldPhone],
		BusinessType: fields[FieldBusinessType],
		CallSID:      result.CallSID,
		Notes:        result.Transcript,
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to create lead", err)
		return
	}

	if err := p.notifier.SendLeadNotification(ctx, *lead); err != nil {
		p.logger.Error(ctx, "Failed to send lead notification", err)
	}
	if lead.Email != "" {
		if err := p.notifier.SendFollowupEmail(ctx, lead.Email, *lead); err != nil {
			p.logger.Error(ctx, "Failed to send follow-up email", err)
		}
	}
}

// enrichFields runs the transcript extractor and fills only the fields live
// extraction left unset.
func (p *CompletionProcessor) enrichFields(ctx context.Context, result CallResult) map[string]string {
	fields := make(map[string]string, len(result.Fields))
	for k, v := range result.Fields {
		fields[k] = v
	}

	if p.extractor == nil || result.Transcript == "" {
		return fields
	}

	extracted, err := p.extractor.ExtractLead(ctx, result.Transcript)
	if err != nil {
		p.logger.Error(ctx, "Lead extraction failed, using live fields only", err)
		return fields
	}
	for k, v := range extracted {
		if fields[k] == "" && v != "" {
			fields[k] = v
		}
	}
	return fields
}

func (p *CompletionProcessor) updateCall(ctx context.Context, result CallResult) {
	status := store.CallStatusCompleted
	duration := int(time.Since(result.StartedAt).Seconds())
	endedAt := time.Now()

	_, err := p.calls.UpdateCall(ctx, result.CallSID, store.CallUpdate{
		Status:     &status,
		Duration:   &duration,
		Transcript: &result.Transcript,
		EndedAt:    &endedAt,
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to update call record", err)
	}
}
