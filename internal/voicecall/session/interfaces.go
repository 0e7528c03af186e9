package session

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=session

import (
	"context"

	"callagent-server/internal/clients/openai"
	"callagent-server/internal/store"
)

// UpstreamSession is an open realtime voice connection to the AI provider.
type UpstreamSession interface {
	SendAudio(audio []byte) error
	CommitAudio() error
	SendText(text string) error
	Events() <-chan openai.Event
	Close()
}

// UpstreamDialer opens upstream voice sessions.
type UpstreamDialer interface {
	Dial(ctx context.Context, cfg openai.SessionConfig) (UpstreamSession, error)
}

// Downstream is the telephony side of the relay, addressed by stream SID.
type Downstream interface {
	SendMedia(streamSID, payload string) error
	Close() error
}

// CallStore persists call record updates.
type CallStore interface {
	UpdateCall(ctx context.Context, callSID string, updates store.CallUpdate) (*store.Call, error)
}

// LeadStore persists captured leads.
type LeadStore interface {
	CreateLead(ctx context.Context, lead store.Lead) (*store.Lead, error)
}

// Notifier sends the post-call emails for a captured lead.
type Notifier interface {
	SendLeadNotification(ctx context.Context, lead store.Lead) error
	SendFollowupEmail(ctx context.Context, to string, lead store.Lead) error
}

// LeadExtractor derives lead fields from a full call transcript.
type LeadExtractor interface {
	ExtractLead(ctx context.Context, transcript string) (map[string]string, error)
}

// Completer runs the post-call pipeline for a finished call.
type Completer interface {
	Process(ctx context.Context, result CallResult)
}
