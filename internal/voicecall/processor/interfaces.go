package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	twilioclient "callagent-server/internal/clients/twilio"
	"callagent-server/internal/store"
)

// CallStore persists calls and leads.
type CallStore interface {
	LogCall(ctx context.Context, call store.Call) (*store.Call, error)
	UpdateCall(ctx context.Context, callSID string, updates store.CallUpdate) (*store.Call, error)
	GetCalls(ctx context.Context, limit, offset int) ([]store.Call, error)
	GetLeads(ctx context.Context, limit, offset int) ([]store.Lead, error)
}

// CallDialer places calls and builds TwiML through the telephony provider.
type CallDialer interface {
	MakeOutboundCall(ctx context.Context, toNumber, webhookURL, statusCallbackURL string) (twilioclient.OutboundCall, error)
	StreamTwiML(greeting, streamURL string) (string, error)
}
