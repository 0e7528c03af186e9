package session

import (
	"context"

	"callagent-server/internal/clients/openai"
)

// RealtimeDialer adapts the OpenAI realtime client to the UpstreamDialer
// interface.
type RealtimeDialer struct {
	Client *openai.RealtimeClient
}

func (d RealtimeDialer) Dial(ctx context.Context, cfg openai.SessionConfig) (UpstreamSession, error) {
	s, err := d.Client.OpenSession(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}
