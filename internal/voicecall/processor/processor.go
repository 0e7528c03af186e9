package processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	twilioclient "callagent-server/internal/clients/twilio"
	"callagent-server/internal/observability"
	"callagent-server/internal/store"
	"callagent-server/internal/voicecall/session"
	"callagent-server/internal/voicecall/twilio"

	"github.com/gorilla/websocket"
)

var ErrMissingToNumber = errors.New("to_number is required")

// VoiceCallProcessor owns the call flows: answering inbound calls, placing
// outbound ones, running media streams and serving call history.
type VoiceCallProcessor struct {
	store       CallStore
	dialer      CallDialer
	registry    *session.Registry
	sessionDeps session.Deps
	backendURL  string
	agentName   string
	logger      *observability.Logger
}

func New(callStore CallStore, dialer CallDialer, registry *session.Registry, sessionDeps session.Deps,
	backendURL, agentName string, logger *observability.Logger) *VoiceCallProcessor {
	return &VoiceCallProcessor{
		store:       callStore,
		dialer:      dialer,
		registry:    registry,
		sessionDeps: sessionDeps,
		backendURL:  strings.TrimSuffix(backendURL, "/"),
		agentName:   agentName,
		logger:      logger,
	}
}

func (p *VoiceCallProcessor) greeting() string {
	return fmt.Sprintf("Hello! You are connected to %s, our A I assistant. You can start talking now.", p.agentName)
}

// mediaStreamURL is the websocket address Twilio connects the call audio to.
func (p *VoiceCallProcessor) mediaStreamURL() string {
	wsURL := p.backendURL
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)
	wsURL = strings.Replace(wsURL, "http://", "ws://", 1)
	return wsURL + "/api/media-stream"
}

// InboundCall logs the incoming call and returns the TwiML that connects it
// to the media stream. A failed call log is not fatal; the caller still gets
// answered.
func (p *VoiceCallProcessor) InboundCall(ctx context.Context, callSID, from, to string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callSID})

	_, err := p.store.LogCall(ctx, store.Call{
		CallSID:    callSID,
		Direction:  store.CallDirectionInbound,
		FromNumber: from,
		ToNumber:   to,
		Status:     store.CallStatusInitiated,
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to log inbound call", err)
	}

	p.logger.Info(ctx, "Answering inbound call")
	return p.dialer.StreamTwiML(p.greeting(), p.mediaStreamURL())
}

// OutboundCall places a call to toNumber and logs it.
func (p *VoiceCallProcessor) OutboundCall(ctx context.Context, toNumber string) (twilioclient.OutboundCall, error) {
	if toNumber == "" {
		return twilioclient.OutboundCall{}, ErrMissingToNumber
	}

	webhookURL := p.backendURL + "/api/outbound-call-webhook"
	statusCallbackURL := p.backendURL + "/api/call-status"

	call, err := p.dialer.MakeOutboundCall(ctx, toNumber, webhookURL, statusCallbackURL)
	if err != nil {
		return twilioclient.OutboundCall{}, fmt.Errorf("failed to place outbound call: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: call.CallSID})
	_, err = p.store.LogCall(ctx, store.Call{
		CallSID:    call.CallSID,
		Direction:  store.CallDirectionOutbound,
		FromNumber: call.From,
		ToNumber:   call.To,
		Status:     store.CallStatusInitiated,
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to log outbound call", err)
	}

	return call, nil
}

// OutboundCallWebhook returns the TwiML for an answered outbound call.
func (p *VoiceCallProcessor) OutboundCallWebhook(ctx context.Context) (string, error) {
	return p.dialer.StreamTwiML(p.greeting(), p.mediaStreamURL())
}

// CallStatus records a Twilio status callback. Completed calls get their
// duration and end time persisted.
func (p *VoiceCallProcessor) CallStatus(ctx context.Context, callSID, status, duration string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: callSID},
		observability.Field{Key: "call_status", Value: status},
	)

	updates := store.CallUpdate{Status: &status}
	if status == store.CallStatusCompleted {
		if secs, err := strconv.Atoi(duration); err == nil {
			updates.Duration = &secs
		}
		endedAt := time.Now()
		updates.EndedAt = &endedAt
	}

	if _, err := p.store.UpdateCall(ctx, callSID, updates); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "Status callback for unknown call")
			return err
		}
		return fmt.Errorf("failed to record call status: %w", err)
	}

	p.logger.Info(ctx, "Call status recorded")
	return nil
}

// ListCalls returns recent calls, newest first.
func (p *VoiceCallProcessor) ListCalls(ctx context.Context, limit, offset int) ([]store.Call, error) {
	return p.store.GetCalls(ctx, limit, offset)
}

// ListLeads returns recent leads, newest first.
func (p *VoiceCallProcessor) ListLeads(ctx context.Context, limit, offset int) ([]store.Lead, error) {
	return p.store.GetLeads(ctx, limit, offset)
}

// ActiveCallIDs returns the call SIDs with live media sessions.
func (p *VoiceCallProcessor) ActiveCallIDs() []string {
	return p.registry.ActiveCallIDs()
}

// RunMediaStream bridges one upgraded Twilio websocket to a fresh voice
// session and blocks until the call ends.
func (p *VoiceCallProcessor) RunMediaStream(ctx context.Context, conn *websocket.Conn) {
	stream := twilio.NewMediaStream(ctx, conn, p.logger)
	s := session.New(p.sessionDeps, stream)

	if err := s.Start(ctx); err != nil {
		p.logger.Error(ctx, "Failed to start voice session", err)
		return
	}

	s.Run(ctx, stream)
}
