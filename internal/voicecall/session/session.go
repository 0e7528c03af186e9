package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"callagent-server/internal/clients/openai"
	"callagent-server/internal/observability"
	"callagent-server/internal/voicecall/twilio"
)

// Session lifecycle states. Transitions are monotonic: a session never moves
// backwards, and completing is entered at most once.
const (
	StateConnecting = "connecting"
	StateActive     = "active"
	StateCompleting = "completing"
	StateClosed     = "closed"
)

var ErrConnectFailed = errors.New("failed to open upstream voice session")

// Deps are the collaborators a session needs. The zero value is not usable.
type Deps struct {
	Logger    *observability.Logger
	Registry  *Registry
	Dialer    UpstreamDialer
	Completer Completer
	Upstream  openai.SessionConfig
}

// Session bridges one telephony media stream to one upstream voice session.
// All state is guarded by mu; the media read loop and the upstream consumer
// are the only writers.
type Session struct {
	deps       Deps
	downstream Downstream

	mu         sync.Mutex
	state      string
	callID     string
	streamSID  string
	upstream   UpstreamSession
	transcript *Accumulator
	startedAt  time.Time
}

func New(deps Deps, downstream Downstream) *Session {
	return &Session{
		deps:       deps,
		downstream: downstream,
		state:      StateConnecting,
		transcript: NewAccumulator(),
		startedAt:  time.Now(),
	}
}

// Start opens the upstream session and begins consuming its events. On
// failure the session is closed and the downstream connection dropped; the
// caller should not use the session further.
func (s *Session) Start(ctx context.Context) error {
	upstream, err := s.deps.Dialer.Dial(ctx, s.deps.Upstream)
	if err != nil {
		s.mu.Lock()
		s.state = StateClosed
		s.mu.Unlock()
		s.downstream.Close()
		return fmt.Errorf("%w: %s", ErrConnectFailed, err.Error())
	}

	s.mu.Lock()
	s.upstream = upstream
	s.mu.Unlock()

	go s.consumeUpstream(ctx)
	return nil
}

// Run reads telephony frames until the downstream connection ends, then tears
// the session down. A downstream disconnect is treated like a stop frame.
func (s *Session) Run(ctx context.Context, stream *twilio.MediaStream) {
	for {
		event, err := stream.ReadEvent()
		if err != nil {
			s.complete(ctx, teardown{reason: "downstream disconnected", closeDownstream: true})
			return
		}
		s.HandleMediaEvent(ctx, event)
		if s.State() == StateClosed {
			return
		}
	}
}

// HandleMediaEvent applies one telephony frame to the session.
func (s *Session) HandleMediaEvent(ctx context.Context, event twilio.MediaEvent) {
	switch event.Event {
	case twilio.EventStart:
		s.handleStart(ctx, event.Start.CallSid, event.Start.StreamSid)
	case twilio.EventMedia:
		s.handleMedia(ctx, event.Media.Payload)
	case twilio.EventStop:
		s.complete(ctx, teardown{reason: "stream stopped", closeDownstream: true})
	}
}

func (s *Session) handleStart(ctx context.Context, callID, streamSID string) {
	s.mu.Lock()
	if s.state != StateConnecting {
		s.mu.Unlock()
		return
	}
	s.callID = callID
	s.streamSID = streamSID
	s.state = StateActive
	s.mu.Unlock()

	s.deps.Registry.Register(ctx, callID, s)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: callID},
		observability.Field{Key: "stream_sid", Value: streamSID},
	)
	s.deps.Logger.Info(ctx, "Media stream started")
}

func (s *Session) handleMedia(ctx context.Context, payload string) {
	s.mu.Lock()
	upstream := s.upstream
	live := s.state == StateConnecting || s.state == StateActive
	s.mu.Unlock()
	if !live || upstream == nil {
		return
	}

	audio, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		s.deps.Logger.Error(ctx, "Failed to decode media payload", err)
		return
	}
	if err := upstream.SendAudio(audio); err != nil {
		s.deps.Logger.Error(ctx, "Failed to forward audio upstream", err)
	}
}

// consumeUpstream drains the upstream event feed for the life of the
// connection. It keeps draining through completion so the upstream read loop
// never blocks on a full channel.
func (s *Session) consumeUpstream(ctx context.Context) {
	s.mu.Lock()
	upstream := s.upstream
	s.mu.Unlock()

	for event := range upstream.Events() {
		s.handleUpstreamEvent(ctx, event)
	}
}

func (s *Session) handleUpstreamEvent(ctx context.Context, event openai.Event) {
	switch event.Type {
	case openai.EventAudioDelta:
		s.mu.Lock()
		streamSID := s.streamSID
		live := s.state == StateActive
		s.mu.Unlock()
		// Audio arriving before the start frame has nowhere to go.
		if !live || streamSID == "" {
			return
		}
		if err := s.downstream.SendMedia(streamSID, event.Audio); err != nil {
			s.deps.Logger.Error(ctx, "Failed to send audio downstream", err)
		}

	case openai.EventAgentTranscript:
		s.mu.Lock()
		if s.state == StateConnecting || s.state == StateActive {
			s.transcript.AppendUtterance(RoleAgent, event.Transcript)
		}
		s.mu.Unlock()

	case openai.EventCallerTranscript:
		s.mu.Lock()
		if s.state == StateConnecting || s.state == StateActive {
			s.transcript.AppendUtterance(RoleCaller, event.Transcript)
			s.transcript.ExtractFields(event.Transcript)
		}
		s.mu.Unlock()

	case openai.EventError:
		// Upstream failure never closes the telephony leg.
		s.complete(ctx, teardown{reason: "upstream ended", closeDownstream: false})
	}
}

type teardown struct {
	reason          string
	closeDownstream bool
}

// complete runs the post-call pipeline exactly once. The first caller wins;
// later triggers from any goroutine are no-ops.
func (s *Session) complete(ctx context.Context, td teardown) {
	s.mu.Lock()
	if s.state == StateCompleting || s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateCompleting
	callID := s.callID
	upstream := s.upstream
	result := CallResult{
		CallSID:    callID,
		StartedAt:  s.startedAt,
		Transcript: s.transcript.RenderTranscript(),
		Fields:     s.transcript.Fields(),
	}
	s.mu.Unlock()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: callID},
		observability.Field{Key: "reason", Value: td.reason},
	)
	s.deps.Logger.Info(ctx, "Completing call session")

	if upstream != nil {
		upstream.Close()
	}
	if td.closeDownstream {
		s.downstream.Close()
	}

	if callID != "" {
		s.deps.Registry.Deregister(callID, s)
		s.deps.Completer.Process(ctx, result)
	}

	s.mu.Lock()
	s.state = StateClosed
	s.mu.Unlock()
}

// Terminate force-closes the session, used when a newer session takes over
// the same call.
func (s *Session) Terminate(ctx context.Context) {
	s.complete(ctx, teardown{reason: "terminated", closeDownstream: true})
}

// State returns the current lifecycle state.
func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
