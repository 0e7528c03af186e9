package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"callagent-server/internal/observability"

	"github.com/gorilla/websocket"
)

const realtimeBaseURL = "wss://api.openai.com/v1/realtime"

// DefaultRealtimeModel is the realtime voice model the agent runs on.
const DefaultRealtimeModel = "gpt-4o-realtime-preview-2024-10-01"

// Event types delivered on a session's event feed.
const (
	EventAudioDelta       = "audio_delta"
	EventAgentTranscript  = "agent_transcript"
	EventCallerTranscript = "caller_transcript"
	EventError            = "error"
)

// Event is a parsed realtime event relevant to the call relay.
type Event struct {
	Type       string
	Audio      string // base64 audio payload for audio deltas
	Transcript string
	Err        error
}

// SessionConfig describes the agent session sent in the initial
// session.update frame.
type SessionConfig struct {
	Model        string
	Voice        string
	Instructions string
}

// DefaultSessionConfig builds the standard sales-agent session for the given
// persona name and voice.
func DefaultSessionConfig(agentName, voice string) SessionConfig {
	return SessionConfig{
		Model:        DefaultRealtimeModel,
		Voice:        voice,
		Instructions: agentInstructions(agentName),
	}
}

func agentInstructions(agentName string) string {
	return fmt.Sprintf(`You are %s, a friendly and professional AI sales agent. Your role is to:

1. **Engage naturally**: Have a warm, conversational tone. Ask open-ended questions and show genuine interest.

2. **Qualify leads**: During the conversation, collect:
   - Full name
   - Business type/industry
   - Email address
   - Any specific needs or pain points

3. **Validate information**:
   - Confirm spelling of names and email addresses
   - Repeat back important information for verification

4. **Handle objections gracefully**: If someone is busy or not interested, thank them politely and offer to call back later.

5. **Be concise**: Keep your responses brief (2-3 sentences max) to maintain natural conversation flow.

6. **Close professionally**: Thank them for their time and let them know they'll receive a follow-up email.

Remember: You're helpful, not pushy. Focus on understanding their needs rather than just making a sale.

For outbound calls: Introduce yourself, ask if it's a good time to talk, then proceed with qualification.
For inbound calls: Thank them for calling, ask how you can help, then proceed with qualification.`, agentName)
}

// RealtimeClient opens realtime voice sessions against the OpenAI API.
type RealtimeClient struct {
	apiKey  string
	baseURL string
	logger  *observability.Logger
}

func NewRealtimeClient(apiKey string, logger *observability.Logger) (*RealtimeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &RealtimeClient{apiKey: apiKey, baseURL: realtimeBaseURL, logger: logger}, nil
}

// RealtimeSession is one open realtime voice connection. Writes are mutex
// protected; inbound events are delivered in arrival order on Events().
type RealtimeSession struct {
	conn      *websocket.Conn
	logger    *observability.Logger
	events    chan Event
	writeMu   sync.Mutex
	closeOnce sync.Once
}

// OpenSession dials the realtime endpoint and sends the session configuration
// frame. The configuration is on the wire before any audio can be relayed; if
// sending it fails the open fails.
func (c *RealtimeClient) OpenSession(ctx context.Context, cfg SessionConfig) (*RealtimeSession, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)
	headers.Set("OpenAI-Beta", "realtime=v1")

	url := fmt.Sprintf("%s?model=%s", c.baseURL, cfg.Model)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, headers)
	if err != nil {
		c.logger.Error(ctx, "Failed to connect to OpenAI realtime endpoint", err)
		return nil, fmt.Errorf("failed to connect to OpenAI realtime endpoint: %w", err)
	}

	s := &RealtimeSession{
		conn:   conn,
		logger: c.logger,
		events: make(chan Event, 64),
	}

	update := map[string]interface{}{
		"type": "session.update",
		"session": map[string]interface{}{
			"modalities":          []string{"text", "audio"},
			"instructions":        cfg.Instructions,
			"voice":               cfg.Voice,
			"input_audio_format":  "pcm16",
			"output_audio_format": "pcm16",
			"input_audio_transcription": map[string]string{
				"model": "whisper-1",
			},
			"turn_detection": map[string]interface{}{
				"type":                "server_vad",
				"threshold":           0.5,
				"prefix_padding_ms":   300,
				"silence_duration_ms": 500,
			},
			"tools":                      []interface{}{},
			"tool_choice":                "auto",
			"temperature":                0.8,
			"max_response_output_tokens": 4096,
		},
	}
	if err := s.writeJSON(update); err != nil {
		conn.Close()
		c.logger.Error(ctx, "Failed to send realtime session config", err)
		return nil, fmt.Errorf("failed to send session config: %w", err)
	}

	c.logger.Info(ctx, "OpenAI realtime session opened")
	go s.readLoop(ctx)
	return s, nil
}

// readLoop parses inbound frames and forwards the event kinds the relay cares
// about. A read error is terminal: it is surfaced as an error event and the
// feed is closed.
func (s *RealtimeSession) readLoop(ctx context.Context) {
	defer close(s.events)
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Info(ctx, "OpenAI realtime connection closed")
			} else {
				s.logger.Error(ctx, "OpenAI realtime read failed", err)
			}
			s.events <- Event{Type: EventError, Err: err}
			return
		}

		var frame struct {
			Type       string `json:"type"`
			Delta      string `json:"delta"`
			Transcript string `json:"transcript"`
		}
		if err := json.Unmarshal(msg, &frame); err != nil {
			s.logger.Error(ctx, "Failed to parse OpenAI realtime event", err)
			continue
		}

		switch frame.Type {
		case "response.audio.delta":
			s.events <- Event{Type: EventAudioDelta, Audio: frame.Delta}
		case "response.audio_transcript.done":
			s.events <- Event{Type: EventAgentTranscript, Transcript: frame.Transcript}
		case "conversation.item.input_audio_transcription.completed":
			s.events <- Event{Type: EventCallerTranscript, Transcript: frame.Transcript}
		}
	}
}

// SendAudio forwards raw audio bytes as an input_audio_buffer.append frame.
func (s *RealtimeSession) SendAudio(audio []byte) error {
	return s.writeJSON(map[string]interface{}{
		"type":  "input_audio_buffer.append",
		"audio": base64.StdEncoding.EncodeToString(audio),
	})
}

// CommitAudio signals the end of an audio chunk boundary.
func (s *RealtimeSession) CommitAudio() error {
	return s.writeJSON(map[string]interface{}{
		"type": "input_audio_buffer.commit",
	})
}

// SendText injects a user text item and triggers a model response.
func (s *RealtimeSession) SendText(text string) error {
	item := map[string]interface{}{
		"type": "conversation.item.create",
		"item": map[string]interface{}{
			"type": "message",
			"role": "user",
			"content": []map[string]string{
				{"type": "input_text", "text": text},
			},
		},
	}
	if err := s.writeJSON(item); err != nil {
		return err
	}
	return s.writeJSON(map[string]interface{}{
		"type": "response.create",
	})
}

// Events returns the inbound event feed. The channel is closed when the
// connection ends; the final event before close carries the terminal error.
func (s *RealtimeSession) Events() <-chan Event {
	return s.events
}

// Close closes the connection; safe to call more than once.
func (s *RealtimeSession) Close() {
	s.closeOnce.Do(func() {
		s.writeMu.Lock()
		s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.writeMu.Unlock()
		s.conn.Close()
	})
}

func (s *RealtimeSession) writeJSON(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}
