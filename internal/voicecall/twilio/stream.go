package twilio

import (
	"context"
	"encoding/json"
	"sync"

	"callagent-server/internal/observability"

	"github.com/gorilla/websocket"
)

// MediaEvent is a frame on a Twilio media-stream websocket.
type MediaEvent struct {
	Event string `json:"event"`
	Start struct {
		StreamSid string `json:"streamSid"`
		CallSid   string `json:"callSid"`
	} `json:"start,omitempty"`
	Media struct {
		Payload string `json:"payload"`
	} `json:"media,omitempty"`
	Stop struct {
		StreamSid string `json:"streamSid"`
	} `json:"stop,omitempty"`
}

// Event kinds Twilio sends on a media stream.
const (
	EventStart = "start"
	EventMedia = "media"
	EventStop  = "stop"
)

// MediaStream wraps one Twilio media-stream websocket connection. Writes are
// mutex protected so media frames can be sent while the read loop runs.
type MediaStream struct {
	conn      *websocket.Conn
	logger    *observability.Logger
	ctx       context.Context
	writeMu   sync.Mutex
	closeOnce sync.Once
}

func NewMediaStream(ctx context.Context, conn *websocket.Conn, logger *observability.Logger) *MediaStream {
	return &MediaStream{
		conn:   conn,
		logger: logger,
		ctx:    ctx,
	}
}

// ReadEvent blocks for the next well-formed frame. Malformed frames are
// logged and dropped; the stream keeps going.
func (m *MediaStream) ReadEvent() (MediaEvent, error) {
	for {
		_, msg, err := m.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				m.logger.Info(m.ctx, "Twilio media stream closed normally")
			}
			return MediaEvent{}, err
		}

		var event MediaEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			m.logger.Error(m.ctx, "Failed to parse Twilio event", err)
			continue
		}
		return event, nil
	}
}

// SendMedia sends one outbound media frame addressed to streamSID. The
// payload is base64 audio.
func (m *MediaStream) SendMedia(streamSID, payload string) error {
	mediaMsg := map[string]interface{}{
		"event":     "media",
		"streamSid": streamSID,
		"media": map[string]string{
			"payload": payload,
		},
	}

	msgBytes, err := json.Marshal(mediaMsg)
	if err != nil {
		return err
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.conn.WriteMessage(websocket.TextMessage, msgBytes)
}

// Close sends a close frame and closes the connection; safe to call more
// than once.
func (m *MediaStream) Close() error {
	var err error
	m.closeOnce.Do(func() {
		m.writeMu.Lock()
		m.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		m.writeMu.Unlock()
		err = m.conn.Close()
	})
	return err
}
