package handler

import (
	"net/http"

	"callagent-server/internal/observability"
	"callagent-server/internal/voicecall/processor"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// upgrader accepts the Twilio media-stream connection. Twilio does not send
// a browser origin, so origin checks are disabled.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	processor *processor.VoiceCallProcessor
	logger    *observability.Logger
}

func New(processor *processor.VoiceCallProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleMediaStream handles GET /api/media-stream. It upgrades the request
// to a websocket and blocks for the duration of the call.
func (h *Handler) HandleMediaStream(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade media-stream connection", err)
		return
	}

	h.processor.RunMediaStream(ctx, conn)
}
