package api

import (
	"net/http"

	voiceCallHandler "callagent-server/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	voiceCallHandler voiceCallHandler.Handler
}

func New(router *gin.RouterGroup, voiceCallHandler voiceCallHandler.Handler) API {
	return API{
		router:           router,
		voiceCallHandler: voiceCallHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		// Twilio webhooks
		apiGroup.POST("/inbound-call", a.voiceCallHandler.HandleInboundCall)
		apiGroup.POST("/outbound-call-webhook", a.voiceCallHandler.HandleOutboundCallWebhook)
		apiGroup.POST("/call-status", a.voiceCallHandler.HandleCallStatus)

		// Call audio websocket
		apiGroup.GET("/media-stream", a.voiceCallHandler.HandleMediaStream)

		// Operator API
		apiGroup.POST("/outbound-call", a.voiceCallHandler.HandleOutboundCall)
		apiGroup.GET("/calls", a.voiceCallHandler.HandleListCalls)
		apiGroup.GET("/leads", a.voiceCallHandler.HandleListLeads)
		apiGroup.GET("/active-calls", a.voiceCallHandler.HandleActiveCalls)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
