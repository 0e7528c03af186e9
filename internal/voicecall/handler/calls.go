package handler

import (
	"errors"
	"net/http"
	"strconv"

	"callagent-server/internal/apierrors"
	"callagent-server/internal/store"
	"callagent-server/internal/voicecall/processor"

	"github.com/gin-gonic/gin"
)

// OutboundCallRequest is the JSON body for placing a call.
type OutboundCallRequest struct {
	ToNumber string `json:"to_number" binding:"required"`
}

// HandleInboundCall handles POST /api/inbound-call, the Twilio voice webhook.
// The response is TwiML.
func (h *Handler) HandleInboundCall(c *gin.Context) {
	ctx := c.Request.Context()

	callSID := c.PostForm("CallSid")
	from := c.PostForm("From")
	to := c.PostForm("To")

	twiml, err := h.processor.InboundCall(ctx, callSID, from, to)
	if err != nil {
		h.logger.Error(ctx, "failed to answer inbound call", err)
		apierrors.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/xml", []byte(twiml))
}

// HandleOutboundCall handles POST /api/outbound-call.
func (h *Handler) HandleOutboundCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req OutboundCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind outbound call request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", "to_number is required")
		return
	}

	call, err := h.processor.OutboundCall(ctx, req.ToNumber)
	if err != nil {
		if errors.Is(err, processor.ErrMissingToNumber) {
			apierrors.BadRequest(c, "INVALID_REQUEST", "to_number is required")
			return
		}
		h.logger.Error(ctx, "failed to place outbound call", err)
		apierrors.ServiceUnavailable(c, "CALL_FAILED", "failed to place call", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"call_sid": call.CallSID,
		"status":   call.Status,
		"from":     call.From,
		"to":       call.To,
	})
}

// HandleOutboundCallWebhook handles POST /api/outbound-call-webhook, hit by
// Twilio when an outbound call is answered. The response is TwiML.
func (h *Handler) HandleOutboundCallWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	twiml, err := h.processor.OutboundCallWebhook(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to build outbound call TwiML", err)
		apierrors.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/xml", []byte(twiml))
}

// HandleCallStatus handles POST /api/call-status, the Twilio status callback.
func (h *Handler) HandleCallStatus(c *gin.Context) {
	ctx := c.Request.Context()

	callSID := c.PostForm("CallSid")
	status := c.PostForm("CallStatus")
	duration := c.PostForm("CallDuration")

	if err := h.processor.CallStatus(ctx, callSID, status, duration); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Still 200: Twilio retries non-2xx callbacks and the call is gone.
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}
		h.logger.Error(ctx, "failed to record call status", err)
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleListCalls handles GET /api/calls.
func (h *Handler) HandleListCalls(c *gin.Context) {
	ctx := c.Request.Context()
	limit, offset := paginationParams(c)

	calls, err := h.processor.ListCalls(ctx, limit, offset)
	if err != nil {
		h.logger.Error(ctx, "failed to list calls", err)
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calls": calls})
}

// HandleListLeads handles GET /api/leads.
func (h *Handler) HandleListLeads(c *gin.Context) {
	ctx := c.Request.Context()
	limit, offset := paginationParams(c)

	leads, err := h.processor.ListLeads(ctx, limit, offset)
	if err != nil {
		h.logger.Error(ctx, "failed to list leads", err)
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// HandleActiveCalls handles GET /api/active-calls.
func (h *Handler) HandleActiveCalls(c *gin.Context) {
	ids := h.processor.ActiveCallIDs()
	c.JSON(http.StatusOK, gin.H{
		"active_calls": ids,
		"count":        len(ids),
	})
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit = 50
	offset = 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
