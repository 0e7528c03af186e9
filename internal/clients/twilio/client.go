package twilio

import (
	"context"
	"fmt"

	"callagent-server/internal/observability"

	twilioapi "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"
)

// Client wraps the Twilio REST API for call control and TwiML generation.
type Client struct {
	api        *twilioapi.RestClient
	fromNumber string
	logger     *observability.Logger
}

func NewClient(accountSID, authToken, fromNumber string, logger *observability.Logger) *Client {
	rest := twilioapi.NewRestClientWithParams(twilioapi.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{
		api:        rest,
		fromNumber: fromNumber,
		logger:     logger,
	}
}

// OutboundCall describes a call created through the REST API.
type OutboundCall struct {
	CallSID string
	Status  string
	From    string
	To      string
}

// MakeOutboundCall dials toNumber and points Twilio at webhookURL for TwiML.
// Status transitions are reported to statusCallbackURL.
func (c *Client) MakeOutboundCall(ctx context.Context, toNumber, webhookURL, statusCallbackURL string) (OutboundCall, error) {
	params := &openapi.CreateCallParams{}
	params.SetTo(toNumber)
	params.SetFrom(c.fromNumber)
	params.SetUrl(webhookURL)
	params.SetStatusCallback(statusCallbackURL)
	params.SetStatusCallbackEvent([]string{"initiated", "ringing", "answered", "completed"})
	params.SetStatusCallbackMethod("POST")

	call, err := c.api.Api.CreateCall(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create outbound call", err)
		return OutboundCall{}, fmt.Errorf("failed to create outbound call: %w", err)
	}

	out := OutboundCall{From: c.fromNumber, To: toNumber}
	if call.Sid != nil {
		out.CallSID = *call.Sid
	}
	if call.Status != nil {
		out.Status = *call.Status
	}

	c.logger.Info(ctx, fmt.Sprintf("Outbound call initiated: %s to %s", out.CallSID, toNumber))
	return out, nil
}

// StreamTwiML builds the voice response that greets the caller and connects
// the call to the media-stream websocket.
func (c *Client) StreamTwiML(greeting, streamURL string) (string, error) {
	say := &twiml.VoiceSay{
		Message: greeting,
	}

	stream := twiml.VoiceStream{
		Name: "media-stream",
		Url:  streamURL,
	}

	connect := twiml.VoiceConnect{
		InnerElements: []twiml.Element{stream},
	}

	return twiml.Voice([]twiml.Element{say, connect})
}
