package bootstrap

import (
	"context"
	"fmt"

	"callagent-server/internal/config"
	"callagent-server/internal/observability"
	"callagent-server/internal/store"

	"callagent-server/internal/clients/mail"
	openaiClient "callagent-server/internal/clients/openai"
	twilioClient "callagent-server/internal/clients/twilio"
	"callagent-server/internal/email"
	voiceCallExtractor "callagent-server/internal/voicecall/extractor"
	voiceCallHandler "callagent-server/internal/voicecall/handler"
	voiceCallProcessor "callagent-server/internal/voicecall/processor"
	"callagent-server/internal/voicecall/session"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	VoiceCallHandler voiceCallHandler.Handler

	// Session registry, exposed for shutdown and introspection
	Registry *session.Registry
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	realtimeClient, err := openaiClient.NewRealtimeClient(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create realtime client: %w", err)
	}

	twilio := twilioClient.NewClient(
		cfg.Services.TwilioAccountSID,
		cfg.Services.TwilioAuthToken,
		cfg.Services.TwilioPhoneNumber,
		logger,
	)

	// Initialize email service
	emailService := email.New(mailClient, cfg.Email.FromAddress, cfg.Email.NotificationAddress, cfg.Agent.Name, logger)

	// Initialize transcript extractor
	leadExtractor, err := voiceCallExtractor.New(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead extractor: %w", err)
	}

	// Initialize session registry and completion pipeline
	deps.Registry = session.NewRegistry(logger)
	completer := session.NewCompletionProcessor(&deps.Store, &deps.Store, emailService, leadExtractor, logger)

	sessionDeps := session.Deps{
		Logger:    logger,
		Registry:  deps.Registry,
		Dialer:    session.RealtimeDialer{Client: realtimeClient},
		Completer: completer,
		Upstream:  openaiClient.DefaultSessionConfig(cfg.Agent.Name, cfg.Agent.Voice),
	}

	// Initialize voice call processor and handler
	voiceCallProc := voiceCallProcessor.New(
		&deps.Store,
		twilio,
		deps.Registry,
		sessionDeps,
		cfg.Server.BackendURL,
		cfg.Agent.Name,
		logger,
	)
	deps.VoiceCallHandler = voiceCallHandler.New(voiceCallProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	d.Store.Close()
}
