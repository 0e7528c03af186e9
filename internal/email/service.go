package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"callagent-server/internal/clients/mail"
	"callagent-server/internal/observability"
	"callagent-server/internal/store"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// EmailService handles sending post-call emails
type EmailService struct {
	mailClient        *mail.ResendClient
	logger            *observability.Logger
	defaultSender     string
	notificationEmail string
	agentName         string
	templates         map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	Name         string
	Email        string
	Phone        string
	BusinessType string
	Notes        string
	CallSID      string
	AgentName    string
}

// New creates a new EmailService
func New(mailClient *mail.ResendClient, defaultSender, notificationEmail, agentName string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:        mailClient,
		logger:            logger,
		defaultSender:     defaultSender,
		notificationEmail: notificationEmail,
		agentName:         agentName,
		templates: map[string]string{
			"lead_notification": `
			<html>
				<body>
					<h2>New Lead Captured</h2>
					<p><strong>Name:</strong> {{.Name}}</p>
					<p><strong>Email:</strong> {{.Email}}</p>
					<p><strong>Phone:</strong> {{.Phone}}</p>
					<p><strong>Business Type:</strong> {{.BusinessType}}</p>
					<p><strong>Notes:</strong> {{.Notes}}</p>
					<p><strong>Call SID:</strong> {{.CallSID}}</p>
				</body>
			</html>
			`,
			"lead_followup": `
			<html>
				<body>
					<h2>Hi {{.Name}},</h2>
					<p>It was great speaking with you today! Thank you for taking the time to discuss your business needs.</p>
					<p>As promised, here's a summary of our conversation:</p>
					<ul>
						<li><strong>Business Type:</strong> {{.BusinessType}}</li>
					</ul>
					<p>If you have any questions or would like to continue our conversation, feel free to reply to this email or call us back.</p>
					<p>Best regards,<br>{{.AgentName}}</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func templateDataForLead(lead store.Lead, agentName string) TemplateData {
	return TemplateData{
		Name:         orNA(lead.Name),
		Email:        orNA(lead.Email),
		Phone:        orNA(lead.Phone),
		BusinessType: orNA(lead.BusinessType),
		Notes:        lead.Notes,
		CallSID:      orNA(lead.CallSID),
		AgentName:    agentName,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// SendLeadNotification emails the configured notification address about a
// newly captured lead.
func (s *EmailService) SendLeadNotification(ctx context.Context, lead store.Lead) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "lead_notification"},
		observability.Field{Key: "call_sid", Value: lead.CallSID},
	)

	name := lead.Name
	if name == "" {
		name = "Unknown"
	}
	subject := fmt.Sprintf("New Lead: %s", name)

	htmlContent, err := s.renderTemplate("lead_notification", templateDataForLead(lead, s.agentName))
	if err != nil {
		s.logger.Error(ctx, "failed to render lead notification template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, s.notificationEmail, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send lead notification email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendFollowupEmail sends the post-call follow-up to the lead.
func (s *EmailService) SendFollowupEmail(ctx context.Context, to string, lead store.Lead) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "lead_followup"},
		observability.Field{Key: "call_sid", Value: lead.CallSID},
	)

	subject := fmt.Sprintf("Great speaking with you - %s", s.agentName)

	data := templateDataForLead(lead, s.agentName)
	if lead.Name == "" {
		data.Name = "there"
	}

	htmlContent, err := s.renderTemplate("lead_followup", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render follow-up email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send follow-up email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
