// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"os"

	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock
// implementations in tests.
type Service interface {
	SendShareLinkEmail(toEmail, displayName, shareURL string) error
}

// ResendClient is the concrete implementation of the email Service using the
// Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service
// interface.
func NewService() (Service, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := os.Getenv("SHARE_EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@lakbay.ph"
	}

	fromName := os.Getenv("SHARE_EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Lakbay"
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// SendShareLinkEmail sends the traveler their public share link.
func (c *ResendClient) SendShareLinkEmail(toEmail, displayName, shareURL string) error {
	name := displayName
	if name == "" {
		name = "traveler"
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: "Your Lakbay travel map is live",
		Html: fmt.Sprintf(
			`<p>Hi %s,</p><p>Your Philippine travel map is ready to share:</p><p><a href="%s">%s</a></p><p>Safe travels!</p>`,
			name, shareURL, shareURL,
		),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send share link email: %w", err)
	}
	return nil
}
