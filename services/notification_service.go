package services

import (
	"fmt"
	"log"
	"strings"

	"court_filing_app_go/config"
	"court_filing_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an outbound email message
type Email struct {
	To       []string
	Subject  string
	TextBody string
}

// SendEmail sends an email using the Resend API. In test mode the email is
// logged to the console instead of sent.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.TextBody == "" {
		return fmt.Errorf("email must have a body")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// SendFilingConfirmation notifies the filer that a document was submitted to
// the filing gateway
func SendFilingConfirmation(cfg *config.Config, toEmail string, doc *models.Document, court *models.Court, event *models.FilingEvent) error {
	body := fmt.Sprintf(
		"Your document %q was submitted to %s on %s.\n\n"+
			"Confirmation number: %s\n\n"+
			"Keep this confirmation number for your records. The court clerk may "+
			"contact you if additional information is required.",
		doc.FileName,
		court.Name,
		event.FiledAt.Format("January 2, 2006 at 3:04 PM MST"),
		event.ConfirmationNumber,
	)

	return SendEmail(cfg, &Email{
		To:       []string{toEmail},
		Subject:  fmt.Sprintf("Filing confirmation %s", event.ConfirmationNumber),
		TextBody: body,
	})
}

// logEmailToConsole logs email details in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode - not actually sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("Body:\n%s\n%s", email.TextBody, separator)
}
