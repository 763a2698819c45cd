package invoicing

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a rendered invoice to the client address.
type Mailer interface {
	SendInvoice(ctx context.Context, inv Invoice, pdf []byte) error
}

// SendGridMailer sends the invoice as a plain-text email with the PDF
// attached base64-encoded.
type SendGridMailer struct {
	client      *sendgrid.Client
	sender      string
	companyName string
}

func NewSendGridMailer(cfg Config) *SendGridMailer {
	return &SendGridMailer{
		client:      sendgrid.NewSendClient(cfg.SendGridAPIKey),
		sender:      cfg.SenderEmail,
		companyName: cfg.CompanyName,
	}
}

func (m *SendGridMailer) SendInvoice(ctx context.Context, inv Invoice, pdf []byte) error {
	number := inv.InvoiceInfo.Number
	from := mail.NewEmail(m.companyName, m.sender)
	to := mail.NewEmail(inv.Client.Name, inv.Client.Email)
	subject := fmt.Sprintf("Invoice #%s from %s", number, m.companyName)
	body := fmt.Sprintf(
		"Hi %s,\n\nPlease find attached your invoice #%s.\n\nThank you for your business!\n\nSincerely,\n%s",
		inv.Client.Name, number, m.companyName)

	msg := mail.NewSingleEmailPlainText(from, subject, to, body)

	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(pdf))
	attachment.SetType("application/pdf")
	attachment.SetFilename(fmt.Sprintf("invoice-%s.pdf", number))
	attachment.SetDisposition("attachment")
	msg.AddAttachment(attachment)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
