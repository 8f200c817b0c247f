package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"

	"go-acoustics-backend/config"
	"go-acoustics-backend/internal/domain"
)

// EmailService sends the contact-form transactional emails via SMTP.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
	toEmail   string
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		fromName:  cfg.SMTPFromName,
		toEmail:   cfg.ContactEmailTo,
	}
}

// confirmationTemplate acknowledges the submitter's enquiry.
const confirmationTemplate = `<p>Hi {{.Name}},</p>
<p>Thank you for reaching out to Veas Acoustics. We&rsquo;ve received your enquiry and will get back to you shortly.</p>
<p>Best regards,<br>Phil @ Veas Acoustics</p>`

// notificationTemplate carries the full submission to the operator inbox.
// Optional fields render as an em-dash rather than blank.
const notificationTemplate = `<h2>New Enquiry Received</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Company:</strong> {{orDash .Company}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Telephone:</strong> {{orDash .Telephone}}</p>
<p><strong>Project Address:</strong> {{orDash .ProjectAddress}}</p>
<p><strong>Message:</strong><br>{{.Message}}</p>`

var templateFuncs = template.FuncMap{
	"orDash": func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	},
}

var (
	confirmationTmpl = template.Must(template.New("confirmation").Funcs(templateFuncs).Parse(confirmationTemplate))
	notificationTmpl = template.Must(template.New("notification").Funcs(templateFuncs).Parse(notificationTemplate))
)

// SendConfirmation sends the acknowledgement email to the submitter.
func (s *EmailService) SendConfirmation(ctx context.Context, sub *domain.ContactSubmission) error {
	body, err := render(confirmationTmpl, sub)
	if err != nil {
		return err
	}
	return s.send(ctx, sub.Email, "", "Thank you for contacting Veas Acoustics", body)
}

// SendNotification sends the full submission to the operator inbox.
func (s *EmailService) SendNotification(ctx context.Context, sub *domain.ContactSubmission) error {
	body, err := render(notificationTmpl, sub)
	if err != nil {
		return err
	}
	return s.send(ctx, s.toEmail, sub.Email, "New enquiry from Veas Acoustics website", body)
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func render(tmpl *template.Template, sub *domain.ContactSubmission) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, sub); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// send assembles a MIME message and delivers it over SMTP. The connection is
// dialed with ctx and inherits its deadline, so a hung server fails the send
// instead of blocking the dispatch join.
func (s *EmailService) send(ctx context.Context, to, replyTo, subject, body string) error {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n",
		s.fromName, s.fromEmail,
		to,
	)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	msg := []byte(fmt.Sprintf(
		"%s"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		headers,
		subject,
		body,
	))

	addr := net.JoinHostPort(s.host, s.port)
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set SMTP deadline: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open SMTP session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return fmt.Errorf("failed to authenticate with SMTP server: %w", err)
		}
	}

	if err := client.Mail(s.fromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return client.Quit()
}
