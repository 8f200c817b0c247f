package email

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"go-acoustics-backend/config"
	"go-acoustics-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigured(t *testing.T) {
	svc := NewEmailService(&config.Config{
		SMTPHost:     "smtp-relay.brevo.com",
		SMTPUsername: "user",
		SMTPPassword: "pass",
	})
	assert.True(t, svc.IsConfigured())

	svc = NewEmailService(&config.Config{SMTPHost: "smtp-relay.brevo.com"})
	assert.False(t, svc.IsConfigured())
}

func TestSendHonorsContextDeadline(t *testing.T) {
	// A server that accepts the connection but never sends the SMTP
	// greeting. Without the connection deadline the send would block on the
	// greeting read forever.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		io.Copy(io.Discard, conn)
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	svc := NewEmailService(&config.Config{
		SMTPHost:      host,
		SMTPPort:      port,
		SMTPUsername:  "user",
		SMTPPassword:  "pass",
		SMTPFromEmail: "noreply@veasacoustics.com",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- svc.SendConfirmation(ctx, &domain.ContactSubmission{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		})
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("send did not return after the context deadline expired")
	}
}

func TestConfirmationTemplate(t *testing.T) {
	body, err := render(confirmationTmpl, &domain.ContactSubmission{Name: "Jane Doe"})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Jane Doe,")
	assert.Contains(t, body, "Veas Acoustics")
}

func TestNotificationTemplate(t *testing.T) {
	t.Run("All fields render", func(t *testing.T) {
		body, err := render(notificationTmpl, &domain.ContactSubmission{
			Name:           "Jane Doe",
			Company:        "Acme Ltd",
			Email:          "jane@example.com",
			Telephone:      "+44 1234 567890",
			ProjectAddress: "1 High Street",
			Message:        "Please call me about a survey",
		})
		require.NoError(t, err)

		assert.Contains(t, body, "New Enquiry Received")
		assert.Contains(t, body, "Jane Doe")
		assert.Contains(t, body, "Acme Ltd")
		assert.Contains(t, body, "jane@example.com")
		assert.Contains(t, body, "1 High Street")
		assert.Contains(t, body, "Please call me about a survey")
	})

	t.Run("Missing optional fields render as an em-dash", func(t *testing.T) {
		body, err := render(notificationTmpl, &domain.ContactSubmission{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Message: "Please call me about a survey",
		})
		require.NoError(t, err)

		assert.Contains(t, body, "—")
	})

	t.Run("Submitted values are HTML-escaped", func(t *testing.T) {
		body, err := render(notificationTmpl, &domain.ContactSubmission{
			Name:    "<script>alert(1)</script>",
			Email:   "jane@example.com",
			Message: "Please call me about a survey",
		})
		require.NoError(t, err)

		assert.NotContains(t, body, "<script>")
	})
}
