package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go-acoustics-backend/internal/domain"
	"go-acoustics-backend/pkg/notify"
	"go-acoustics-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	successMessage = "Thank you for your message! We will get back to you shortly."
	errorMessage   = "Error: Please check the form fields."
)

type contactUsecase struct {
	validate      *validator.Validate
	mailer        domain.ContactMailer
	sheets        domain.SheetLogger
	notifications *notify.Store
	log           *slog.Logger
	opTimeout     time.Duration
}

// NewContactUsecase creates the contact pipeline. opTimeout bounds each of
// the three outbound side effects individually.
func NewContactUsecase(
	validate *validator.Validate,
	mailer domain.ContactMailer,
	sheets domain.SheetLogger,
	notifications *notify.Store,
	log *slog.Logger,
	opTimeout time.Duration,
) domain.ContactUsecase {
	return &contactUsecase{
		validate:      validate,
		mailer:        mailer,
		sheets:        sheets,
		notifications: notifications,
		log:           log,
		opTimeout:     opTimeout,
	}
}

// Validate runs the authoritative rule set. The validator reports every
// failing field, keyed by its form field name.
func (uc *contactUsecase) Validate(sub *domain.ContactSubmission) domain.FieldErrors {
	if err := uc.validate.Struct(sub); err != nil {
		return domain.FieldErrors(validation.FieldErrorMap(err))
	}
	return nil
}

// Submit validates the submission and, when valid, fans out the three side
// effects. The result is success whenever validation passed: the side effects
// are best-effort notifications, not the primary contract, so an email or
// webhook failure never surfaces to the end user.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission) domain.SubmissionResult {
	if errs := uc.Validate(sub); len(errs) > 0 {
		return domain.SubmissionResult{
			Status:  domain.StatusError,
			Message: errorMessage,
			Success: false,
			Errors:  errs,
		}
	}

	uc.dispatch(ctx, sub)

	return domain.SubmissionResult{
		Status:  domain.StatusSuccess,
		Message: successMessage,
		Success: true,
	}
}

// dispatch runs the three outbound operations concurrently and waits for all
// of them to settle. The operations are independent: one failing never stops
// the others, and ordering between them is not guaranteed.
func (uc *contactUsecase) dispatch(ctx context.Context, sub *domain.ContactSubmission) {
	// The dispatch must outlive the client connection: a user navigating
	// away mid-submission does not cancel emails already in flight.
	base := context.WithoutCancel(ctx)

	var wg sync.WaitGroup

	if uc.mailer.IsConfigured() {
		uc.runOp(base, &wg, "confirmation_email", func(opCtx context.Context) error {
			return uc.mailer.SendConfirmation(opCtx, sub)
		})
		uc.runOp(base, &wg, "notification_email", func(opCtx context.Context) error {
			return uc.mailer.SendNotification(opCtx, sub)
		})
	} else {
		uc.skipOp("confirmation_email", "SMTP credentials not configured")
		uc.skipOp("notification_email", "SMTP credentials not configured")
	}

	if uc.sheets.IsConfigured() {
		uc.runOp(base, &wg, "sheets_webhook", func(opCtx context.Context) error {
			return uc.sheets.Append(opCtx, sub)
		})
	} else {
		uc.skipOp("sheets_webhook", "webhook URL or shared secret not configured")
	}

	wg.Wait()
}

// runOp starts one best-effort operation with its own timeout. Failures are
// logged and published for operator visibility only.
func (uc *contactUsecase) runOp(ctx context.Context, wg *sync.WaitGroup, name string, fn func(context.Context) error) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		opCtx, cancel := context.WithTimeout(ctx, uc.opTimeout)
		defer cancel()

		if err := fn(opCtx); err != nil {
			uc.log.Error("contact side effect failed", "operation", name, "error", err)
			uc.notifications.Publish(notify.LevelError, name, err.Error())
		}
	}()
}

func (uc *contactUsecase) skipOp(name, reason string) {
	uc.log.Warn("contact side effect skipped", "operation", name, "reason", reason)
	uc.notifications.Publish(notify.LevelWarning, name, "skipped: "+reason)
}
