package domain

import "context"

// SubmissionStatus is the discriminant of a SubmissionResult.
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

// FieldErrors maps a form field name to the ordered list of messages for it.
type FieldErrors map[string][]string

// ContactSubmission represents a contact form submission crossing the trust
// boundary. It is built from raw form input and lives for one request only;
// persistence is delegated to the spreadsheet webhook.
type ContactSubmission struct {
	Name           string `form:"name" json:"name" validate:"required,min=2"`
	Company        string `form:"company" json:"company,omitempty"`
	Email          string `form:"email" json:"email" validate:"required,email"`
	Telephone      string `form:"telephone" json:"telephone,omitempty"`
	ProjectAddress string `form:"projectAddress" json:"projectAddress,omitempty"`
	Message        string `form:"message" json:"message" validate:"required,min=10"`
	// Checkboxes submit the literal "on" when checked. The UI maps its
	// boolean state to this sentinel before the entity is validated.
	GDPRConsent string `form:"gdprConsent" json:"gdprConsent" validate:"required,consent"`
}

// SubmissionResult is the outcome of one submission attempt, consumed directly
// by the form UI. Status "idle" is the pre-submission default and is never
// produced by the pipeline itself.
type SubmissionResult struct {
	Status  SubmissionStatus `json:"status"`
	Message string           `json:"message"`
	// Success mirrors Status == "success", kept for backward-compatible consumers.
	Success bool        `json:"success"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// ContactUsecase defines the trust-boundary contact pipeline.
type ContactUsecase interface {
	// Validate runs the authoritative rule set and reports every failing
	// field. A nil/empty result means the submission is valid.
	Validate(sub *ContactSubmission) FieldErrors

	// Submit validates the submission and, when valid, dispatches the
	// side effects. The returned result is what the form UI renders.
	Submit(ctx context.Context, sub *ContactSubmission) SubmissionResult
}

// ContactMailer sends the two transactional emails for a submission.
// Any provider able to send one HTML email to one or more recipients fits.
type ContactMailer interface {
	// SendConfirmation emails the submitter an acknowledgement.
	SendConfirmation(ctx context.Context, sub *ContactSubmission) error
	// SendNotification emails the operator the full submission.
	SendNotification(ctx context.Context, sub *ContactSubmission) error
	// IsConfigured reports whether the provider credentials are present.
	IsConfigured() bool
}

// SheetLogger appends a submission row to the external spreadsheet webhook.
type SheetLogger interface {
	Append(ctx context.Context, sub *ContactSubmission) error
	IsConfigured() bool
}
