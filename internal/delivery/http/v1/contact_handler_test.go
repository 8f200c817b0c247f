package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-acoustics-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubContactUC records the bound submission and returns a canned result.
type stubContactUC struct {
	got    *domain.ContactSubmission
	result domain.SubmissionResult
}

func (s *stubContactUC) Validate(*domain.ContactSubmission) domain.FieldErrors { return nil }

func (s *stubContactUC) Submit(_ context.Context, sub *domain.ContactSubmission) domain.SubmissionResult {
	s.got = sub
	return s.result
}

func noopLimiter(c *gin.Context) { c.Next() }

func newContactRouter(uc domain.ContactUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/v1")
	NewContactHandler(group, uc, noopLimiter)
	return r
}

func postForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactBindsFormFields(t *testing.T) {
	uc := &stubContactUC{result: domain.SubmissionResult{
		Status:  domain.StatusSuccess,
		Message: "Thank you for your message! We will get back to you shortly.",
		Success: true,
	}}
	r := newContactRouter(uc)

	w := postForm(r, url.Values{
		"name":           {"Jane Doe"},
		"company":        {"Acme Ltd"},
		"email":          {"jane@example.com"},
		"telephone":      {"+44 1234 567890"},
		"projectAddress": {"1 High Street"},
		"message":        {"Please call me about a survey"},
		"gdprConsent":    {"on"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "Jane Doe", uc.got.Name)
	assert.Equal(t, "Acme Ltd", uc.got.Company)
	assert.Equal(t, "1 High Street", uc.got.ProjectAddress)
	assert.Equal(t, "on", uc.got.GDPRConsent)

	var result domain.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.True(t, result.Success)
}

func TestSubmitContactValidationErrorStaysHTTP200(t *testing.T) {
	uc := &stubContactUC{result: domain.SubmissionResult{
		Status:  domain.StatusError,
		Message: "Error: Please check the form fields.",
		Success: false,
		Errors: domain.FieldErrors{
			"name": {"Name must be at least 2 characters."},
		},
	}}
	r := newContactRouter(uc)

	// The UI inspects status/errors in the body, not the HTTP status code
	w := postForm(r, url.Values{"name": {"J"}})
	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.StatusError, result.Status)
	assert.Equal(t, []string{"Name must be at least 2 characters."}, result.Errors["name"])
}
