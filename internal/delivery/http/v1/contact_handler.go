package v1

import (
	"net/http"

	"go-acoustics-backend/internal/domain"
	"go-acoustics-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact form submission and dispatches the confirmation email, operator notification and spreadsheet log. This is a public endpoint. The response always carries a SubmissionResult; clients inspect its status and errors fields rather than the HTTP status code.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name            formData  string  true   "Submitter name"
// @Param        company         formData  string  false  "Company"
// @Param        email           formData  string  true   "Email address"
// @Param        telephone       formData  string  false  "Telephone"
// @Param        projectAddress  formData  string  false  "Project address"
// @Param        message         formData  string  true   "Message"
// @Param        gdprConsent     formData  string  true   "Privacy consent checkbox value (literal 'on')"
// @Success      200  {object}  domain.SubmissionResult
// @Failure      400  {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBind(&sub); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Validation failures are part of the result contract, not HTTP errors:
	// the form UI reads status/errors from the body.
	result := h.contactUC.Submit(c.Request.Context(), &sub)
	c.JSON(http.StatusOK, result)
}
