package controllers

import (
	"context"
	"net/http"

	"github.com/rajuvisuals/payments-backend/api/responses"
	"github.com/rajuvisuals/payments-backend/api/validators"
	"github.com/rajuvisuals/payments-backend/internal/email"
	"github.com/rajuvisuals/payments-backend/pkg/logger"
)

type ContactMailer interface {
	SendContactEmails(ctx context.Context, form email.ContactForm) error
}

type contactRequest struct {
	FromName     string `json:"from_name" validate:"required,max=200"`
	FromEmail    string `json:"from_email" validate:"required,email"`
	Subject      string `json:"subject" validate:"required,max=300"`
	Message      string `json:"message" validate:"required,max=5000"`
	EmailEnabled *bool  `json:"email_enabled"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Skipped bool   `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

// Contact relays a contact form submission by email. Delivery is best
// effort: a failed send reports success=false in a 200 body so the frontend
// can still treat the submission as saved.
func Contact(mailer ContactMailer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req contactRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		enabled := req.EmailEnabled == nil || *req.EmailEnabled
		if !enabled || mailer == nil {
			responses.WriteJSON(w, http.StatusOK, contactResponse{
				Success: true,
				Message: "Email sending is disabled. Form data saved.",
				Skipped: true,
			})
			return
		}

		err := mailer.SendContactEmails(ctx, email.ContactForm{
			FromName:  req.FromName,
			FromEmail: req.FromEmail,
			Subject:   req.Subject,
			Message:   req.Message,
		})
		if err != nil {
			if logg != nil {
				logg.Error(ctx, "contact.email_failed", err)
			}
			responses.WriteJSON(w, http.StatusOK, contactResponse{
				Success: false,
				Message: "Failed to send emails",
				Error:   err.Error(),
			})
			return
		}

		responses.WriteJSON(w, http.StatusOK, contactResponse{
			Success: true,
			Message: "Emails sent successfully",
		})
	}
}
