package email

import (
	"context"

	"github.com/resend/resend-go/v2"

	"github.com/rajuvisuals/payments-backend/internal/purchases"
	"github.com/rajuvisuals/payments-backend/pkg/config"
	pkgerrors "github.com/rajuvisuals/payments-backend/pkg/errors"
	"github.com/rajuvisuals/payments-backend/pkg/logger"
)

// Sender is the slice of the Resend client the service uses.
type Sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ContactForm is a validated contact submission ready to be relayed.
type ContactForm struct {
	FromName  string
	FromEmail string
	Subject   string
	Message   string
}

type ServiceParams struct {
	Sender Sender
	Config config.ResendConfig
	Logger *logger.Logger
}

// Service relays transactional email through Resend. Callers treat delivery
// as best effort; a failed send never blocks the request that triggered it.
type Service struct {
	sender Sender
	cfg    config.ResendConfig
	logg   *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Sender == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "email sender required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &Service{
		sender: params.Sender,
		cfg:    params.Config,
		logg:   params.Logger,
	}, nil
}

// SendContactEmails sends the pair of messages for a contact submission: a
// confirmation to the visitor and a notification to the site owner. The
// first failure stops the pair.
func (s *Service) SendContactEmails(ctx context.Context, form ContactForm) error {
	_, err := s.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.cfg.FromAddress,
		To:      []string{form.FromEmail},
		Subject: "Thanks for reaching out! 🎬",
		Html:    userConfirmationHTML(form.FromName),
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send confirmation email")
	}

	_, err = s.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.cfg.FromAddress,
		To:      []string{s.cfg.ContactRecipient},
		ReplyTo: form.FromEmail,
		Subject: "New Contact: " + form.Subject,
		Html:    adminNotificationHTML(form),
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send admin notification")
	}

	s.logg.Info(s.logg.WithField(ctx, "to", form.FromEmail), "contact emails sent")
	return nil
}

// SendPurchaseReceipt mails the buyer their receipt and download link.
// Skipped silently when the payment carried no buyer email.
func (s *Service) SendPurchaseReceipt(ctx context.Context, record *purchases.PurchaseRecord) error {
	if record == nil || record.BuyerEmail == "" {
		return nil
	}
	_, err := s.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.cfg.FromAddress,
		To:      []string{record.BuyerEmail},
		Subject: "Your purchase receipt " + record.ReceiptID,
		Html:    purchaseReceiptHTML(record),
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send purchase receipt")
	}
	s.logg.Info(s.logg.WithReceiptID(ctx, record.ReceiptID), "purchase receipt sent")
	return nil
}
