package contact

import (
	"context"
	"log"

	"github.com/agriconnect/marketplace-api/internal/mailer"
	"github.com/agriconnect/marketplace-api/internal/models"
)

const (
	StatusSuccess     = "success"
	StatusWithWarning = "success_with_warning"
)

type MessageStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

// ======================================================
// INPUT / RESULT
// ======================================================

type SubmitInquiryInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SubmitInquiryResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ======================================================
// USE CASE
// ======================================================

type SubmitInquiry struct {
	store MessageStore
	mail  mailer.Sender
}

func NewSubmitInquiry(store MessageStore, mail mailer.Sender) *SubmitInquiry {
	return &SubmitInquiry{
		store: store,
		mail:  mail,
	}
}

// Execute persists the inquiry before any delivery attempt: a lost alert email
// must never lose the message itself.
func (uc *SubmitInquiry) Execute(
	ctx context.Context,
	in SubmitInquiryInput,
) (*SubmitInquiryResult, error) {

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}

	if err := uc.store.Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := uc.mail.SendContactAlert(msg); err != nil {
		log.Println("contact alert email failed, message was saved:", err)
		return &SubmitInquiryResult{
			Status:  StatusWithWarning,
			Message: "Message was saved to our records, but the email alert failed. We will contact you soon.",
		}, nil
	}

	return &SubmitInquiryResult{
		Status:  StatusSuccess,
		Message: "Message successfully sent and saved!",
	}, nil
}
