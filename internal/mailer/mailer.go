package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/agriconnect/marketplace-api/internal/config"
	"github.com/agriconnect/marketplace-api/internal/models"
)

// Sender delivers the admin alert for a contact inquiry.
type Sender interface {
	SendContactAlert(msg *models.ContactMessage) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	admin  string
}

func NewSMTP(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPUser,
		admin:  cfg.AdminEmail,
	}
}

func (m *SMTPMailer) SendContactAlert(msg *models.ContactMessage) error {
	mail := gomail.NewMessage()
	mail.SetAddressHeader("From", m.from, "AgriConnect Contact")
	mail.SetHeader("To", m.admin)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", fmt.Sprintf("[New Inquiry] %s", msg.Subject))

	mail.SetBody("text/plain", fmt.Sprintf(
		"New Contact Form Submission:\nName: %s\nEmail: %s\nSubject: %s\nMessage:\n%s",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	))
	mail.AddAlternative("text/html", fmt.Sprintf(`
		<p>You have received a new contact form submission:</p>
		<h3>Sender Details:</h3>
		<ul>
			<li><strong>Name:</strong> %s</li>
			<li><strong>Email:</strong> %s</li>
			<li><strong>Subject:</strong> %s</li>
		</ul>
		<h3>Message:</h3>
		<p>%s</p>`,
		msg.Name, msg.Email, msg.Subject,
		strings.ReplaceAll(msg.Message, "\n", "<br>"),
	))

	return m.dialer.DialAndSend(mail)
}
