package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"brewlocal/pkg/models"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/rs/zerolog/log"
)

// EmailService handles transactional email. AWS SES is preferred when
// configured; plain SMTP is the fallback for local development.
type EmailService struct {
	// SMTP configuration
	smtpHost     string
	smtpPort     string
	smtpUser     string
	smtpPassword string
	fromEmail    string

	// AWS SES configuration
	sesClient *ses.SES
	useSES    bool
}

// NewEmailService creates a new email service
func NewEmailService() (*EmailService, error) {
	emailService := &EmailService{}

	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	sesFromEmail := os.Getenv("SES_FROM_EMAIL")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" && sesFromEmail != "" {
		sess, err := session.NewSession(&aws.Config{
			Region:      aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(awsAccessKey, awsSecretKey, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}

		emailService.sesClient = ses.New(sess)
		emailService.fromEmail = sesFromEmail
		emailService.useSES = true
		return emailService, nil
	}

	emailService.smtpHost = os.Getenv("SMTP_HOST")
	emailService.smtpPort = os.Getenv("SMTP_PORT")
	emailService.smtpUser = os.Getenv("SMTP_USER")
	emailService.smtpPassword = os.Getenv("SMTP_PASSWORD")
	emailService.fromEmail = os.Getenv("SMTP_FROM_EMAIL")

	if emailService.smtpHost == "" || emailService.fromEmail == "" {
		return nil, fmt.Errorf("email configuration missing")
	}

	return emailService, nil
}

var resetEmailTemplate = template.Must(template.New("reset").Parse(`
<html>
<body style="font-family: sans-serif; color: #333;">
	<h2>Redefinição de senha</h2>
	<p>Olá{{if .Name}}, {{.Name}}{{end}}!</p>
	<p>Recebemos um pedido para redefinir a senha da sua conta. Clique no link abaixo para escolher uma nova senha:</p>
	<p><a href="{{.ResetURL}}">{{.ResetURL}}</a></p>
	<p>O link expira em 1 hora. Se você não pediu a redefinição, ignore este email.</p>
</body>
</html>
`))

// SendPasswordResetEmail sends the reset link for a pending token
func (s *EmailService) SendPasswordResetEmail(resetToken *models.PasswordResetToken) error {
	if resetToken.User == nil {
		return fmt.Errorf("reset token has no user loaded")
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5173"
	}

	var body bytes.Buffer
	err := resetEmailTemplate.Execute(&body, map[string]string{
		"Name":     resetToken.User.Name,
		"ResetURL": fmt.Sprintf("%s/reset-password?token=%s", baseURL, resetToken.Token),
	})
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}

	subject := "brewlocal - redefinição de senha"
	to := resetToken.User.Email

	if s.useSES {
		return s.sendWithSES(to, subject, body.String())
	}
	return s.sendWithSMTP(to, subject, body.String())
}

func (s *EmailService) sendWithSES(to, subject, htmlBody string) error {
	_, err := s.sesClient.SendEmail(&ses.SendEmailInput{
		Source: aws.String(s.fromEmail),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(to)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &ses.Body{
				Html: &ses.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	log.Info().Str("to", to).Msg("Password reset email sent via SES")
	return nil
}

func (s *EmailService) sendWithSMTP(to, subject, htmlBody string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.fromEmail, to, subject, htmlBody)

	addr := s.smtpHost + ":" + s.smtpPort
	var auth smtp.Auth
	if s.smtpUser != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPassword, s.smtpHost)
	}

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	log.Info().Str("to", to).Msg("Password reset email sent via SMTP")
	return nil
}
