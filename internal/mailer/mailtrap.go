package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"text/template"
	"time"

	mail "gopkg.in/mail.v2"
)

type mailtrapClient struct {
	fromEmail string
	apiKey    string
}

func NewMailTrapClient(apiKey, fromEmail string) (Client, error) {
	if apiKey == "" {
		return nil, errors.New("mailtrap api key is required")
	}

	return &mailtrapClient{
		fromEmail: fromEmail,
		apiKey:    apiKey,
	}, nil
}

func (m *mailtrapClient) Send(templateFile, username, email string, data any) (int, error) {
	// Template parsing and building
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return -1, err
	}

	message := mail.NewMessage()
	message.SetHeader("From", fmt.Sprintf("%s <%s>", FromName, m.fromEmail))
	message.SetHeader("To", email)
	message.SetHeader("Subject", subject.String())
	message.AddAlternative("text/html", body.String())

	dialer := mail.NewDialer("live.smtp.mailtrap.io", 587, "api", m.apiKey)

	var retryErr error
	for i := 0; i < maxRetries; i++ {
		retryErr = dialer.DialAndSend(message)
		if retryErr == nil {
			return http.StatusOK, nil
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return -1, fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, retryErr)
}
