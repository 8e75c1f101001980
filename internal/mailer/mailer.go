package mailer

import "embed"

const (
	FromName        = "Base Station"
	maxRetries      = 3
	ReceiptTemplate = "receipt.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
