package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

// Mailer sends templated mail over plain SMTP. Delivery is best-effort;
// callers decide whether a send failure is fatal.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send renders the named template and mails it to the recipient. Templates
// define "subject" and "htmlBody" blocks; data is available to both.
func (m *Mailer) Send(to string, data map[string]interface{}, templateName string) error {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateName)
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	subject := new(bytes.Buffer)
	if err = tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return errors.Wrap(err, "failed to render email subject")
	}

	htmlBody := new(bytes.Buffer)
	if err = tmpl.ExecuteTemplate(htmlBody, "htmlBody", data); err != nil {
		return errors.Wrap(err, "failed to render email body")
	}

	msg := new(bytes.Buffer)
	fmt.Fprintf(msg, "From: %s\r\n", m.from)
	fmt.Fprintf(msg, "To: %s\r\n", to)
	fmt.Fprintf(msg, "Subject: %s\r\n", subject.String())
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(htmlBody.Bytes())

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err = smtp.SendMail(addr, auth, m.from, []string{to}, msg.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", to)
	}

	return nil
}
