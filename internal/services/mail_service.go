// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"time"
)

type IMailService interface {
	SendNotification(to, subject, body string) error
}

type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS)
	Username string
	Password string
	From     string // e.g. "no-reply@minutely.app"
	AppName  string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

const notificationHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="margin:0;padding:24px;background:#f8fafc;color:#0f172a;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px;">
    <h2 style="margin-top:0;color:#1e40af;">{{.AppName}}</h2>
    <h1 style="font-size:22px;">{{.Title}}</h1>
    <p style="color:#475569;line-height:1.6;">{{.Body}}</p>
    <p style="color:#64748b;font-size:13px;margin-top:32px;">© {{.Year}} {{.AppName}}. All rights reserved.</p>
  </div>
</body>
</html>`

const notificationTextTemplate = `{{.Title}}

{{.Body}}

— {{.AppName}} (c) {{.Year}}
`

type notificationData struct {
	Title   string
	Body    string
	AppName string
	Year    int
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	if cfg.Host == "" || cfg.From == "" {
		log.Println("SMTP not configured, mail notifications disabled")
		return &noopMailService{}
	}
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("notifyHTML").Parse(notificationHTMLTemplate)),
		textTpl: template.Must(template.New("notifyText").Parse(notificationTextTemplate)),
	}
}

func (s *smtpMailService) SendNotification(to, subject, body string) error {
	data := notificationData{
		Title:   subject,
		Body:    body,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.AppName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

// noopMailService keeps callers simple when SMTP is not configured.
type noopMailService struct{}

func (n *noopMailService) SendNotification(string, string, string) error { return nil }
