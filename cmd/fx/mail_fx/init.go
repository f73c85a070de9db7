package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"minutely/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		AppName:  "Minutely",
	})
}
