package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"minutely/internal/api/controllers"
	"minutely/internal/repositories"
	"minutely/internal/services"
)

var Module = fx.Provide(
	provideRazorpayConfig, provideGateway, provideOrderRepo, providePaymentService,
	controllers.NewPaymentController,
)

func provideRazorpayConfig() services.RazorpayConfig {
	return services.RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}
}

func provideGateway(cfg services.RazorpayConfig) services.PaymentGateway {
	gateway, err := services.NewRazorpayGateway(cfg)
	if err != nil {
		log.Printf("Error initializing Razorpay gateway: %v", err)
	}
	return gateway
}

func provideOrderRepo(db *gorm.DB) repositories.PaymentOrderRepository {
	return repositories.NewPaymentOrderRepository(db)
}

func providePaymentService(
	gateway services.PaymentGateway,
	orderRepo repositories.PaymentOrderRepository,
	creditService services.CreditServiceInterface,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
	cfg services.RazorpayConfig,
) services.PaymentService {
	return services.NewPaymentService(gateway, orderRepo, creditService, accountRepo, mailService, cfg)
}
