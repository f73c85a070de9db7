package credit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"minutely/internal/api/controllers"
	"minutely/internal/repositories"
	"minutely/internal/services"
)

var Module = fx.Provide(
	provideCreditRepo, provideCreditService, controllers.NewCreditController)

func provideCreditRepo(db *gorm.DB) repositories.CreditRepository {
	return repositories.NewCreditRepository(db)
}

func provideCreditService(
	creditRepo repositories.CreditRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
) services.CreditServiceInterface {
	return services.NewCreditService(creditRepo, accountRepo, mailService)
}
