package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"minutely/cmd/fx/account_fx"
	"minutely/cmd/fx/credit_fx"
	"minutely/cmd/fx/dashboard_fx"
	"minutely/cmd/fx/db_fx"
	"minutely/cmd/fx/mail_fx"
	"minutely/cmd/fx/meeting_fx"
	"minutely/cmd/fx/memcache_fx"
	"minutely/cmd/fx/payment_fx"
	"minutely/cmd/fx/team_fx"
	"minutely/cmd/fx/webhook_fx"
	"minutely/internal/api/controllers"
	"minutely/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		credit_fx.Module,
		payment_fx.Module,
		webhook_fx.Module,
		meeting_fx.Module,
		team_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	creditController *controllers.CreditController,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
	meetingController *controllers.MeetingController,
	taskController *controllers.TaskController,
	teamController *controllers.TeamController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController, creditController, paymentController, webhookController,
		meetingController, taskController, teamController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	creditController *controllers.CreditController,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
	meetingController *controllers.MeetingController,
	taskController *controllers.TaskController,
	teamController *controllers.TeamController,
	dashboardController *controllers.DashboardController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	r.POST("/trial", middleware.JWTAuthMiddleware(), creditController.CreateTrial)

	creditsGroup := r.Group("/credits", middleware.JWTAuthMiddleware())
	creditsGroup.GET("", creditController.GetBalance)
	creditsGroup.GET("/transactions", creditController.ListTransactions)
	creditsGroup.GET("/access", creditController.CheckAccess)

	// Checkout may start before the payer has an account; identity is
	// optional here and reconciled during verification.
	paymentsGroup := r.Group("/payments", middleware.OptionalAuthMiddleware())
	paymentsGroup.POST("/create-order", paymentController.CreateOrder)
	paymentsGroup.POST("/verify", paymentController.VerifyPayment)

	webhooksGroup := r.Group("/webhooks", middleware.WebhookAuthMiddleware(os.Getenv("WEBHOOK_SECRET")))
	webhooksGroup.POST("/meetings", webhookController.IngestMeeting)

	meetingsGroup := r.Group("/meetings", middleware.JWTAuthMiddleware())
	meetingsGroup.GET("", meetingController.ListMeetings)
	meetingsGroup.GET("/:id", meetingController.GetMeeting)
	meetingsGroup.GET("/:id/tasks", meetingController.ListMeetingTasks)

	r.PATCH("/tasks/:id/status", middleware.JWTAuthMiddleware(), taskController.UpdateStatus)

	teamGroup := r.Group("/team", middleware.JWTAuthMiddleware())
	teamGroup.GET("", teamController.ListMembers)
	teamGroup.POST("", teamController.CreateMember)
	teamGroup.PUT("/:id", teamController.UpdateMember)
	teamGroup.DELETE("/:id", teamController.DeleteMember)

	r.GET("/dashboard", middleware.JWTAuthMiddleware(), dashboardController.Summary)
}
