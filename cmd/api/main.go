package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"joyit/internal/config"
	"joyit/internal/database"
	"joyit/internal/middleware"
	"joyit/internal/modules/auth"
	"joyit/internal/modules/catalog"
	"joyit/internal/modules/company"
	"joyit/internal/modules/credit"
	"joyit/internal/modules/notify"
	"joyit/internal/modules/payment"
	"joyit/internal/modules/pricing"
	"joyit/internal/modules/schedule"
	"joyit/internal/modules/serviceorder"
	"joyit/internal/modules/subscription"
	"joyit/internal/modules/support"
	"joyit/internal/pkg/jwt"
	"joyit/internal/repository"

	"joyit/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	planRepo := repository.NewPlanRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	orderRepo := repository.NewServiceOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	supportRepo := repository.NewSupportRepository(db)

	tokens := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := notify.NewHub()
	broadcaster := notify.NewBroadcaster(hub)
	wsHandler := notify.NewWSHandler(hub, tokens, cfg.WSAllowedOrigins)

	authService := auth.NewService(db, userRepo, tokens)
	authHandler := auth.NewHandler(authService)

	companyService := company.NewService(companyRepo)
	companyHandler := company.NewHandler(companyService)

	catalogService := catalog.NewService(activityRepo, planRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	pricingService := pricing.NewService(db)
	pricingHandler := pricing.NewHandler(pricingService)

	subscriptionService := subscription.NewService(subscriptionRepo, planRepo)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	creditService := credit.NewService(db)

	orderService := serviceorder.NewService(orderRepo, pricingService)

	paymentService := payment.NewService(paymentRepo, orderService, creditService, cfg.Gateway, log.Printf)
	paymentHandler := payment.NewHandler(paymentService)

	creditHandler := credit.NewHandler(creditService, paymentService)
	orderHandler := serviceorder.NewHandler(orderService, paymentService)

	scheduleService := schedule.NewService(db, repository.NewScheduleRepository(db), broadcaster)
	scheduleHandler := schedule.NewHandler(scheduleService)

	supportService := support.NewService(supportRepo, nil)
	supportHandler := support.NewHandler(supportService)

	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/ws/notifications", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		pricingHandler.RegisterRoutes(v1)
		paymentHandler.RegisterRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.Auth(tokens))
		{
			authHandler.RegisterRoutes(protected)
			companyHandler.RegisterRoutes(protected)
			subscriptionHandler.RegisterRoutes(protected)
			creditHandler.RegisterRoutes(protected)
			orderHandler.RegisterRoutes(protected)
			scheduleHandler.RegisterRoutes(protected)
			supportHandler.RegisterRoutes(protected)
		}

		// platform admin
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(tokens), middleware.RequireRole(string(domain.RoleAdmin)))
		{
			catalogHandler.RegisterAdminRoutes(admin)
			pricingHandler.RegisterAdminRoutes(admin)
			creditHandler.RegisterAdminRoutes(admin)
			companyHandler.RegisterAdminRoutes(admin)
			scheduleHandler.RegisterAdminRoutes(admin)
			supportHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
