package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bravoapp/volunteering-backend-go/internal/config"
	appHTTP "github.com/bravoapp/volunteering-backend-go/internal/handler/http"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/cron"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/email"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/jwt"
	"github.com/bravoapp/volunteering-backend-go/internal/repository/postgresql"
	analyticsService "github.com/bravoapp/volunteering-backend-go/internal/service/analytics"
	bookingService "github.com/bravoapp/volunteering-backend-go/internal/service/booking"
	experienceService "github.com/bravoapp/volunteering-backend-go/internal/service/experience"
	feedbackService "github.com/bravoapp/volunteering-backend-go/internal/service/feedback"
	masterService "github.com/bravoapp/volunteering-backend-go/internal/service/master"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	experienceRepo := postgresql.NewExperienceRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	emailLogRepo := postgresql.NewEmailLogRepository(db)
	candidateRepo := postgresql.NewFeedbackCandidateRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	cityRepo := postgresql.NewCityRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	analyticsSvc := analyticsService.NewAnalyticsService(employeeRepo, analyticsRepo, experienceRepo)
	experienceSvc := experienceService.NewExperienceService(experienceRepo)
	bookingSvc := bookingService.NewBookingService(bookingRepo, experienceRepo, txManager)
	feedbackSvc := feedbackService.NewFeedbackService(
		reviewRepo,
		emailLogRepo,
		candidateRepo,
		bookingRepo,
		experienceRepo,
		emailService,
		cfg.Feedback,
	)
	categorySvc := masterService.NewCategoryService(categoryRepo)
	citySvc := masterService.NewCityService(cityRepo)

	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)
	experienceHandler := appHTTP.NewExperienceHandler(experienceSvc)
	bookingHandler := appHTTP.NewBookingHandler(bookingSvc)
	feedbackHandler := appHTTP.NewFeedbackHandler(feedbackSvc)
	masterHandler := appHTTP.NewMasterHandler(categorySvc, citySvc)

	scheduler := cron.NewScheduler()
	cron.NewFeedbackJobs(feedbackSvc).RegisterJobs(scheduler, cfg.Feedback.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		analyticsHandler,
		experienceHandler,
		bookingHandler,
		feedbackHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
