package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/bravoapp/volunteering-backend-go/internal/config"
	"github.com/bravoapp/volunteering-backend-go/internal/handler/http/middleware"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	analyticsHandler AnalyticsHandler,
	experienceHandler ExperienceHandler,
	bookingHandler BookingHandler,
	feedbackHandler FeedbackHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bravo-volunteering"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Everything requires a verified bearer token
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/experiences", experienceHandler.Browse)

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", bookingHandler.Create)
				r.Get("/my", bookingHandler.ListMine)
				r.Post("/{bookingID}/cancel", bookingHandler.Cancel)
				r.Post("/{bookingID}/review", feedbackHandler.CreateReview)
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/categories", masterHandler.ListCategories)
				r.Get("/cities", masterHandler.ListCities)
			})

			// HR admin only
			r.Route("/hr", func(r chi.Router) {
				r.Use(middleware.RequireHRAdmin)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", analyticsHandler.ListEmployees)
					r.Get("/overview", analyticsHandler.Overview)
					r.Get("/export", analyticsHandler.ExportCSV)
					r.Get("/{employeeID}/participations", analyticsHandler.EmployeeParticipations)
				})

				r.Get("/experiences", analyticsHandler.ListExperiences)
			})

			// Super admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Post("/jobs/feedback-request", feedbackHandler.RunFeedbackJob)
			})
		})
	})
	return r
}
