package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kanmwangi2/payroll-backend-go/internal/handler/http/middleware"
	"github.com/kanmwangi2/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	companyHandler CompanyHandler,
	staffHandler StaffHandler,
	payTypeHandler PaymentTypeHandler,
	deductionHandler DeductionHandler,
	taxHandler TaxHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Post("/", companyHandler.Create)

				r.Route("/my", func(r chi.Router) {
					r.Get("/", companyHandler.GetMine)
					r.Put("/", companyHandler.Update)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", staffHandler.Get)
					r.Put("/", staffHandler.Update)
					r.Delete("/", staffHandler.Delete)

					r.Route("/payments", func(r chi.Router) {
						r.Get("/", staffHandler.ListPayments)
						r.Put("/", staffHandler.UpsertPayment)
						r.Delete("/{paymentId}", staffHandler.RemovePayment)
					})

					r.Get("/deductions", deductionHandler.ListByStaff)
				})
			})

			r.Route("/payment-types", func(r chi.Router) {
				r.Get("/", payTypeHandler.List)
				r.Post("/", payTypeHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payTypeHandler.Get)
					r.Put("/", payTypeHandler.Update)
					r.Delete("/", payTypeHandler.Delete)
				})
			})

			r.Route("/deduction-types", func(r chi.Router) {
				r.Get("/", deductionHandler.ListTypes)
				r.Post("/", deductionHandler.CreateType)

				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", deductionHandler.UpdateType)
					r.Delete("/", deductionHandler.DeleteType)
				})
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Post("/", deductionHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deductionHandler.Get)
					r.Put("/", deductionHandler.Update)
					r.Delete("/", deductionHandler.Delete)
				})
			})

			r.Route("/tax-settings", func(r chi.Router) {
				r.Get("/", taxHandler.GetSettings)
				r.Put("/", taxHandler.UpdateSettings)
			})

			r.Route("/payroll-runs", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRuns)
				r.Post("/", payrollHandler.CreateRun)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetRun)
					r.Delete("/", payrollHandler.DeleteRun)
					r.Post("/process", payrollHandler.ProcessRun)
					r.Post("/submit", payrollHandler.SubmitForApproval)
					r.Post("/approve", payrollHandler.ApproveRun)
					r.Post("/reject", payrollHandler.RejectRun)
					r.Post("/reset", payrollHandler.ResetToDraft)
				})
			})
		})
	})
	return r
}
