package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/punchly/punchly-backend-go/internal/handler/http/middleware"
	"github.com/punchly/punchly-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Company    CompanyHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Absence    AbsenceHandler
	Master     MasterHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "punchly"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Company.List)
					r.Post("/", h.Company.Create)
					r.Put("/{id}", h.Company.Update)
					r.Delete("/{id}", h.Company.Delete)
				})

				r.Get("/my", h.Company.GetMy)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.GetByID)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Route("/{employeeID}/attendance", func(r chi.Router) {
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
					r.Get("/", h.Attendance.GetLast30)
					r.Get("/period", h.Attendance.GetByPeriod)
				})

				r.Route("/{employeeID}/absences", func(r chi.Router) {
					r.Get("/", h.Absence.GetByEmployeeID)
					r.Get("/range", h.Absence.GetByRange)
				})
			})

			r.Route("/attendance-records", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", h.Attendance.CreateRecord)
				r.Patch("/{id}", h.Attendance.UpdateRecord)
				r.Delete("/{id}", h.Attendance.DeleteRecord)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", h.Absence.Create)
				r.Patch("/{id}", h.Absence.Update)
				r.Delete("/{id}", h.Absence.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/employee-types", func(r chi.Router) {
				r.Get("/", h.Master.ListEmployeeTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Master.CreateEmployeeType)
					r.Put("/{id}", h.Master.UpdateEmployeeType)
					r.Delete("/{id}", h.Master.DeleteEmployeeType)
				})
			})

			r.Route("/absence-types", func(r chi.Router) {
				r.Get("/", h.Master.ListAbsenceTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Master.CreateAbsenceType)
					r.Put("/{id}", h.Master.UpdateAbsenceType)
					r.Delete("/{id}", h.Master.DeleteAbsenceType)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/attendance", h.Report.GenerateAttendanceReport)
			})
		})
	})
	return r
}
