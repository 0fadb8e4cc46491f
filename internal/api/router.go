package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/pnvi/immunization-api/internal/api/handler"
	"github.com/pnvi/immunization-api/internal/api/middleware"
	"github.com/pnvi/immunization-api/internal/core/domain"
	"github.com/pnvi/immunization-api/internal/core/ports"
	"github.com/pnvi/immunization-api/internal/core/service"
	"github.com/pnvi/immunization-api/internal/infrastructure/db/mysql"
	redisdb "github.com/pnvi/immunization-api/internal/infrastructure/db/redis"
	"github.com/pnvi/immunization-api/internal/infrastructure/security"
)

// Role allow-lists. One canonical policy per route family, applied at
// registration time and nowhere else.
var (
	readAny  = []domain.Role{domain.RoleAdministrator, domain.RoleDirector, domain.RoleDoctor, domain.RoleUser}
	clinical = []domain.Role{domain.RoleAdministrator, domain.RoleDirector, domain.RoleDoctor}
	managers = []domain.Role{domain.RoleAdministrator, domain.RoleDirector}
	admin    = []domain.Role{domain.RoleAdministrator}
)

// Deps carries everything the router needs to assemble the API.
// Redis may be nil: token revocation is then disabled.
type Deps struct {
	DB     *sql.DB
	Redis  *redis.Client
	Tokens ports.TokenService
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("immunization"))

	// --- Infrastructure ---
	store := mysql.NewStore(deps.DB)
	hasher := security.NewBcryptHasher()
	var denylist ports.TokenDenylist
	if deps.Redis != nil {
		denylist = redisdb.NewDenylist(deps.Redis)
	}

	// --- Repositories ---
	authRepo := mysql.NewAuthRepository(store)
	userRepo := mysql.NewUserRepository(store)
	countryRepo := mysql.NewCountryRepository(store)
	centerRepo := mysql.NewCenterRepository(store)
	vaccineRepo := mysql.NewVaccineRepository(store)
	lotRepo := mysql.NewLotRepository(store)
	schemeRepo := mysql.NewSchemeRepository(store)
	tutorRepo := mysql.NewTutorRepository(store)
	childRepo := mysql.NewChildRepository(store)
	vaccinationRepo := mysql.NewVaccinationRepository(store)
	appointmentRepo := mysql.NewAppointmentRepository(store)
	reportRepo := mysql.NewReportRepository(store)

	// --- Services ---
	authService := service.NewAuthService(authRepo, hasher, deps.Tokens, denylist, deps.Log)
	userService := service.NewUserService(userRepo, hasher, deps.Log)
	countryService := service.NewCountryService(countryRepo)
	centerService := service.NewCenterService(centerRepo)
	vaccineService := service.NewVaccineService(vaccineRepo)
	lotService := service.NewLotService(lotRepo)
	schemeService := service.NewSchemeService(schemeRepo)
	tutorService := service.NewTutorService(tutorRepo)
	childService := service.NewChildService(childRepo, deps.Log)
	vaccinationService := service.NewVaccinationService(vaccinationRepo, deps.Log)
	appointmentService := service.NewAppointmentService(appointmentRepo, deps.Log)
	reportService := service.NewReportService(reportRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	countryHandler := handler.NewCountryHandler(countryService)
	centerHandler := handler.NewCenterHandler(centerService)
	vaccineHandler := handler.NewVaccineHandler(vaccineService)
	lotHandler := handler.NewLotHandler(lotService)
	schemeHandler := handler.NewSchemeHandler(schemeService)
	tutorHandler := handler.NewTutorHandler(tutorService)
	childHandler := handler.NewChildHandler(childService)
	vaccinationHandler := handler.NewVaccinationHandler(vaccinationService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	reportHandler := handler.NewReportHandler(reportService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	auth := middleware.Auth(deps.Tokens, denylist, deps.Log)
	requires := func(roles []domain.Role) echo.MiddlewareFunc {
		return middleware.RequireRoles(roles...)
	}

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// Login stays public but rate-limited per client IP.
	v1.POST("/login", authHandler.Login,
		echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(5)))

	// Everything below requires a verified bearer token.
	p := v1.Group("", auth)

	p.POST("/logout", authHandler.Logout)

	// Users (admin only).
	p.POST("/users", userHandler.Create, requires(admin))
	p.GET("/users", userHandler.List, requires(admin))
	p.GET("/users/:id", userHandler.Get, requires(admin))
	p.PUT("/users/:id/status", userHandler.SetStatus, requires(admin))
	p.PUT("/users/:id/password", userHandler.ResetPassword, requires(admin))

	// Countries.
	p.GET("/countries", countryHandler.List, requires(readAny))
	p.GET("/countries/:id", countryHandler.Get, requires(readAny))
	p.POST("/countries", countryHandler.Create, requires(admin))
	p.PUT("/countries/:id", countryHandler.Update, requires(admin))
	p.DELETE("/countries/:id", countryHandler.Delete, requires(admin))

	// Health centers.
	p.GET("/centers", centerHandler.List, requires(readAny))
	p.GET("/centers/:id", centerHandler.Get, requires(readAny))
	p.POST("/centers", centerHandler.Create, requires(managers))
	p.PUT("/centers/:id", centerHandler.Update, requires(managers))
	p.DELETE("/centers/:id", centerHandler.Delete, requires(managers))

	// Vaccines and lots.
	p.GET("/vaccines", vaccineHandler.List, requires(readAny))
	p.GET("/vaccines/:id", vaccineHandler.Get, requires(readAny))
	p.POST("/vaccines", vaccineHandler.Create, requires(managers))
	p.PUT("/vaccines/:id", vaccineHandler.Update, requires(managers))
	p.DELETE("/vaccines/:id", vaccineHandler.Delete, requires(managers))
	p.GET("/vaccines/:id/lots", lotHandler.ListByVaccine, requires(readAny))
	p.GET("/lots/:id", lotHandler.Get, requires(readAny))
	p.POST("/lots", lotHandler.Create, requires(managers))
	p.PUT("/lots/:id", lotHandler.Update, requires(managers))
	p.DELETE("/lots/:id", lotHandler.Delete, requires(managers))

	// Vaccination calendars.
	p.GET("/schemes", schemeHandler.List, requires(readAny))
	p.GET("/schemes/:id", schemeHandler.Get, requires(readAny))
	p.POST("/schemes", schemeHandler.Create, requires(managers))
	p.PUT("/schemes/:id", schemeHandler.Update, requires(managers))
	p.DELETE("/schemes/:id", schemeHandler.Delete, requires(managers))

	// Tutors.
	p.GET("/tutors", tutorHandler.List, requires(readAny))
	p.GET("/tutors/:id", tutorHandler.Get, requires(readAny))
	p.GET("/tutors/:id/children", childHandler.ListByTutor, requires(readAny))
	p.POST("/tutors", tutorHandler.Create, requires(clinical))
	p.PUT("/tutors/:id", tutorHandler.Update, requires(clinical))
	p.DELETE("/tutors/:id", tutorHandler.Delete, requires(admin))

	// Children.
	p.GET("/children", childHandler.List, requires(readAny))
	p.GET("/children/:id", childHandler.Get, requires(readAny))
	p.POST("/children", childHandler.Create, requires(clinical))
	p.PUT("/children/:id", childHandler.Update, requires(clinical))
	p.DELETE("/children/:id", childHandler.Delete, requires(admin))
	p.POST("/children/:id/tutors", childHandler.LinkTutor, requires(clinical))

	// Vaccinations.
	p.POST("/vaccinations", vaccinationHandler.Record, requires(clinical))
	p.GET("/vaccinations/:id", vaccinationHandler.Get, requires(readAny))
	p.GET("/children/:id/vaccinations", vaccinationHandler.HistoryByChild, requires(readAny))
	p.DELETE("/vaccinations/:id", vaccinationHandler.Void, requires(admin))

	// Appointments.
	p.POST("/appointments", appointmentHandler.Book, requires(readAny))
	p.GET("/appointments/:id", appointmentHandler.Get, requires(readAny))
	p.GET("/children/:id/appointments", appointmentHandler.ListByChild, requires(readAny))
	p.GET("/centers/:id/appointments", appointmentHandler.CenterAgenda, requires(clinical))
	p.PUT("/appointments/:id/status", appointmentHandler.SetStatus, requires(clinical))
	p.DELETE("/appointments/:id", appointmentHandler.Cancel, requires(readAny))

	// Reports.
	p.GET("/reports/coverage", reportHandler.Coverage, requires(managers))

	return e
}
