package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/hcm-systems/hcm-api/docs"
	"github.com/hcm-systems/hcm-api/internal/api/handler"
	"github.com/hcm-systems/hcm-api/internal/api/middleware"
	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/service"
	"github.com/hcm-systems/hcm-api/internal/infrastructure/config"
	"github.com/hcm-systems/hcm-api/internal/infrastructure/db/postgres"
	redisdb "github.com/hcm-systems/hcm-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hcm"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	reportCache := redisdb.NewReportCache(rdb)

	authService := service.NewAuthService(userRepo, employeeRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	departmentService := service.NewDepartmentService(departmentRepo, log)
	reportService := service.NewReportService(reportRepo, reportCache, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	reportHandler := handler.NewReportHandler(reportService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	managerOnly := middleware.RequireRole(domain.RoleManager)
	hrAdminOnly := middleware.RequireRole(domain.RoleHrAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.POST("/validate-token", authHandler.ValidateToken, authRequired)

	// --- Employee routes ---
	employees := e.Group("/api/employees", authRequired)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.GET("/department/:departmentId", employeeHandler.ListByDepartment, managerOnly)
	employees.GET("/:id/salary-history", employeeHandler.SalaryHistory, managerOnly)
	employees.POST("", employeeHandler.Create, managerOnly)
	employees.PUT("/:id", employeeHandler.Update, managerOnly)
	employees.DELETE("/:id", employeeHandler.Delete, hrAdminOnly)

	// --- Department routes ---
	departments := e.Group("/api/departments", authRequired)
	departments.GET("", departmentHandler.List)
	departments.GET("/:id", departmentHandler.Get)
	departments.POST("", departmentHandler.Create, hrAdminOnly)
	departments.PUT("/:id", departmentHandler.Update, hrAdminOnly)
	departments.DELETE("/:id", departmentHandler.Delete, hrAdminOnly)

	// --- Report routes ---
	reports := e.Group("/api/reports", authRequired)
	reports.GET("/summary", reportHandler.Summary, managerOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
