package app

import (
	"context"

	"go-timeclock/internal/audit"
	"go-timeclock/internal/auth"
	"go-timeclock/internal/clock"
	"go-timeclock/internal/employee"
	"go-timeclock/internal/export"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/middleware"
	"go-timeclock/internal/rbac"
	"go-timeclock/internal/rbac/infra"
	"go-timeclock/internal/report"
	"go-timeclock/internal/schedule"
	"go-timeclock/internal/setting"
	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"
	"go-timeclock/internal/timeentry"
	"go-timeclock/internal/timesheet"
	"go-timeclock/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	userRepo := user.NewRepository(db)
	entryRepo := timeentry.NewRepository(db)
	auditRepo := audit.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db)
	settingRepo := setting.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Snapshot exporter (background worker lives with the API process) ---
	exporter := export.NewSQLExporter(db)
	go exporter.Run(ctx)

	// --- Services ---
	session := auth.NewJWTSession()
	authService := auth.NewService(userRepo, session)
	clockService := clock.NewService(db, userRepo, entryRepo, outboxRepo, exporter)
	timesheetService := timesheet.NewService(db, entryRepo, auditRepo, outboxRepo, exporter)
	employeeService := employee.NewService(db, userRepo, entryRepo, auditRepo, scheduleRepo, exporter)
	scheduleService := schedule.NewService(db, userRepo, scheduleRepo, exporter)
	settingService := setting.NewService(settingRepo, rdb)
	reportService := report.NewService(userRepo, entryRepo, scheduleRepo, settingService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	clockHandler := clock.NewHandler(clockService)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	employeeHandler := employee.NewHandler(employeeService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	settingHandler := setting.NewHandler(settingService)
	reportHandler := report.NewHandler(reportService)
	exportHandler := export.NewHandler(exporter)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.NoRoute(func(c *gin.Context) {
		e := apperror.ErrNotFound
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
	})

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, middleware.AdminAuth(session, userRepo), middleware.ContextLogger(logger), middleware.RateLimitByIP(1, 3))
		clock.RegisterRoutes(api, clockHandler, logger)
		timesheet.RegisterRoutes(api, timesheetHandler, session, userRepo, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, session, userRepo, rbacService, logger)
		schedule.RegisterRoutes(api, scheduleHandler, session, userRepo, rbacService, logger)
		setting.RegisterRoutes(api, settingHandler, session, userRepo, rbacService, logger)
		report.RegisterRoutes(api, reportHandler, session, userRepo, rbacService, logger)
		export.RegisterRoutes(api, exportHandler, session, userRepo, rbacService, logger)
	}

	return nil
}
