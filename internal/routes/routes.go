package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/storage"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	slotCache *cache.SlotCache,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := storage.NewS3Uploader(cfg)

	// ======================================================
	// 🧠 USE CASES — AVAILABILITY & BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(appointmentRepo, slotCache)

	bookUC := ucBooking.NewBookAppointment(
		appointmentRepo,
		availabilityUC,
		slotCache,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		appointmentRepo,
		slotCache,
		auditDispatcher,
		cfg.Timezone,
	)

	getUC := ucBooking.NewGetAppointment(appointmentRepo)
	listUC := ucBooking.NewListAppointmentsByRange(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db, uploader, auditDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher)
	availabilityHandler := handlers.NewAvailabilityHandler(cfg, availabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(cfg, bookUC, cancelUC, getUC, listUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (cliente)
		// ------------------------------
		api.GET("/services", serviceHandler.ListPublic)

		api.GET("/availability", availabilityHandler.GetSlots)
		api.GET("/availability/check", availabilityHandler.CheckSlot)

		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (admin)
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.POST("/services/:id/image", serviceHandler.UploadImage)

			secured.GET("/working-hours", workingHoursHandler.Get)
			secured.PUT("/working-hours", workingHoursHandler.Update)

			secured.GET("/appointments", appointmentHandler.ListByRange)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
