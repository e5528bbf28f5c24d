package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/freshlane/carwash-scheduler/internal/audit"
	"github.com/freshlane/carwash-scheduler/internal/catalog"
	"github.com/freshlane/carwash-scheduler/internal/config"
	domainBooking "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	"github.com/freshlane/carwash-scheduler/internal/handlers"
	infraRepo "github.com/freshlane/carwash-scheduler/internal/infra/repository"
	"github.com/freshlane/carwash-scheduler/internal/middleware"
	ucBooking "github.com/freshlane/carwash-scheduler/internal/usecase/booking"
	ucNotification "github.com/freshlane/carwash-scheduler/internal/usecase/notification"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)
	serviceCatalog := catalog.New(db, rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		serviceCatalog,
		notificationRepo,
		auditDispatcher,
		ucBooking.CreatePolicy{
			DefaultStatus:  domainBooking.Status(cfg.DefaultBookingStatus),
			NotifyOnCreate: cfg.NotifyOnCreate,
			Timezone:       cfg.Timezone,
		},
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		notificationRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(updateBookingUC)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo, serviceCatalog)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// USE CASES — NOTIFICATIONS
	// ======================================================
	createNotificationUC := ucNotification.NewCreateNotification(notificationRepo)
	listNotificationsUC := ucNotification.NewListNotifications(notificationRepo, bookingRepo)
	markReadUC := ucNotification.NewMarkRead(notificationRepo)
	markAllReadUC := ucNotification.NewMarkAllRead(notificationRepo)
	deleteNotificationUC := ucNotification.NewDeleteNotification(notificationRepo)
	deleteAllNotificationsUC := ucNotification.NewDeleteAllNotifications(notificationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(serviceCatalog)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		listBookingsUC,
		deleteBookingUC,
	)

	notificationHandler := handlers.NewNotificationHandler(
		createNotificationUC,
		listNotificationsUC,
		markReadUC,
		markAllReadUC,
		deleteNotificationUC,
		deleteAllNotificationsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services", serviceHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.PATCH("/me/bookings/:id", bookingHandler.Update)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.List)
			secured.POST("/me/notifications", notificationHandler.Create)
			secured.PATCH("/me/notifications/read-all", notificationHandler.MarkAllRead)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)
			secured.DELETE("/me/notifications/:id", notificationHandler.Delete)
			secured.DELETE("/me/notifications", notificationHandler.DeleteAll)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
