package bootstrap

import (
	"context"
	"log"
	"time"

	"escapedesk-be/internal/config"
	"escapedesk-be/internal/controller"
	"escapedesk-be/internal/handler"
	"escapedesk-be/internal/pkg/logger"
	"escapedesk-be/internal/pkg/mailer"
	"escapedesk-be/internal/repository/implementation"
	"escapedesk-be/internal/repository/memory"
	"escapedesk-be/internal/repository/redisstore"
	"escapedesk-be/internal/repository/unitofwork"
	"escapedesk-be/internal/service"
	"escapedesk-be/internal/websocket"

	pktNats "escapedesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const emailJobsTopic = "email-jobs"

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	BookingController controller.IBookingController
	CatalogController controller.ICatalogController
	CreditController  controller.ICreditController
	PaymentController controller.IPaymentController
	WaiverController  controller.IWaiverController
	PortalController  controller.IPortalController
	MediaController   controller.IMediaController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Redis-backed stores
	portalSessions := redisstore.NewPortalSessionStore(rdb)
	creditOrders := redisstore.NewCreditOrderStore(rdb)

	// In-memory availability cache
	availabilityCache := memory.NewAvailabilityCache()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, emailJobsTopic)
	consumerService := service.NewConsumerService(pubSub, emailJobsTopic, emailService)

	authService := service.NewAuthService(uowFactory, natsPub)
	creditService := service.NewCreditService(uowFactory)
	catalogService := service.NewCatalogService(uowFactory, availabilityCache)
	bookingService := service.NewBookingService(uowFactory, creditService, availabilityCache, natsPub)
	paymentService := service.NewPaymentService(uowFactory, creditService, creditOrders, natsPub)
	waiverService := service.NewWaiverService(uowFactory, creditService, natsPub)
	portalService := service.NewPortalService(uowFactory, portalSessions)
	mediaService := service.NewMediaService(uowFactory, cfg.App.UploadDir)
	adminService := service.NewAdminService(uowFactory, natsPub)

	// Pending waivers expire on a timer, not per-request.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := waiverService.ExpirePending(context.Background(), time.Now())
			if err != nil {
				sysLogger.Error("WaiverService", "Pending waiver expiry sweep failed", map[string]interface{}{"error": err.Error()})
				continue
			}
			if n > 0 {
				sysLogger.Info("WaiverService", "Expired pending waivers", map[string]interface{}{"count": n})
			}
		}
	}()

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery
	if natsSub != nil {
		go notifService.Start()
	}

	// Email pipeline: NATS events feed the in-process job queue.
	emailBridge := service.NewEmailEventBridge(natsSub, publisherService)
	if natsSub != nil {
		if err := emailBridge.Start(); err != nil {
			log.Printf("[WARN] Failed to start email event bridge: %v", err)
		}
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	sysLogger.Info("bootstrap", "Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		BookingController:   controller.NewBookingController(bookingService),
		CatalogController:   controller.NewCatalogController(catalogService),
		CreditController:    controller.NewCreditController(creditService),
		PaymentController:   controller.NewPaymentController(paymentService),
		WaiverController:    controller.NewWaiverController(waiverService),
		PortalController:    controller.NewPortalController(portalService),
		MediaController:     controller.NewMediaController(mediaService),
		AdminController:     controller.NewAdminController(adminService, sysLogger),

		ConsumerService: consumerService,
	}
}
