package bootstrap

import (
	"context"
	"log"

	"sipspot-be/internal/config"
	"sipspot-be/internal/controller"
	"sipspot-be/internal/handler"
	"sipspot-be/internal/pkg/logger"
	"sipspot-be/internal/pkg/mailer"
	"sipspot-be/internal/repository/implementation"
	"sipspot-be/internal/repository/unitofwork"
	"sipspot-be/internal/service"
	"sipspot-be/internal/websocket"

	"sipspot-be/pkg/events"
	pkgNats "sipspot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	OAuthController         controller.IOAuthController
	UserController          controller.IUserController
	EstablishmentController controller.IEstablishmentController
	MenuController          controller.IMenuController
	OrderController         controller.IOrderController
	FeedbackController      controller.IFeedbackController
	PaymentController       controller.IPaymentController
	ForumController         controller.IForumController
	AdminController         controller.IAdminController

	// Background services, run from main.
	ConsumerService service.IConsumerService

	// WebSockets & notifications
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// In-process event bus for order lifecycle messages.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Durable audit trail of every domain event.
	if natsSub != nil {
		if err := natsSub.Subscribe("events.>", "audit-log", func(_ context.Context, ev events.Event) error {
			sysLogger.Info("Audit", ev.EventType(), ev.Payload())
			return nil
		}); err != nil {
			log.Printf("[WARN] Failed to subscribe to audit events: %v", err)
		}
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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Notification domain
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, wsHub, wsLogger)
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg.Auth)
	oauthService := service.NewOAuthService(uowFactory, cfg.Auth)
	userService := service.NewUserService(uowFactory)

	locationService := service.NewLocationService(cfg.Keys.Geoapify)
	paymentService := service.NewPaymentService(uowFactory, emailService, natsPub, cfg.Midtrans, cfg.App.ClientURL)
	establishmentService := service.NewEstablishmentService(uowFactory, locationService, paymentService, cfg.App.ClientURL)
	menuService := service.NewMenuService(uowFactory)
	orderService := service.NewOrderService(uowFactory, pubSub, natsPub)
	feedbackService := service.NewFeedbackService(uowFactory)
	forumService := service.NewForumService(uowFactory)
	adminService := service.NewAdminService(uowFactory, notifService, sysLogger)

	consumerService := service.NewConsumerService(pubSub, uowFactory, notifService)

	return &Container{
		AuthController:          controller.NewAuthController(authService),
		OAuthController:         controller.NewOAuthController(oauthService),
		UserController:          controller.NewUserController(userService),
		EstablishmentController: controller.NewEstablishmentController(establishmentService),
		MenuController:          controller.NewMenuController(menuService),
		OrderController:         controller.NewOrderController(orderService),
		FeedbackController:      controller.NewFeedbackController(feedbackService),
		PaymentController:       controller.NewPaymentController(paymentService),
		ForumController:         controller.NewForumController(forumService),
		AdminController:         controller.NewAdminController(adminService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
