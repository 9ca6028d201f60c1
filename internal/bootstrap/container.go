package bootstrap

import (
	"ai-assistant-admin-be/internal/config"
	"ai-assistant-admin-be/internal/controller"
	"ai-assistant-admin-be/internal/pkg/logger"
	"ai-assistant-admin-be/internal/pkg/validation"
	"ai-assistant-admin-be/internal/repository/memory"
	"ai-assistant-admin-be/internal/service"
	"ai-assistant-admin-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	ChatController      controller.IChatController

	// Exposed for the simulation binary and tests
	AssistantService service.IAssistantService
	AssistantRepo    *memory.AssistantRepository
	Validator        *validation.AssistantValidator
	PubSub           *gochannel.GoChannel
	Logger           logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisher := events.NewPublisher(pubSub, sysLogger)

	// 3. Repositories
	assistantRepo := memory.NewAssistantRepository(memory.AssistantRepositoryOptions{
		Latency:           cfg.Store.Latency,
		DeleteLatency:     cfg.Store.DeleteLatency,
		DeleteFailureRate: cfg.Store.DeleteFailureRate,
	})
	if cfg.Store.SeedData {
		assistantRepo.Seed(memory.DemoAssistants()...)
	}
	sessionRepo := memory.NewChatSessionRepository(cfg.Chat.SessionTTL)

	// 4. Services
	assistantValidator := validation.NewAssistantValidator()
	assistantService := service.NewAssistantService(assistantRepo, assistantValidator, publisher, sysLogger)
	chatService := service.NewChatService(assistantRepo, sessionRepo, assistantValidator, sysLogger, nil)

	// 5. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		ChatController:      controller.NewChatController(chatService),

		AssistantService: assistantService,
		AssistantRepo:    assistantRepo,
		Validator:        assistantValidator,
		PubSub:           pubSub,
		Logger:           sysLogger,
	}
}
