package bootstrap

import (
	"log"

	"edufocus-be/internal/config"
	"edufocus-be/internal/controller"
	"edufocus-be/internal/pkg/logger"
	"edufocus-be/internal/pkg/serverutils"
	"edufocus-be/internal/repository/unitofwork"
	"edufocus-be/internal/service"
	"edufocus-be/pkg/llm/factory"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	StudySessionController controller.IStudySessionController
	FlashcardController    controller.IFlashcardController
	NoteController         controller.INoteController
	QuizController         controller.IQuizController
	MindMapController      controller.IMindMapController
	PomodoroController     controller.IPomodoroController
	AssistantController    controller.IAssistantController

	// Shared middleware and facades
	AuthMiddleware fiber.Handler
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.BaseURL,
		cfg.Ai.ApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret)
	sessionService := service.NewStudySessionService(uowFactory)
	flashcardService := service.NewFlashcardService(uowFactory)
	noteService := service.NewNoteService(uowFactory)
	quizService := service.NewQuizService(uowFactory)
	mindMapService := service.NewMindMapService(uowFactory)
	pomodoroService := service.NewPomodoroService(uowFactory)
	assistantService := service.NewAssistantService(uowFactory, llmProvider)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		StudySessionController: controller.NewStudySessionController(sessionService),
		FlashcardController:    controller.NewFlashcardController(flashcardService),
		NoteController:         controller.NewNoteController(noteService),
		QuizController:         controller.NewQuizController(quizService),
		MindMapController:      controller.NewMindMapController(mindMapService),
		PomodoroController:     controller.NewPomodoroController(pomodoroService),
		AssistantController:    controller.NewAssistantController(assistantService),

		AuthMiddleware: serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret),
		Logger:         sysLogger,
	}
}
