package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/repository/specification"
	"edufocus-be/internal/repository/unitofwork"
	"edufocus-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.StudySessionRepository())
	assert.NotNil(t, uow.ConversationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Transactional Deck Delete", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Username:     "integration-" + uuid.New().String(),
			Email:        uuid.New().String() + "@integration.test",
			PasswordHash: "integration",
			CreatedAt:    time.Now(),
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, user))

		deck := &entity.FlashcardDeck{
			Id:        uuid.New(),
			UserId:    user.Id,
			Name:      "Integration Deck " + uuid.New().String(),
			CreatedAt: time.Now(),
		}
		assert.NoError(t, uow.FlashcardDeckRepository().Create(ctx, deck))

		card := &entity.Flashcard{
			Id:        uuid.New(),
			DeckId:    deck.Id,
			Question:  "integration question",
			Answer:    "integration answer",
			CreatedAt: time.Now(),
		}
		assert.NoError(t, uow.FlashcardRepository().Create(ctx, card))

		txUow := uowFactory.NewUnitOfWork(ctx)
		assert.NoError(t, txUow.Begin(ctx))
		assert.NoError(t, txUow.FlashcardRepository().DeleteAllByDeckId(ctx, deck.Id))
		assert.NoError(t, txUow.FlashcardDeckRepository().Delete(ctx, deck.Id))
		assert.NoError(t, txUow.Commit())

		gone, err := uow.FlashcardDeckRepository().FindOne(ctx,
			specification.ByID{ID: deck.Id},
		)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}
