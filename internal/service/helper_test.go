package service

import (
	"testing"

	"edufocus-be/internal/model"
	"edufocus-be/internal/repository/unitofwork"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestFactory spins up an in-memory database with the full schema.
func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.StudySession{},
		&model.FlashcardDeck{},
		&model.Flashcard{},
		&model.Note{},
		&model.Quiz{},
		&model.MindMap{},
		&model.PomodoroStats{},
		&model.ConversationMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return unitofwork.NewRepositoryFactory(db)
}

func ptr[T any](v T) *T {
	return &v
}
