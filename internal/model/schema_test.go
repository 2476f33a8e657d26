package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSchemaDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&User{},
		&StudySession{},
		&FlashcardDeck{},
		&Flashcard{},
		&Note{},
		&Quiz{},
		&MindMap{},
		&PomodoroStats{},
		&ConversationMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func TestSchemaRejectsOrphanFlashcard(t *testing.T) {
	db := newSchemaDb(t)

	orphan := Flashcard{
		Id:       uuid.New(),
		DeckId:   uuid.New(),
		Question: "q",
		Answer:   "a",
	}
	err := db.Create(&orphan).Error
	assert.Error(t, err)
}

func TestSchemaCascadesDeckDelete(t *testing.T) {
	db := newSchemaDb(t)

	user := User{
		Id:           uuid.New(),
		Username:     "cascade",
		Email:        "cascade@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(&user).Error)

	deck := FlashcardDeck{
		Id:     uuid.New(),
		UserId: user.Id,
		Name:   "Biology",
	}
	require.NoError(t, db.Create(&deck).Error)

	card := Flashcard{
		Id:       uuid.New(),
		DeckId:   deck.Id,
		Question: "What is a cell?",
		Answer:   "The basic unit of life",
	}
	require.NoError(t, db.Create(&card).Error)

	require.NoError(t, db.Delete(&FlashcardDeck{}, "id = ?", deck.Id).Error)

	var count int64
	require.NoError(t, db.Model(&Flashcard{}).Where("deck_id = ?", deck.Id).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSchemaCascadesUserDelete(t *testing.T) {
	db := newSchemaDb(t)

	user := User{
		Id:           uuid.New(),
		Username:     "owner",
		Email:        "owner@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(&user).Error)

	note := Note{
		Id:      uuid.New(),
		UserId:  user.Id,
		Title:   "Photosynthesis",
		Content: "Light reactions",
	}
	require.NoError(t, db.Create(&note).Error)

	message := ConversationMessage{
		Id:        uuid.New(),
		UserId:    user.Id,
		Role:      "user",
		Content:   "hello",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&message).Error)

	require.NoError(t, db.Delete(&User{}, "id = ?", user.Id).Error)

	var notes int64
	require.NoError(t, db.Model(&Note{}).Where("user_id = ?", user.Id).Count(&notes).Error)
	assert.Equal(t, int64(0), notes)

	var messages int64
	require.NoError(t, db.Model(&ConversationMessage{}).Where("user_id = ?", user.Id).Count(&messages).Error)
	assert.Equal(t, int64(0), messages)
}
