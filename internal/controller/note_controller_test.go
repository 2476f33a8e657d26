package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"edufocus-be/internal/model"
	"edufocus-be/internal/pkg/serverutils"
	"edufocus-be/internal/repository/unitofwork"
	"edufocus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newNoteTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	noteService := service.NewNoteService(unitofwork.NewRepositoryFactory(db))
	noteController := NewNoteController(noteService)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	stubAuth := func(ctx *fiber.Ctx) error {
		ctx.Locals("user_id", uuid.New().String())
		return ctx.Next()
	}

	api := app.Group("/api")
	noteController.RegisterRoutes(api, stubAuth)
	return app
}

func TestNoteCreateMalformedBodyReturnsBadRequest(t *testing.T) {
	app := newNoteTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/notes", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "invalid request body")
}

func TestNoteCreateValidBodyStillSucceeds(t *testing.T) {
	app := newNoteTestApp(t)

	payload := `{"title":"Photosynthesis","content":"Light reactions"}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/notes", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
}
