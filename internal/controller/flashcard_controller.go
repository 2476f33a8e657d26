package controller

import (
	"edufocus-be/internal/dto"
	"edufocus-be/internal/pkg/serverutils"
	"edufocus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFlashcardController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	ListDecks(ctx *fiber.Ctx) error
	CreateDeck(ctx *fiber.Ctx) error
	DeleteDeck(ctx *fiber.Ctx) error
	CreateCard(ctx *fiber.Ctx) error
	ReviewCard(ctx *fiber.Ctx) error
	DeleteCard(ctx *fiber.Ctx) error
}

type flashcardController struct {
	flashcardService service.IFlashcardService
}

func NewFlashcardController(flashcardService service.IFlashcardService) IFlashcardController {
	return &flashcardController{
		flashcardService: flashcardService,
	}
}

func (c *flashcardController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/flashcards")
	h.Use(authMiddleware)
	h.Get("/decks", c.ListDecks)
	h.Post("/decks", c.CreateDeck)
	h.Delete("/decks/:id", c.DeleteDeck)
	h.Post("/decks/:deckId/cards", c.CreateCard)
	h.Post("/cards/:id/review", c.ReviewCard)
	h.Delete("/cards/:id", c.DeleteCard)
}

func (c *flashcardController) ListDecks(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.flashcardService.ListDecks(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list decks", res))
}

func (c *flashcardController) CreateDeck(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateDeckRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flashcardService.CreateDeck(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create deck", res))
}

func (c *flashcardController) DeleteDeck(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.flashcardService.DeleteDeck(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete deck", nil))
}

func (c *flashcardController) CreateCard(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	deckIdParam := ctx.Params("deckId")
	deckId, _ := uuid.Parse(deckIdParam)

	var req dto.CreateCardRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.DeckId = deckId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flashcardService.CreateCard(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create card", res))
}

func (c *flashcardController) ReviewCard(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.ReviewCardRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.flashcardService.ReviewCard(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success review card", res))
}

func (c *flashcardController) DeleteCard(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.flashcardService.DeleteCard(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete card", nil))
}
