package controller

import (
	"edufocus-be/internal/dto"
	"edufocus-be/internal/pkg/serverutils"
	"edufocus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Chat(ctx *fiber.Ctx) error
	SummarizeVideo(ctx *fiber.Ctx) error
	SummarizePdf(ctx *fiber.Ctx) error
	Recommendations(ctx *fiber.Ctx) error
	StudyGuide(ctx *fiber.Ctx) error
	AnalyzeMaterial(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/assistant")
	h.Use(authMiddleware)
	h.Post("/chat", c.Chat)
	h.Post("/summarize-video", c.SummarizeVideo)
	h.Post("/summarize-pdf", c.SummarizePdf)
	h.Post("/recommendations", c.Recommendations)
	h.Post("/study-guide", c.StudyGuide)
	h.Post("/analyze-material", c.AnalyzeMaterial)
	h.Get("/history", c.History)
	h.Delete("/history", c.ClearHistory)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ChatRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *assistantController) SummarizeVideo(ctx *fiber.Ctx) error {
	var req dto.SummarizeVideoRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistantService.SummarizeVideo(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize video", res))
}

func (c *assistantController) SummarizePdf(ctx *fiber.Ctx) error {
	var req dto.SummarizePdfRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistantService.SummarizePdf(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize document", res))
}

func (c *assistantController) Recommendations(ctx *fiber.Ctx) error {
	var req dto.RecommendationsRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistantService.Recommendations(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}

func (c *assistantController) StudyGuide(ctx *fiber.Ctx) error {
	var req dto.StudyGuideRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistantService.StudyGuide(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate study guide", res))
}

func (c *assistantController) AnalyzeMaterial(ctx *fiber.Ctx) error {
	var req dto.AnalyzeMaterialRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistantService.AnalyzeMaterial(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze material", res))
}

func (c *assistantController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.assistantService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation history", res))
}

func (c *assistantController) ClearHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.assistantService.ClearHistory(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear conversation history", nil))
}
