package controller

import (
	"edufocus-be/internal/dto"
	"edufocus-be/internal/pkg/serverutils"
	"edufocus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPomodoroController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	TodayStats(ctx *fiber.Ctx) error
	UpdateStats(ctx *fiber.Ctx) error
}

type pomodoroController struct {
	pomodoroService service.IPomodoroService
}

func NewPomodoroController(pomodoroService service.IPomodoroService) IPomodoroController {
	return &pomodoroController{
		pomodoroService: pomodoroService,
	}
}

func (c *pomodoroController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/pomodoro")
	h.Use(authMiddleware)
	h.Get("/stats", c.TodayStats)
	h.Post("/stats", c.UpdateStats)
}

func (c *pomodoroController) TodayStats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.pomodoroService.TodayStats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get pomodoro stats", res))
}

func (c *pomodoroController) UpdateStats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdatePomodoroRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.pomodoroService.UpdateStats(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update pomodoro stats", res))
}
