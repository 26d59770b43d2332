package handler

import (
	"github.com/fadilmartias/careervision/internal/middleware"
	"github.com/fadilmartias/careervision/internal/usecase"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InsightHandler struct {
	uc *usecase.InsightUsecase
}

func NewInsightHandler(uc *usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

func (h *InsightHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/insights")
	g.Get("/career", h.Career)
	g.Get("/analytics", h.Analytics)
	g.Post("/report", h.Report)
}

func (h *InsightHandler) Career(c *fiber.Ctx) error {
	insights, err := h.uc.Career(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get career insights",
		Data:    insights,
	})
}

func (h *InsightHandler) Analytics(c *fiber.Ctx) error {
	analytics, err := h.uc.Analytics(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get career analytics",
		Data:    analytics,
	})
}

func (h *InsightHandler) Report(c *fiber.Ctx) error {
	report, err := h.uc.Report(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Career report generated",
		Data:    report,
	})
}
