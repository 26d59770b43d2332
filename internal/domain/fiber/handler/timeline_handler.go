package handler

import (
	"github.com/fadilmartias/careervision/internal/dto"
	"github.com/fadilmartias/careervision/internal/middleware"
	"github.com/fadilmartias/careervision/internal/usecase"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/gofiber/fiber/v2"
)

type TimelineHandler struct {
	uc *usecase.TimelineUsecase
}

func NewTimelineHandler(uc *usecase.TimelineUsecase) *TimelineHandler {
	return &TimelineHandler{uc: uc}
}

func (h *TimelineHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/timeline")
	g.Get("/", h.List)
	g.Get("/analytics", h.Analytics)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func (h *TimelineHandler) List(c *fiber.Ctx) error {
	milestones, page, err := h.uc.List(c.UserContext(), middleware.UserID(c), usecase.TimelineFilter{
		Type:  c.Query("type", "all"),
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 50),
	})
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get timeline",
		Data:       milestones,
		Pagination: page,
	})
}

func (h *TimelineHandler) Create(c *fiber.Ctx) error {
	var req dto.MilestoneRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	m, err := h.uc.Create(c.UserContext(), middleware.UserID(c), req.Input())
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Milestone created",
		Data:    m,
	})
}

func (h *TimelineHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req dto.MilestoneRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	m, err := h.uc.Update(c.UserContext(), middleware.UserID(c), id, req.Input())
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Milestone updated",
		Data:    m,
	})
}

func (h *TimelineHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), middleware.UserID(c), id); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Milestone deleted",
	})
}

func (h *TimelineHandler) Analytics(c *fiber.Ctx) error {
	stats, err := h.uc.Analytics(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get timeline analytics",
		Data:    stats,
	})
}
