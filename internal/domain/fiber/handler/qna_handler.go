package handler

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/fadilmartias/careervision/internal/dto"
	"github.com/fadilmartias/careervision/internal/middleware"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/usecase"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/gofiber/fiber/v2"
)

type QnAHandler struct {
	uc *usecase.QuestionUsecase
}

func NewQnAHandler(uc *usecase.QuestionUsecase) *QnAHandler {
	return &QnAHandler{uc: uc}
}

func (h *QnAHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/qna")
	g.Post("/ask", middleware.RateLimiter(10, time.Minute), h.Ask)
	g.Get("/history", h.History)
	g.Patch("/:id/rate", h.Rate)
}

func (h *QnAHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	q, err := h.uc.Ask(c.UserContext(), middleware.UserID(c), req.Question)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Question answered",
		Data:    dto.NewQuestionDTO(*q),
	})
}

func (h *QnAHandler) History(c *fiber.Ctx) error {
	qs, page, err := h.uc.History(c.UserContext(), middleware.UserID(c), c.QueryInt("page", 1), c.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get question history",
		Data:       slice.Map(qs, func(idx int, q model.Question) dto.QuestionDTO { return dto.NewQuestionDTO(q) }),
		Pagination: page,
	})
}

func (h *QnAHandler) Rate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req dto.RateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Helpful == nil {
		return fiber.NewError(fiber.StatusBadRequest, "helpful is required")
	}
	if err := h.uc.Rate(c.UserContext(), middleware.UserID(c), id, *req.Helpful); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Thanks for the feedback",
	})
}
