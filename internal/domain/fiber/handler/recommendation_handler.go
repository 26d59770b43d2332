package handler

import (
	"time"

	"github.com/fadilmartias/careervision/internal/dto"
	"github.com/fadilmartias/careervision/internal/middleware"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/usecase"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/recommendations")
	g.Get("/jobs", h.Jobs)
	g.Get("/courses", h.Courses)
	g.Get("/stats", h.Stats)
	g.Post("/refresh", middleware.RateLimiter(5, time.Minute), h.Refresh)
	g.Patch("/:id/save", h.ToggleSave)
	g.Patch("/:id/applied", h.MarkApplied)
}

func listFilter(c *fiber.Ctx) usecase.RecommendationListFilter {
	return usecase.RecommendationListFilter{
		Source: model.Source(c.Query("source")),
		Level:  model.CourseLevel(c.Query("level")),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
	}
}

func (h *RecommendationHandler) Jobs(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if c.QueryBool("refresh") {
		if _, err := h.uc.Refresh(c.UserContext(), userID, model.RecommendationJob); err != nil {
			return err
		}
	}
	recs, page, err := h.uc.ListJobs(c.UserContext(), userID, listFilter(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get job recommendations",
		Data:       recs,
		Pagination: page,
	})
}

func (h *RecommendationHandler) Courses(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if c.QueryBool("refresh") {
		if _, err := h.uc.Refresh(c.UserContext(), userID, model.RecommendationCourse); err != nil {
			return err
		}
	}
	recs, page, err := h.uc.ListCourses(c.UserContext(), userID, listFilter(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get course recommendations",
		Data:       recs,
		Pagination: page,
	})
}

func (h *RecommendationHandler) Refresh(c *fiber.Ctx) error {
	res, err := h.uc.RefreshAll(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Recommendations refreshed",
		Data:    res,
	})
}

func (h *RecommendationHandler) ToggleSave(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	rec, err := h.uc.ToggleSave(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return err
	}
	message := "Recommendation unsaved"
	if rec.IsSaved {
		message = "Recommendation saved"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
		Data:    rec,
	})
}

func (h *RecommendationHandler) MarkApplied(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	rec, err := h.uc.MarkApplied(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Recommendation marked as applied",
		Data:    rec,
	})
}

func (h *RecommendationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get recommendation stats",
		Data:    dto.NewRecommendationStatsDTO(stats),
	})
}
