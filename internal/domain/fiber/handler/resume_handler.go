package handler

import (
	"os"
	"path/filepath"

	"github.com/ecodeclub/ekit/slice"
	"github.com/fadilmartias/careervision/internal/dto"
	"github.com/fadilmartias/careervision/internal/middleware"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/usecase"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/resumes")
	g.Post("/upload", middleware.RateLimiter(10, 0), h.Upload)
	g.Post("/ai-parse", h.ParseText)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
}

func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}

	resume, err := h.uc.Upload(c.UserContext(), middleware.UserID(c), usecase.UploadFile{
		OriginalName: file.Filename,
		Size:         file.Size,
		MimeType:     file.Header.Get(fiber.HeaderContentType),
		Save: func(dst string) error {
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return err
			}
			return c.SaveFile(file, dst)
		},
	})
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Resume uploaded, processing started",
		Data:    dto.NewResumeDTO(*resume),
	})
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	resumes, err := h.uc.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get resumes",
		Data: slice.Map(resumes, func(idx int, r model.Resume) dto.ResumeDTO {
			return dto.NewResumeDTO(r)
		}),
	})
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	resume, err := h.uc.Get(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get resume",
		Data:    dto.NewResumeDTO(*resume),
	})
}

func (h *ResumeHandler) ParseText(c *fiber.Ctx) error {
	var req dto.ParseTextRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	data, err := h.uc.ParseText(c.UserContext(), req.Text)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume text parsed",
		Data:    data,
	})
}
