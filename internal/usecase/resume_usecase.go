package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/careervision/internal/config"
	"github.com/fadilmartias/careervision/internal/extraction"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/repository"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/google/uuid"
)

var acceptedResumeMimes = map[string]bool{
	util.MimePDF:  true,
	util.MimeDOC:  true,
	util.MimeDOCX: true,
}

var errNoText = errors.New("no text could be extracted from the document")

const failTimeout = 5 * time.Second

// TextExtractor reads the plain text of a stored document.
type TextExtractor func(ctx context.Context, path, mimeType string) (string, error)

// UploadFile describes an incoming multipart file. Save is only called once
// the file passed validation.
type UploadFile struct {
	OriginalName string
	Size         int64
	MimeType     string
	Save         func(dst string) error
}

type ProcessResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type ResumeUsecase struct {
	resumes    repository.ResumeRepository
	milestones repository.MilestoneRepository
	parser     *extraction.Parser
	extract    TextExtractor
	cfg        *config.UploadConfig
	spawn      func(func())
	now        func() time.Time
}

func NewResumeUsecase(
	resumes repository.ResumeRepository,
	milestones repository.MilestoneRepository,
	parser *extraction.Parser,
	extract TextExtractor,
	cfg *config.UploadConfig,
) *ResumeUsecase {
	if parser == nil {
		parser = extraction.NewParser(nil)
	}
	if extract == nil {
		extract = util.ExtractText
	}
	return &ResumeUsecase{
		resumes:    resumes,
		milestones: milestones,
		parser:     parser,
		extract:    extract,
		cfg:        cfg,
		spawn:      func(f func()) { go f() },
		now:        time.Now,
	}
}

// Upload stores the file, records the resume as processing and starts
// extraction in the background.
func (uc *ResumeUsecase) Upload(ctx context.Context, userID uuid.UUID, file UploadFile) (*model.Resume, error) {
	mime, _, _ := strings.Cut(file.MimeType, ";")
	mime = strings.ToLower(strings.TrimSpace(mime))
	if !acceptedResumeMimes[mime] {
		return nil, ErrUnsupportedMime
	}
	if file.Size > uc.cfg.MaxBytes {
		return nil, ErrFileTooLarge
	}

	stored := uuid.NewString() + strings.ToLower(filepath.Ext(file.OriginalName))
	path := filepath.Join(uc.cfg.Dir, stored)
	if err := file.Save(path); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	resume := &model.Resume{
		UserID:           userID,
		Filename:         stored,
		OriginalName:     file.OriginalName,
		FilePath:         path,
		FileSize:         file.Size,
		MimeType:         mime,
		ProcessingStatus: model.StatusProcessing,
	}
	if err := uc.resumes.Create(ctx, resume); err != nil {
		return nil, err
	}

	id := resume.ID
	uc.spawn(func() {
		pctx, cancel := context.WithTimeout(context.Background(), uc.cfg.ProcessTimeout)
		defer cancel()
		if _, err := uc.Process(pctx, id); err != nil {
			slog.Error("resume processing failed", slog.String("resume_id", id.String()), slog.Any("error", err))
		}
	})
	return resume, nil
}

// Process extracts the resume text, stores the parsed data and turns every
// extracted item into a milestone. A resume that cannot be read or stored
// is marked failed.
func (uc *ResumeUsecase) Process(ctx context.Context, resumeID uuid.UUID) (ProcessResult, error) {
	resume, err := uc.resumes.FindByID(ctx, resumeID)
	if errors.Is(err, repository.ErrNotFound) {
		return ProcessResult{}, err
	}
	if err != nil {
		uc.markFailed(ctx, resumeID, err)
		return ProcessResult{}, fmt.Errorf("load resume: %w", err)
	}

	text, err := uc.extract(ctx, resume.FilePath, resume.MimeType)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errNoText
	}
	if err != nil {
		uc.markFailed(ctx, resumeID, err)
		return ProcessResult{}, fmt.Errorf("extract text: %w", err)
	}

	data := uc.parser.Parse(text)
	if err := uc.resumes.Complete(ctx, resumeID, text, &data); err != nil {
		uc.markFailed(ctx, resumeID, err)
		return ProcessResult{}, fmt.Errorf("complete resume: %w", err)
	}

	var res ProcessResult
	for _, m := range milestonesFrom(resume, data, uc.now()) {
		if err := uc.milestones.Create(ctx, &m); err != nil {
			slog.Warn("skipping extracted milestone",
				slog.String("resume_id", resumeID.String()),
				slog.String("title", m.Title),
				slog.Any("error", err))
			res.Skipped++
			continue
		}
		res.Created++
	}
	slog.Info("resume processed",
		slog.String("resume_id", resumeID.String()),
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped))
	return res, nil
}

// markFailed runs on a context detached from ctx so an expired processing
// deadline still records the failure.
func (uc *ResumeUsecase) markFailed(ctx context.Context, resumeID uuid.UUID, cause error) {
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failTimeout)
	defer cancel()
	if err := uc.resumes.Fail(fctx, resumeID, cause.Error()); err != nil {
		slog.Warn("could not mark resume failed", slog.String("resume_id", resumeID.String()), slog.Any("error", err))
	}
}

func (uc *ResumeUsecase) List(ctx context.Context, userID uuid.UUID) ([]model.Resume, error) {
	return uc.resumes.ListByUser(ctx, userID)
}

func (uc *ResumeUsecase) Get(ctx context.Context, userID, id uuid.UUID) (*model.Resume, error) {
	return uc.resumes.FindByUser(ctx, userID, id)
}

// ParseText runs the extraction rules over pasted text without storing anything.
func (uc *ResumeUsecase) ParseText(ctx context.Context, text string) (model.ExtractedData, error) {
	if strings.TrimSpace(text) == "" {
		return model.ExtractedData{}, invalid("resume text is required", map[string]string{"text": "must not be blank"})
	}
	return uc.parser.Parse(text), nil
}

func milestonesFrom(resume *model.Resume, data model.ExtractedData, now time.Time) []model.Milestone {
	fallbackStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	start := func(t *time.Time) time.Time {
		if t == nil {
			return fallbackStart
		}
		return *t
	}
	base := func(kind model.MilestoneType, confidence float64) model.Milestone {
		id := resume.ID
		return model.Milestone{
			UserID:               resume.UserID,
			Type:                 kind,
			ResumeID:             &id,
			ExtractionConfidence: confidence,
		}
	}

	var out []model.Milestone
	for _, e := range data.Experience {
		m := base(model.MilestoneJob, e.Confidence)
		m.Title = orDefault(e.Title, "Position")
		m.Company = orDefault(e.Company, "Company")
		m.Location = e.Location
		m.Duration = e.Duration
		m.Description = e.Description
		m.StartDate = start(e.StartDate)
		m.EndDate = e.EndDate
		m.Skills = e.Skills
		m.Technologies = e.Technologies
		out = append(out, m)
	}
	for _, e := range data.Education {
		m := base(model.MilestoneEducation, e.Confidence)
		m.Title = orDefault(e.Degree, "Education")
		m.Company = orDefault(e.Institution, "Institution")
		m.Description = e.Description
		m.StartDate = start(e.StartDate)
		m.EndDate = e.EndDate
		out = append(out, m)
	}
	for _, c := range data.Certifications {
		m := base(model.MilestoneCertification, c.Confidence)
		m.Title = orDefault(c.Title, "Certification")
		m.Company = orDefault(c.Issuer, "Certification Provider")
		m.Description = c.Description
		m.StartDate = start(c.StartDate)
		out = append(out, m)
	}
	for _, p := range data.Projects {
		m := base(model.MilestoneProject, p.Confidence)
		m.Title = orDefault(p.Title, "Project")
		m.Company = "Personal/Academic Project"
		m.Description = p.Description
		m.StartDate = start(p.StartDate)
		m.EndDate = p.EndDate
		m.Technologies = p.Technologies
		out = append(out, m)
	}
	for _, a := range data.Achievements {
		m := base(model.MilestoneAchievement, a.Confidence)
		m.Title = orDefault(a.Title, "Achievement")
		m.Company = "Personal Achievement"
		m.Description = a.Description
		m.StartDate = start(a.StartDate)
		out = append(out, m)
	}
	return out
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
