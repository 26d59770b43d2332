package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fadilmartias/careervision/internal/insight"
	"github.com/fadilmartias/careervision/internal/matching"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/repository"
	"github.com/fadilmartias/careervision/internal/response"
	"github.com/fadilmartias/careervision/internal/service"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	minQuestionLen         = 5
	maxQuestionLen         = 500
	promptMilestones       = 15
	promptSkills           = 20
	promptRecs             = 5
	unstructuredConfidence = 50
)

type QuestionUsecase struct {
	questions  repository.QuestionRepository
	milestones repository.MilestoneRepository
	recs       repository.RecommendationRepository
	completer  service.TextCompleter
	now        func() time.Time
}

func NewQuestionUsecase(
	questions repository.QuestionRepository,
	milestones repository.MilestoneRepository,
	recs repository.RecommendationRepository,
	completer service.TextCompleter,
) *QuestionUsecase {
	return &QuestionUsecase{
		questions:  questions,
		milestones: milestones,
		recs:       recs,
		completer:  completer,
		now:        time.Now,
	}
}

// Ask answers a free-form career question from the user's own data and
// stores the exchange.
func (uc *QuestionUsecase) Ask(ctx context.Context, userID uuid.UUID, question string) (*model.Question, error) {
	question = strings.TrimSpace(question)
	if n := utf8.RuneCountInString(question); n < minQuestionLen || n > maxQuestionLen {
		return nil, invalid("invalid question", map[string]string{"question": "must be between 5 and 500 characters"})
	}
	start := uc.now()

	milestones, err := uc.milestones.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load milestones: %w", err)
	}
	recs, err := uc.recs.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load recommendations: %w", err)
	}

	skills := matching.NormalizeSkills(milestones)
	gap := insight.GapAnalysis(milestones)
	raw, err := uc.completer.Complete(ctx, buildPrompt(question, milestones, skills, gap, recs))
	if err != nil {
		slog.Warn("question completion failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrCompletionUnavailable, err)
	}

	answer, category, confidence := parseAnswer(raw)
	q := &model.Question{
		UserID:     userID,
		Question:   question,
		Answer:     answer,
		Category:   category,
		Confidence: confidence,
		Context: map[string]any{
			"milestones":      len(milestones),
			"skills":          head(skills, promptSkills),
			"recommendations": len(recs),
			"hasGapAnalysis":  gap != nil,
		},
		ProcessingTime: uc.now().Sub(start).Milliseconds(),
	}
	if err := uc.questions.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (uc *QuestionUsecase) History(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Question, *response.Pagination, error) {
	page, limit = pageWindow(page, limit, defaultHistoryLimit)
	window := response.NewPagination(page, limit, 0)
	qs, total, err := uc.questions.ListByUser(ctx, userID, window.Offset(), limit)
	if err != nil {
		return nil, nil, err
	}
	return qs, response.NewPagination(page, limit, total), nil
}

func (uc *QuestionUsecase) Rate(ctx context.Context, userID, id uuid.UUID, helpful bool) error {
	return uc.questions.UpdateHelpful(ctx, userID, id, helpful)
}

func buildPrompt(question string, milestones []model.Milestone, skills []string, gap *insight.Insight, recs []model.Recommendation) string {
	var b strings.Builder
	b.WriteString("You are a career advisor. Answer the user's question using only the career data below.\n\n")

	b.WriteString("Career timeline (most recent first):\n")
	if len(milestones) == 0 {
		b.WriteString("- no milestones recorded\n")
	}
	for i := len(milestones) - 1; i >= 0 && len(milestones)-i <= promptMilestones; i-- {
		m := milestones[i]
		end := "present"
		if m.EndDate != nil {
			end = m.EndDate.Format("Jan 2006")
		}
		fmt.Fprintf(&b, "- [%s] %s at %s (%s - %s)\n", m.Type, m.Title, m.Company, m.StartDate.Format("Jan 2006"), end)
	}

	b.WriteString("\nSkills: ")
	if len(skills) == 0 {
		b.WriteString("none recorded")
	}
	b.WriteString(strings.Join(head(skills, promptSkills), ", "))
	b.WriteString("\n")

	if gap != nil {
		fmt.Fprintf(&b, "\nCareer gaps: %s\n", gap.Description)
	}

	if len(recs) > 0 {
		b.WriteString("\nCurrent recommendations:\n")
		for i, r := range recs {
			if i == promptRecs {
				break
			}
			fmt.Fprintf(&b, "- [%s] %s (%d%% match, %s)\n", r.Type, r.Title, r.MatchScore, r.Source)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n\n", question)
	b.WriteString(`Respond with JSON only: {"answer": string, "category": one of "career-gap", "skills", "recommendations", "growth", "general", "confidence": integer 0-100}`)
	return b.String()
}

// parseAnswer reads the structured reply. Anything that is not the expected
// JSON object is kept verbatim as a general answer.
func parseAnswer(raw string) (string, model.QuestionCategory, int) {
	body := stripCodeFence(raw)
	answer := gjson.Get(body, "answer")
	if !gjson.Valid(body) || answer.Type != gjson.String || strings.TrimSpace(answer.String()) == "" {
		return strings.TrimSpace(raw), model.CategoryGeneral, unstructuredConfidence
	}

	category := model.QuestionCategory(strings.ToLower(gjson.Get(body, "category").String()))
	if !category.Valid() {
		category = model.CategoryGeneral
	}
	confidence := unstructuredConfidence
	if c := gjson.Get(body, "confidence"); c.Exists() {
		confidence = min(max(int(c.Int()), 0), 100)
	}
	return strings.TrimSpace(answer.String()), category, confidence
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
