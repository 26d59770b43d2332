package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/fadilmartias/careervision/internal/repository"
	repomocks "github.com/fadilmartias/careervision/internal/repository/mocks"
	"github.com/fadilmartias/careervision/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestValidateMilestone(t *testing.T) {
	valid := MilestoneInput{Type: model.MilestoneJob, Title: "Backend Engineer", StartDate: day(2020, 1, 1)}
	testCases := []struct {
		name      string
		edit      func(in *MilestoneInput)
		wantField string
	}{
		{name: "valid", edit: func(*MilestoneInput) {}},
		{name: "unknown type", edit: func(in *MilestoneInput) { in.Type = "hobby" }, wantField: "type"},
		{name: "title too short", edit: func(in *MilestoneInput) { in.Title = " A " }, wantField: "title"},
		{name: "title too long", edit: func(in *MilestoneInput) { in.Title = strings.Repeat("x", 201) }, wantField: "title"},
		{name: "description too long", edit: func(in *MilestoneInput) { in.Description = strings.Repeat("x", 1001) }, wantField: "description"},
		{name: "missing start", edit: func(in *MilestoneInput) { in.StartDate = nil }, wantField: "start_date"},
		{name: "end before start", edit: func(in *MilestoneInput) { in.EndDate = day(2019, 12, 31) }, wantField: "end_date"},
		{name: "end equals start", edit: func(in *MilestoneInput) { in.EndDate = day(2020, 1, 1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.edit(&in)
			err := validateMilestone(in)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var formErr *util.FormError
			require.ErrorAs(t, err, &formErr)
			assert.Contains(t, formErr.Errors, tc.wantField)
		})
	}
}

func TestTimelineUsecase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ms := repomocks.NewMockMilestoneRepository(ctrl)
	ms.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *model.Milestone) error {
			assert.Equal(t, userID, m.UserID)
			assert.True(t, m.IsManuallyAdded)
			assert.Equal(t, 1.0, m.ExtractionConfidence)
			assert.Equal(t, "Backend Engineer", m.Title)
			assert.Equal(t, []string{"Go", "Redis"}, m.Skills)
			return nil
		})

	uc := NewTimelineUsecase(ms)
	_, err := uc.Create(context.Background(), userID, MilestoneInput{
		Type:      model.MilestoneJob,
		Title:     "  Backend Engineer ",
		StartDate: day(2021, 3, 1),
		Skills:    []string{"Go", " ", "Redis "},
	})
	require.NoError(t, err)
}

func TestTimelineUsecase_Update(t *testing.T) {
	userID, id := uuid.New(), uuid.New()
	in := MilestoneInput{Type: model.MilestoneProject, Title: "Parser", StartDate: day(2022, 1, 1)}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.MilestoneRepository
		wantErr error
	}{
		{
			name: "updated",
			mock: func(ctrl *gomock.Controller) repository.MilestoneRepository {
				ms := repomocks.NewMockMilestoneRepository(ctrl)
				ms.EXPECT().FindByID(gomock.Any(), userID, id).
					Return(&model.Milestone{ID: id, UserID: userID, Type: model.MilestoneJob, Title: "Old"}, nil)
				ms.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m *model.Milestone) error {
						assert.Equal(t, model.MilestoneProject, m.Type)
						assert.Equal(t, "Parser", m.Title)
						return nil
					})
				return ms
			},
		},
		{
			name: "not the owner",
			mock: func(ctrl *gomock.Controller) repository.MilestoneRepository {
				ms := repomocks.NewMockMilestoneRepository(ctrl)
				ms.EXPECT().FindByID(gomock.Any(), userID, id).Return(nil, repository.ErrNotFound)
				return ms
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name: "update fails",
			mock: func(ctrl *gomock.Controller) repository.MilestoneRepository {
				ms := repomocks.NewMockMilestoneRepository(ctrl)
				ms.EXPECT().FindByID(gomock.Any(), userID, id).Return(&model.Milestone{ID: id, UserID: userID}, nil)
				ms.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
				return ms
			},
			wantErr: errors.New("deadlock"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := NewTimelineUsecase(tc.mock(ctrl))
			_, err := uc.Update(context.Background(), userID, id, in)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestTimelineUsecase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ms := repomocks.NewMockMilestoneRepository(ctrl)
	ms.EXPECT().List(gomock.Any(), userID, repository.MilestoneFilter{Offset: 0, Limit: 50}).
		Return([]model.Milestone{{Title: "A"}}, int64(1), nil)
	ms.EXPECT().List(gomock.Any(), userID, repository.MilestoneFilter{Type: model.MilestoneEducation, Offset: 100, Limit: 100}).
		Return(nil, int64(0), nil)

	uc := NewTimelineUsecase(ms)
	got, page, err := uc.List(context.Background(), userID, TimelineFilter{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 50, page.PageSize)

	_, _, err = uc.List(context.Background(), userID, TimelineFilter{Type: "education", Page: 2, Limit: 500})
	require.NoError(t, err)

	_, _, err = uc.List(context.Background(), userID, TimelineFilter{Type: "hobby"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTimelineUsecase_Analytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ms := repomocks.NewMockMilestoneRepository(ctrl)
	ms.EXPECT().ListByUser(gomock.Any(), userID).Return([]model.Milestone{
		{Type: model.MilestoneJob, StartDate: *day(2019, 1, 1), EndDate: day(2020, 1, 1), Skills: []string{"Go"}},
		{Type: model.MilestoneJob, StartDate: *day(2020, 6, 1), Skills: []string{"go"}},
	}, nil)

	uc := NewTimelineUsecase(ms)
	uc.now = func() time.Time { return *day(2021, 1, 1) }
	stats, err := uc.Analytics(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalMilestones)
	require.Len(t, stats.CareerGaps, 1)
	assert.Equal(t, 5, stats.CareerGaps[0].Duration)
}
