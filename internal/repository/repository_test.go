package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fadilmartias/careervision/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestMilestoneRepository_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "deleted",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec(`DELETE FROM "milestones" WHERE .*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "someone else's milestone",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec(`DELETE FROM "milestones" WHERE .*`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrNotFound,
		},
		{
			name: "db error",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec(`DELETE FROM "milestones" WHERE .*`).
					WillReturnError(errors.New("connection reset"))
				return mockDB
			},
			wantErr: errors.New("connection reset"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewMilestoneRepository(openDB(t, tc.mock(t)))
			err := repo.Delete(context.Background(), uuid.New(), uuid.New())
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestMilestoneRepository_FindByID(t *testing.T) {
	id := uuid.New()
	testCases := []struct {
		name      string
		mock      func(t *testing.T) *sql.DB
		wantTitle string
		wantErr   error
	}{
		{
			name: "found",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "type", "title"}).
					AddRow(id.String(), "job", "Backend Engineer")
				mock.ExpectQuery(`SELECT \* FROM "milestones" WHERE .*`).WillReturnRows(rows)
				return mockDB
			},
			wantTitle: "Backend Engineer",
		},
		{
			name: "missing",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`SELECT \* FROM "milestones" WHERE .*`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				return mockDB
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewMilestoneRepository(openDB(t, tc.mock(t)))
			m, err := repo.FindByID(context.Background(), uuid.New(), id)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantTitle, m.Title)
			assert.Equal(t, model.MilestoneJob, m.Type)
		})
	}
}

func TestResumeRepository_Complete(t *testing.T) {
	testCases := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "processing resume completes", rows: 1},
		{name: "already finished", rows: 0, wantErr: ErrNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectExec(`UPDATE "resumes" SET .* WHERE .*processing_status = .*`).
				WillReturnResult(sqlmock.NewResult(0, tc.rows))

			repo := NewResumeRepository(openDB(t, mockDB))
			data := model.NewExtractedData()
			err = repo.Complete(context.Background(), uuid.New(), "text", &data)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResumeRepository_Fail(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec(`UPDATE "resumes" SET .*"processing_error".*`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewResumeRepository(openDB(t, mockDB))
	assert.NoError(t, repo.Fail(context.Background(), uuid.New(), "no text"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationRepository_CreateBatch(t *testing.T) {
	testCases := []struct {
		name    string
		recs    []model.Recommendation
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "empty batch touches nothing",
			mock: func(t *testing.T) *sql.DB {
				mockDB, _, err := sqlmock.New()
				require.NoError(t, err)
				return mockDB
			},
		},
		{
			name: "single insert",
			recs: []model.Recommendation{
				{UserID: uuid.New(), Type: model.RecommendationJob, Title: "Backend Engineer", Source: model.SourceLinkedIn, IsActive: true, BatchVersion: 7},
				{UserID: uuid.New(), Type: model.RecommendationJob, Title: "Data Engineer", Source: model.SourceIndeed, IsActive: true, BatchVersion: 7},
			},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id"}).
					AddRow(uuid.NewString()).
					AddRow(uuid.NewString())
				mock.ExpectQuery(`INSERT INTO "recommendations" .*`).WillReturnRows(rows)
				return mockDB
			},
		},
		{
			name: "insert fails",
			recs: []model.Recommendation{{Title: "Backend Engineer"}},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`INSERT INTO "recommendations" .*`).
					WillReturnError(errors.New("duplicate key"))
				return mockDB
			},
			wantErr: errors.New("duplicate key"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewRecommendationRepository(openDB(t, tc.mock(t)))
			err := repo.CreateBatch(context.Background(), tc.recs)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestRecommendationRepository_DeactivateOlder(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec(`UPDATE "recommendations" SET "is_active"=.* WHERE .*batch_version < .*`).
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewRecommendationRepository(openDB(t, mockDB))
	err = repo.DeactivateOlder(context.Background(), uuid.New(), model.RecommendationCourse, 42)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationRepository_Stats(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"type", "total", "saved", "applied"}).
		AddRow("course", 12, 3, 0).
		AddRow("job", 20, 5, 2)
	mock.ExpectQuery(`(?s)SELECT type,.* FROM "recommendations" WHERE user_id = .* GROUP BY .*type`).
		WillReturnRows(rows)

	repo := NewRecommendationRepository(openDB(t, mockDB))
	stats, err := repo.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, []TypeStats{
		{Type: model.RecommendationCourse, Total: 12, Saved: 3},
		{Type: model.RecommendationJob, Total: 20, Saved: 5, Applied: 2},
	}, stats)
}

func TestRecommendationRepository_ListLatest(t *testing.T) {
	testCases := []struct {
		name      string
		filter    RecommendationFilter
		mock      func(t *testing.T) *sql.DB
		wantTotal int64
		wantIDs   []string
		wantErr   error
	}{
		{
			name:   "latest batch filtered by source and level",
			filter: RecommendationFilter{Source: model.SourceCoursera, Level: model.LevelBeginner, Offset: 20, Limit: 10},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`(?s)SELECT count\(\*\) FROM "recommendations" WHERE \(?user_id = .* AND type = .* AND is_active\)? AND .*batch_version = \(SELECT MAX\(r2\.batch_version\) FROM recommendations r2.*r2\.is_active\).* AND source = .* AND level = `).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
				rows := sqlmock.NewRows([]string{"id", "title", "source", "level", "match_score", "batch_version", "is_active"}).
					AddRow("4c7a1f2e-0d6b-4f8e-9a51-3b2c6d7e8f90", "Go Basics", "coursera", "beginner", 88, 9, true).
					AddRow("5d8b2a3f-1e7c-4a9f-8b62-4c3d7e8f9a01", "SQL Foundations", "coursera", "beginner", 71, 9, true)
				mock.ExpectQuery(`(?s)SELECT \* FROM "recommendations" WHERE .*MAX\(r2\.batch_version\).* AND source = .* AND level = .*ORDER BY match_score DESC,created_at DESC LIMIT .* OFFSET `).
					WillReturnRows(rows)
				return mockDB
			},
			wantTotal: 23,
			wantIDs:   []string{"4c7a1f2e-0d6b-4f8e-9a51-3b2c6d7e8f90", "5d8b2a3f-1e7c-4a9f-8b62-4c3d7e8f9a01"},
		},
		{
			name:   "count fails",
			filter: RecommendationFilter{Limit: 10},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery(`SELECT count\(\*\) FROM "recommendations"`).
					WillReturnError(errors.New("connection reset"))
				return mockDB
			},
			wantErr: errors.New("connection reset"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewRecommendationRepository(openDB(t, tc.mock(t)))
			recs, total, err := repo.ListLatest(context.Background(), uuid.New(), model.RecommendationCourse, tc.filter)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantTotal, total)
			ids := make([]string, 0, len(recs))
			for _, rec := range recs {
				ids = append(ids, rec.ID.String())
				assert.True(t, rec.IsActive)
				assert.Equal(t, int64(9), rec.BatchVersion)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestRecommendationRepository_ListActive(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"id", "type", "title", "match_score", "batch_version", "is_active"}).
		AddRow(uuid.NewString(), "job", "Backend Engineer", 90, 4, true).
		AddRow(uuid.NewString(), "course", "Go Basics", 75, 2, true)
	mock.ExpectQuery(`(?s)SELECT \* FROM "recommendations" WHERE \(?user_id = .* AND is_active\)? AND .*batch_version = \(SELECT MAX\(r2\.batch_version\) FROM recommendations r2.*r2\.type = recommendations\.type.*\).*ORDER BY match_score DESC`).
		WillReturnRows(rows)

	repo := NewRecommendationRepository(openDB(t, mockDB))
	recs, err := repo.ListActive(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, model.RecommendationJob, recs[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_UpdateHelpful(t *testing.T) {
	testCases := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "rated", rows: 1},
		{name: "unknown question", rows: 0, wantErr: ErrNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectExec(`UPDATE "questions" SET .*"helpful"=.*`).
				WillReturnResult(sqlmock.NewResult(0, tc.rows))

			repo := NewQuestionRepository(openDB(t, mockDB))
			err = repo.UpdateHelpful(context.Background(), uuid.New(), uuid.New(), true)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
