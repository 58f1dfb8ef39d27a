package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/internal/service/lessonservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const userID = 3

func NewMock(t *testing.T) (*LessonHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := auth.WithUserID(req.Context(), userID)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListWithProgress(gomock.Any(), userID).Return([]domain.LessonWithProgress{
		{Lesson: domain.Lesson{ID: 1, Title: "Needs and Wants", LessonNumber: 1}, Status: domain.ProgressCompleted},
		{Lesson: domain.Lesson{ID: 2, Title: "Saving", LessonNumber: 2}, Status: domain.ProgressNotStarted},
	}, nil)

	rr := httptest.NewRecorder()
	handler.List(rr, newRequest(http.MethodGet, "/api/lessons", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.LessonDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "completed", resp[0].Status)
	assert.Equal(t, "not_started", resp[1].Status)
}

func TestStatistics(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Statistics(gomock.Any(), userID).Return(&domain.LessonStatistics{
		TotalLessons:         4,
		CompletedCount:       1,
		InProgressCount:      1,
		NotStartedCount:      2,
		CompletionPercentage: 25,
	}, nil)

	rr := httptest.NewRecorder()
	handler.Statistics(rr, newRequest(http.MethodGet, "/api/lessons/stats", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LessonStatisticsDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 25.0, resp.CompletionPercentage)
	assert.Equal(t, 2, resp.NotStartedCount)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Published lesson",
			id:   "1",
			prepareMock: func(s *MockService) {
				s.EXPECT().Get(gomock.Any(), 1).Return(&domain.Lesson{ID: 1, Title: "Needs and Wants"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Draft lesson",
			id:   "9",
			prepareMock: func(s *MockService) {
				s.EXPECT().Get(gomock.Any(), 9).Return(nil, lessonservice.ErrLessonNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Bad id",
			id:           "abc",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.Get(rr, newRequest(http.MethodGet, "/api/lessons/"+tt.id, tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestStart(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	handler, service := NewMock(t)
	service.EXPECT().Start(gomock.Any(), userID, 1).Return(&domain.LessonProgress{
		UserID:    userID,
		LessonID:  1,
		Status:    domain.ProgressInProgress,
		StartedAt: &now,
	}, nil)

	rr := httptest.NewRecorder()
	handler.Start(rr, newRequest(http.MethodPost, "/api/lessons/1/start", "1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LessonProgressDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "in_progress", resp.Status)
	require.NotNil(t, resp.StartedAt)
	assert.True(t, now.Equal(*resp.StartedAt))
}

func TestComplete(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	completed := &domain.LessonProgress{UserID: userID, LessonID: 1, Status: domain.ProgressCompleted, CompletedAt: &now}

	tests := []struct {
		name          string
		prepareMock   func(s *MockService)
		expectedCode  int
		expectedNext  int
		expectedCount int
	}{
		{
			name: "First completion with next lesson",
			prepareMock: func(s *MockService) {
				s.EXPECT().Complete(gomock.Any(), userID, 1).Return(completed, []domain.UserAchievement{
					{ID: 4, Achievement: domain.Achievement{Name: "First Lesson", CoinReward: decimal.NewFromInt(10)}},
				}, nil)
				s.EXPECT().Next(gomock.Any(), 1).Return(&domain.Lesson{ID: 2, LessonNumber: 2}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedNext:  2,
			expectedCount: 1,
		},
		{
			name: "Last lesson",
			prepareMock: func(s *MockService) {
				s.EXPECT().Complete(gomock.Any(), userID, 1).Return(completed, nil, nil)
				s.EXPECT().Next(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Next lesson lookup fails",
			prepareMock: func(s *MockService) {
				s.EXPECT().Complete(gomock.Any(), userID, 1).Return(completed, nil, nil)
				s.EXPECT().Next(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown lesson",
			prepareMock: func(s *MockService) {
				s.EXPECT().Complete(gomock.Any(), userID, 1).Return(nil, nil, lessonservice.ErrLessonNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Repository failure",
			prepareMock: func(s *MockService) {
				s.EXPECT().Complete(gomock.Any(), userID, 1).Return(nil, nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.Complete(rr, newRequest(http.MethodPost, "/api/lessons/1/complete", "1"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var resp dto.CompleteLessonResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "completed", resp.Progress.Status)
			assert.Len(t, resp.Unlocked, tt.expectedCount)
			if tt.expectedNext == 0 {
				assert.Nil(t, resp.NextLesson)
			} else {
				require.NotNil(t, resp.NextLesson)
				assert.Equal(t, tt.expectedNext, resp.NextLesson.ID)
			}
		})
	}
}

func TestReopen(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Reopen(gomock.Any(), userID, 1).Return(&domain.LessonProgress{
		LessonID: 1,
		Status:   domain.ProgressInProgress,
	}, nil)

	rr := httptest.NewRecorder()
	handler.Reopen(rr, newRequest(http.MethodPost, "/api/lessons/1/reopen", "1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LessonProgressDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "in_progress", resp.Status)
	assert.Nil(t, resp.CompletedAt)
}
