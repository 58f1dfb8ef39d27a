package achievements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/internal/service/achievementservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AchievementHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := auth.WithUserID(req.Context(), 1)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().UserAchievements(gomock.Any(), 1).Return(&domain.AchievementOverview{
		Unlocked:      []domain.Achievement{{ID: 1, Name: "First Wallet", Type: domain.AchievementWalletCreated}},
		Locked:        []domain.Achievement{{ID: 2}, {ID: 3}},
		Total:         3,
		UnlockedCount: 1,
	}, nil)

	rr := httptest.NewRecorder()
	handler.List(rr, newRequest(http.MethodGet, "/api/achievements", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.AchievementsResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Locked, 2)
	assert.Equal(t, "wallet_created", resp.Unlocked[0].Type)
}

func TestUnnotified(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Unnotified(gomock.Any(), 1).Return([]domain.UserAchievement{
		{ID: 7, Achievement: domain.Achievement{Name: "Spending Tracker"}},
	}, nil)

	rr := httptest.NewRecorder()
	handler.Unnotified(rr, newRequest(http.MethodGet, "/api/achievements/unnotified", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.UnlockedDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 7, resp[0].ID)
}

func TestMarkNotified(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		prepareMock  func(s *MockService)
		expectedCode int
	}{
		{
			name: "Marked",
			id:   "7",
			prepareMock: func(s *MockService) {
				s.EXPECT().MarkNotified(gomock.Any(), 1, 7).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Not the user's unlock",
			id:   "8",
			prepareMock: func(s *MockService) {
				s.EXPECT().MarkNotified(gomock.Any(), 1, 8).Return(achievementservice.ErrUnlockNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Database error",
			id:   "7",
			prepareMock: func(s *MockService) {
				s.EXPECT().MarkNotified(gomock.Any(), 1, 7).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.MarkNotified(rr, newRequest(http.MethodPost, "/api/achievements/"+tt.id+"/notified", tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
