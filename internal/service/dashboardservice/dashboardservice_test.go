package dashboardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	wallets      *MockWallets
	lessons      *MockLessons
	achievements *MockAchievements
	goals        *MockGoals
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		wallets:      NewMockWallets(ctrl),
		lessons:      NewMockLessons(ctrl),
		achievements: NewMockAchievements(ctrl),
		goals:        NewMockGoals(ctrl),
	}
	return New(m.wallets, m.lessons, m.achievements, m.goals), m
}

func TestDashboard(t *testing.T) {
	t.Run("All sections loaded", func(t *testing.T) {
		service, m := NewMock(t)
		m.wallets.EXPECT().SummaryFor(gomock.Any(), 1).Return(&domain.WalletSummary{TotalBalance: decimal.NewFromInt(40)}, nil)
		m.lessons.EXPECT().Statistics(gomock.Any(), 1).Return(&domain.LessonStatistics{TotalLessons: 8, CompletedCount: 2}, nil)
		m.achievements.EXPECT().UserAchievements(gomock.Any(), 1).Return(&domain.AchievementOverview{Total: 6, UnlockedCount: 1}, nil)
		m.goals.EXPECT().ListGoals(gomock.Any(), 1).Return([]domain.SavingGoal{{ID: 3}}, nil)

		d, err := service.Dashboard(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(40).Equal(d.Wallets.TotalBalance))
		assert.Equal(t, 2, d.Lessons.CompletedCount)
		assert.Equal(t, 1, d.Achievements.UnlockedCount)
		assert.Len(t, d.Goals, 1)
	})

	t.Run("One section fails", func(t *testing.T) {
		service, m := NewMock(t)
		m.wallets.EXPECT().SummaryFor(gomock.Any(), 1).Return(nil, errors.New("db error"))
		m.lessons.EXPECT().Statistics(gomock.Any(), 1).Return(&domain.LessonStatistics{}, nil).AnyTimes()
		m.achievements.EXPECT().UserAchievements(gomock.Any(), 1).Return(&domain.AchievementOverview{}, nil).AnyTimes()
		m.goals.EXPECT().ListGoals(gomock.Any(), 1).Return(nil, nil).AnyTimes()

		d, err := service.Dashboard(context.Background(), 1)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, d)
	})
}
