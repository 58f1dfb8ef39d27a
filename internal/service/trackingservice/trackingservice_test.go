package trackingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 7, 4, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAchievementChecker) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	checker := NewMockAchievementChecker(ctrl)
	service := New(repo, checker)
	service.now = func() time.Time { return fixedNow }
	return service, repo, checker
}

func intPtr(v int) *int { return &v }

func TestAddSpending(t *testing.T) {
	tests := []struct {
		name         string
		spending     *domain.Spending
		custom       string
		prepareMock  func(repo *MockRepo, checker *MockAchievementChecker)
		expectedErr  error
		wantUnlocked int
	}{
		{
			name:     "Tracked spending unlocks achievement",
			spending: &domain.Spending{CategoryID: intPtr(2), Amount: decimal.NewFromInt(5), Description: "ice cream"},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				repo.EXPECT().GetCategory(gomock.Any(), 2).Return(&domain.SpendingCategory{ID: 2, Name: "Food"}, nil)
				repo.EXPECT().CreateSpending(gomock.Any(), &domain.Spending{
					UserID:      1,
					CategoryID:  intPtr(2),
					Amount:      decimal.NewFromInt(5),
					Description: "ice cream",
					Date:        fixedNow,
				}).Return(&domain.Spending{ID: 10, UserID: 1}, nil)
				repo.EXPECT().CountSpendings(gomock.Any(), 1).Return(1, nil)
				checker.EXPECT().CheckAndUnlock(gomock.Any(), 1, domain.AchievementSpendingTracked, domain.Counters{TrackedCount: 1}).
					Return([]domain.UserAchievement{{ID: 3}}, nil)
			},
			wantUnlocked: 1,
		},
		{
			name:     "Custom category is created by name",
			spending: &domain.Spending{Amount: decimal.NewFromInt(5)},
			custom:   "  Comics ",
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				repo.EXPECT().GetOrCreateCategory(gomock.Any(), &domain.SpendingCategory{
					Name:        "Comics",
					Icon:        customCategoryIcon,
					Color:       customCategoryColor,
					Description: "Custom category: Comics",
				}).Return(&domain.SpendingCategory{ID: 11, Name: "Comics"}, nil)
				repo.EXPECT().CreateSpending(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.Spending) (*domain.Spending, error) {
					assert.Equal(t, 11, *s.CategoryID)
					return s, nil
				})
				repo.EXPECT().CountSpendings(gomock.Any(), 1).Return(2, nil)
				checker.EXPECT().CheckAndUnlock(gomock.Any(), 1, domain.AchievementSpendingTracked, domain.Counters{TrackedCount: 2}).Return(nil, nil)
			},
		},
		{
			name:        "Category required",
			spending:    &domain.Spending{Amount: decimal.NewFromInt(5)},
			expectedErr: ErrCategoryRequired,
		},
		{
			name:     "Unknown category",
			spending: &domain.Spending{CategoryID: intPtr(99), Amount: decimal.NewFromInt(5)},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				repo.EXPECT().GetCategory(gomock.Any(), 99).Return(nil, nil)
			},
			expectedErr: ErrCategoryNotFound,
		},
		{
			name:        "Negative amount",
			spending:    &domain.Spending{CategoryID: intPtr(2), Amount: decimal.NewFromInt(-1)},
			expectedErr: ErrInvalidAmount,
		},
		{
			name:     "Evaluator failure keeps spending",
			spending: &domain.Spending{CategoryID: intPtr(2), Amount: decimal.NewFromInt(5)},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				repo.EXPECT().GetCategory(gomock.Any(), 2).Return(&domain.SpendingCategory{ID: 2}, nil)
				repo.EXPECT().CreateSpending(gomock.Any(), gomock.Any()).Return(&domain.Spending{ID: 10}, nil)
				repo.EXPECT().CountSpendings(gomock.Any(), 1).Return(0, errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, checker := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo, checker)
			}

			created, unlocked, err := service.AddSpending(context.Background(), 1, tt.spending, tt.custom)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, created)
			assert.Len(t, unlocked, tt.wantUnlocked)
		})
	}
}

func TestAddSaving(t *testing.T) {
	goal := func(current int64) *domain.SavingGoal {
		return &domain.SavingGoal{ID: 4, UserID: 1, TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(current)}
	}

	tests := []struct {
		name         string
		saving       *domain.Saving
		prepareMock  func(repo *MockRepo, checker *MockAchievementChecker)
		expectedErr  error
		wantUnlocked int
	}{
		{
			name:   "Saving without goal",
			saving: &domain.Saving{Amount: decimal.NewFromInt(10)},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				repo.EXPECT().CreateSaving(gomock.Any(), gomock.Any()).Return(&domain.Saving{ID: 1}, nil)
			},
		},
		{
			name:   "Goal completed unlocks with goal id",
			saving: &domain.Saving{Amount: decimal.NewFromInt(60), SavingGoalID: intPtr(4)},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				gomock.InOrder(
					repo.EXPECT().GetGoal(gomock.Any(), 4).Return(goal(40), nil),
					repo.EXPECT().CreateSaving(gomock.Any(), gomock.Any()).Return(&domain.Saving{ID: 2, SavingGoalID: intPtr(4)}, nil),
					repo.EXPECT().GetGoal(gomock.Any(), 4).Return(goal(100), nil),
				)
				checker.EXPECT().CheckAndUnlock(gomock.Any(), 1, domain.AchievementSavingGoalReached, domain.Counters{GoalID: intPtr(4)}).
					Return([]domain.UserAchievement{{ID: 8}}, nil)
			},
			wantUnlocked: 1,
		},
		{
			name:   "Goal not yet completed",
			saving: &domain.Saving{Amount: decimal.NewFromInt(10), SavingGoalID: intPtr(4)},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				gomock.InOrder(
					repo.EXPECT().GetGoal(gomock.Any(), 4).Return(goal(40), nil),
					repo.EXPECT().CreateSaving(gomock.Any(), gomock.Any()).Return(&domain.Saving{ID: 2, SavingGoalID: intPtr(4)}, nil),
					repo.EXPECT().GetGoal(gomock.Any(), 4).Return(goal(50), nil),
				)
			},
		},
		{
			name:   "Foreign goal",
			saving: &domain.Saving{Amount: decimal.NewFromInt(10), SavingGoalID: intPtr(4)},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				repo.EXPECT().GetGoal(gomock.Any(), 4).Return(&domain.SavingGoal{ID: 4, UserID: 2}, nil)
			},
			expectedErr: ErrGoalNotFound,
		},
		{
			name:   "Evaluator failure keeps saving",
			saving: &domain.Saving{Amount: decimal.NewFromInt(60), SavingGoalID: intPtr(4)},
			prepareMock: func(repo *MockRepo, checker *MockAchievementChecker) {
				gomock.InOrder(
					repo.EXPECT().GetGoal(gomock.Any(), 4).Return(goal(40), nil),
					repo.EXPECT().CreateSaving(gomock.Any(), gomock.Any()).Return(&domain.Saving{ID: 2, SavingGoalID: intPtr(4)}, nil),
					repo.EXPECT().GetGoal(gomock.Any(), 4).Return(goal(100), nil),
				)
				checker.EXPECT().CheckAndUnlock(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, checker := NewMock(t)
			tt.prepareMock(repo, checker)

			created, unlocked, err := service.AddSaving(context.Background(), 1, tt.saving)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, created)
			assert.Len(t, unlocked, tt.wantUnlocked)
		})
	}
}

func TestCreateGoal(t *testing.T) {
	service, repo, _ := NewMock(t)

	_, err := service.CreateGoal(context.Background(), 1, &domain.SavingGoal{GoalName: "Bike", TargetAmount: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidTarget)

	repo.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, g *domain.SavingGoal) (*domain.SavingGoal, error) {
		assert.Equal(t, 1, g.UserID)
		g.ID = 5
		return g, nil
	})
	goal, err := service.CreateGoal(context.Background(), 1, &domain.SavingGoal{GoalName: "Bike", TargetAmount: decimal.NewFromInt(200)})
	require.NoError(t, err)
	assert.Equal(t, 5, goal.ID)
}

func TestDeletes(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().DeleteSpending(gomock.Any(), 1, 3).Return(false, nil)
	repo.EXPECT().DeleteSaving(gomock.Any(), 1, 3).Return(true, nil)
	repo.EXPECT().DeleteGoal(gomock.Any(), 1, 3).Return(false, errors.New("db error"))

	assert.ErrorIs(t, service.DeleteSpending(context.Background(), 1, 3), ErrSpendingNotFound)
	assert.NoError(t, service.DeleteSaving(context.Background(), 1, 3))
	assert.EqualError(t, service.DeleteGoal(context.Background(), 1, 3), "db error")
}

func TestSpendingSummary(t *testing.T) {
	service, repo, _ := NewMock(t)
	repo.EXPECT().SpendingByCategory(gomock.Any(), 1).Return([]domain.CategoryTotal{
		{CategoryID: intPtr(6), CategoryName: "Food", Total: decimal.NewFromInt(30), Count: 3},
	}, nil)

	totals, err := service.SpendingSummary(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "Food", totals[0].CategoryName)
}
