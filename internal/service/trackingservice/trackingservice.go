package trackingservice

//go:generate mockgen -source=trackingservice.go -destination=mock_trackingservice.go -package=trackingservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	ListCategories(ctx context.Context) ([]domain.SpendingCategory, error)
	GetCategory(ctx context.Context, categoryID int) (*domain.SpendingCategory, error)
	GetOrCreateCategory(ctx context.Context, category *domain.SpendingCategory) (*domain.SpendingCategory, error)

	CreateSpending(ctx context.Context, spending *domain.Spending) (*domain.Spending, error)
	ListSpendings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Spending, error)
	CountSpendings(ctx context.Context, userID int) (int, error)
	DeleteSpending(ctx context.Context, userID, spendingID int) (bool, error)
	SpendingByCategory(ctx context.Context, userID int) ([]domain.CategoryTotal, error)

	CreateSaving(ctx context.Context, saving *domain.Saving) (*domain.Saving, error)
	ListSavings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Saving, error)
	DeleteSaving(ctx context.Context, userID, savingID int) (bool, error)

	CreateGoal(ctx context.Context, goal *domain.SavingGoal) (*domain.SavingGoal, error)
	GetGoal(ctx context.Context, goalID int) (*domain.SavingGoal, error)
	ListGoals(ctx context.Context, userID int) ([]domain.SavingGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID int) (bool, error)
}

type AchievementChecker interface {
	CheckAndUnlock(ctx context.Context, userID int, eventType domain.AchievementType, counters domain.Counters) ([]domain.UserAchievement, error)
}

type Service struct {
	repo         Repo
	achievements AchievementChecker
	now          func() time.Time
}

func New(repo Repo, achievements AchievementChecker) *Service {
	return &Service{repo: repo, achievements: achievements, now: time.Now}
}

var (
	ErrCategoryNotFound = errors.New("spending category not found")
	ErrCategoryRequired = errors.New("select a category or enter a custom category name")
	ErrSpendingNotFound = errors.New("spending not found")
	ErrSavingNotFound   = errors.New("saving not found")
	ErrGoalNotFound     = errors.New("saving goal not found")
	ErrInvalidAmount    = errors.New("amount must be non-negative")
	ErrInvalidTarget    = errors.New("target amount must be positive")
)

const (
	customCategoryIcon  = "📦"
	customCategoryColor = "#95A5A6"
)

func (s *Service) Categories(ctx context.Context) ([]domain.SpendingCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// AddSpending stores a spending and reports spending_tracked with the user's spending count.
// A non-empty customCategory is looked up or created by name and takes precedence over CategoryID.
func (s *Service) AddSpending(ctx context.Context, userID int, spending *domain.Spending, customCategory string) (*domain.Spending, []domain.UserAchievement, error) {
	if spending.Amount.IsNegative() {
		return nil, nil, ErrInvalidAmount
	}
	if name := strings.TrimSpace(customCategory); name != "" {
		category, err := s.repo.GetOrCreateCategory(ctx, &domain.SpendingCategory{
			Name:        name,
			Icon:        customCategoryIcon,
			Color:       customCategoryColor,
			Description: "Custom category: " + name,
		})
		if err != nil {
			zap.L().Error("failed to get or create category", zap.String("name", name), zap.Error(err))
			return nil, nil, err
		}
		spending.CategoryID = &category.ID
	} else if spending.CategoryID == nil {
		return nil, nil, ErrCategoryRequired
	} else {
		category, err := s.repo.GetCategory(ctx, *spending.CategoryID)
		if err != nil {
			zap.L().Error("failed to get category", zap.Error(err))
			return nil, nil, err
		}
		if category == nil {
			return nil, nil, ErrCategoryNotFound
		}
	}

	spending.UserID = userID
	if spending.Date.IsZero() {
		spending.Date = s.now()
	}
	created, err := s.repo.CreateSpending(ctx, spending)
	if err != nil {
		zap.L().Error("failed to create spending", zap.Int("userID", userID), zap.Error(err))
		return nil, nil, err
	}
	return created, s.spendingTracked(ctx, userID), nil
}

func (s *Service) spendingTracked(ctx context.Context, userID int) []domain.UserAchievement {
	count, err := s.repo.CountSpendings(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count spendings", zap.Int("userID", userID), zap.Error(err))
		return nil
	}
	unlocked, err := s.achievements.CheckAndUnlock(ctx, userID, domain.AchievementSpendingTracked, domain.Counters{TrackedCount: count})
	if err != nil {
		zap.L().Error("achievement check failed", zap.String("event", string(domain.AchievementSpendingTracked)), zap.Error(err))
		return nil
	}
	return unlocked
}

func (s *Service) ListSpendings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Spending, error) {
	list, err := s.repo.ListSpendings(ctx, userID, filter)
	if err != nil {
		zap.L().Error("failed to list spendings", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) DeleteSpending(ctx context.Context, userID, spendingID int) error {
	ok, err := s.repo.DeleteSpending(ctx, userID, spendingID)
	if err != nil {
		zap.L().Error("failed to delete spending", zap.Int("spendingID", spendingID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrSpendingNotFound
	}
	return nil
}

func (s *Service) SpendingSummary(ctx context.Context, userID int) ([]domain.CategoryTotal, error) {
	totals, err := s.repo.SpendingByCategory(ctx, userID)
	if err != nil {
		zap.L().Error("failed to summarize spendings", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return totals, nil
}

// AddSaving stores a saving. When it is linked to a goal that becomes completed,
// saving_goal_reached is reported with the goal id.
func (s *Service) AddSaving(ctx context.Context, userID int, saving *domain.Saving) (*domain.Saving, []domain.UserAchievement, error) {
	if saving.Amount.IsNegative() {
		return nil, nil, ErrInvalidAmount
	}
	if saving.SavingGoalID != nil {
		if _, err := s.GetGoal(ctx, userID, *saving.SavingGoalID); err != nil {
			return nil, nil, err
		}
	}

	saving.UserID = userID
	if saving.Date.IsZero() {
		saving.Date = s.now()
	}
	created, err := s.repo.CreateSaving(ctx, saving)
	if err != nil {
		zap.L().Error("failed to create saving", zap.Int("userID", userID), zap.Error(err))
		return nil, nil, err
	}
	if created.SavingGoalID == nil {
		return created, nil, nil
	}
	return created, s.goalProgressed(ctx, userID, *created.SavingGoalID), nil
}

func (s *Service) goalProgressed(ctx context.Context, userID, goalID int) []domain.UserAchievement {
	goal, err := s.repo.GetGoal(ctx, goalID)
	if err != nil || goal == nil {
		zap.L().Error("failed to reload saving goal", zap.Int("goalID", goalID), zap.Error(err))
		return nil
	}
	if !goal.IsCompleted() {
		return nil
	}
	unlocked, err := s.achievements.CheckAndUnlock(ctx, userID, domain.AchievementSavingGoalReached, domain.Counters{GoalID: &goal.ID})
	if err != nil {
		zap.L().Error("achievement check failed", zap.String("event", string(domain.AchievementSavingGoalReached)), zap.Error(err))
		return nil
	}
	return unlocked
}

func (s *Service) ListSavings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Saving, error) {
	list, err := s.repo.ListSavings(ctx, userID, filter)
	if err != nil {
		zap.L().Error("failed to list savings", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) DeleteSaving(ctx context.Context, userID, savingID int) error {
	ok, err := s.repo.DeleteSaving(ctx, userID, savingID)
	if err != nil {
		zap.L().Error("failed to delete saving", zap.Int("savingID", savingID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrSavingNotFound
	}
	return nil
}

func (s *Service) CreateGoal(ctx context.Context, userID int, goal *domain.SavingGoal) (*domain.SavingGoal, error) {
	if !goal.TargetAmount.IsPositive() {
		return nil, ErrInvalidTarget
	}
	goal.UserID = userID
	created, err := s.repo.CreateGoal(ctx, goal)
	if err != nil {
		zap.L().Error("failed to create saving goal", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetGoal(ctx context.Context, userID, goalID int) (*domain.SavingGoal, error) {
	goal, err := s.repo.GetGoal(ctx, goalID)
	if err != nil {
		zap.L().Error("failed to get saving goal", zap.Int("goalID", goalID), zap.Error(err))
		return nil, err
	}
	if goal == nil || goal.UserID != userID {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

func (s *Service) ListGoals(ctx context.Context, userID int) ([]domain.SavingGoal, error) {
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list saving goals", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return goals, nil
}

func (s *Service) DeleteGoal(ctx context.Context, userID, goalID int) error {
	ok, err := s.repo.DeleteGoal(ctx, userID, goalID)
	if err != nil {
		zap.L().Error("failed to delete saving goal", zap.Int("goalID", goalID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrGoalNotFound
	}
	return nil
}
