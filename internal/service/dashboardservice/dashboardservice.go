package dashboardservice

//go:generate mockgen -source=dashboardservice.go -destination=mock_dashboardservice.go -package=dashboardservice

import (
	"context"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Wallets interface {
	SummaryFor(ctx context.Context, userID int) (*domain.WalletSummary, error)
}

type Lessons interface {
	Statistics(ctx context.Context, userID int) (*domain.LessonStatistics, error)
}

type Achievements interface {
	UserAchievements(ctx context.Context, userID int) (*domain.AchievementOverview, error)
}

type Goals interface {
	ListGoals(ctx context.Context, userID int) ([]domain.SavingGoal, error)
}

type Service struct {
	wallets      Wallets
	lessons      Lessons
	achievements Achievements
	goals        Goals
}

func New(wallets Wallets, lessons Lessons, achievements Achievements, goals Goals) *Service {
	return &Service{
		wallets:      wallets,
		lessons:      lessons,
		achievements: achievements,
		goals:        goals,
	}
}

// Dashboard loads every section concurrently. The first failure cancels the rest.
func (s *Service) Dashboard(ctx context.Context, userID int) (*domain.Dashboard, error) {
	var d domain.Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Wallets, err = s.wallets.SummaryFor(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Lessons, err = s.lessons.Statistics(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Achievements, err = s.achievements.UserAchievements(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Goals, err = s.goals.ListGoals(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load dashboard", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return &d, nil
}
