package achievementservice

//go:generate mockgen -source=achievementservice.go -destination=mock_achievementservice.go -package=achievementservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	GetAchievement(ctx context.Context, achievementID int) (*domain.Achievement, error)
	ListActive(ctx context.Context) ([]domain.Achievement, error)
	UnlockedIDs(ctx context.Context, userID int) (map[int]struct{}, error)
	CreateUnlock(ctx context.Context, userID, achievementID int, isNotified bool) (*domain.UserAchievement, error)
	ListUnnotified(ctx context.Context, userID int) ([]domain.UserAchievement, error)
	MarkNotified(ctx context.Context, userID, unlockID int) (bool, error)
	UpsertByName(ctx context.Context, achievement *domain.Achievement) (bool, error)
}

// Catalog serves active achievements of one type. The repository satisfies it directly;
// a cache may sit in front of it.
type Catalog interface {
	ListActiveByType(ctx context.Context, achievementType domain.AchievementType) ([]domain.Achievement, error)
}

type Rewarder interface {
	CreditUser(ctx context.Context, userID int, amount decimal.Decimal, description string) error
}

type Publisher interface {
	PublishUnlocked(ctx context.Context, unlock domain.UserAchievement) error
}

type Service struct {
	repo      Repo
	catalog   Catalog
	rewarder  Rewarder
	publisher Publisher
}

func New(repo Repo, catalog Catalog, rewarder Rewarder, publisher Publisher) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Service{
		repo:      repo,
		catalog:   catalog,
		rewarder:  rewarder,
		publisher: publisher,
	}
}

var (
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrUnlockNotFound      = errors.New("unlocked achievement not found")
)

const rewardDescriptionPrefix = "Achievement reward: "

// CheckAndUnlock unlocks every active achievement of eventType the user does not have
// yet and whose requirements counters satisfy. Only newly created unlocks are returned.
func (s *Service) CheckAndUnlock(ctx context.Context, userID int, eventType domain.AchievementType, counters domain.Counters) ([]domain.UserAchievement, error) {
	achievements, err := s.catalog.ListActiveByType(ctx, eventType)
	if err != nil {
		zap.L().Error("failed to load achievements", zap.String("type", string(eventType)), zap.Error(err))
		return nil, err
	}
	if len(achievements) == 0 {
		return nil, nil
	}

	unlocked, err := s.repo.UnlockedIDs(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load unlocked achievements", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	var result []domain.UserAchievement
	for _, a := range achievements {
		if _, ok := unlocked[a.ID]; ok {
			continue
		}
		if !Qualifies(a, counters) {
			continue
		}
		ua, created, err := s.unlock(ctx, userID, a, true)
		if err != nil {
			return result, err
		}
		if created {
			result = append(result, *ua)
		}
	}
	return result, nil
}

// Unlock grants one achievement. The bool result is false when the user already had it.
func (s *Service) Unlock(ctx context.Context, userID, achievementID int, notify bool) (*domain.UserAchievement, bool, error) {
	a, err := s.repo.GetAchievement(ctx, achievementID)
	if err != nil {
		zap.L().Error("failed to get achievement", zap.Int("achievementID", achievementID), zap.Error(err))
		return nil, false, err
	}
	if a == nil {
		return nil, false, ErrAchievementNotFound
	}
	return s.unlock(ctx, userID, *a, notify)
}

func (s *Service) unlock(ctx context.Context, userID int, a domain.Achievement, notify bool) (*domain.UserAchievement, bool, error) {
	ua, err := s.repo.CreateUnlock(ctx, userID, a.ID, !notify)
	if err != nil {
		zap.L().Error("failed to unlock achievement", zap.Int("userID", userID), zap.Int("achievementID", a.ID), zap.Error(err))
		return nil, false, fmt.Errorf("unlock achievement %d: %w", a.ID, err)
	}
	if ua == nil {
		// Someone else unlocked it first.
		return nil, false, nil
	}
	ua.Achievement = a
	zap.L().Info("achievement unlocked", zap.Int("userID", userID), zap.String("achievement", a.Name))

	if a.CoinReward.IsPositive() {
		if err := s.rewarder.CreditUser(ctx, userID, a.CoinReward, rewardDescriptionPrefix+a.Name); err != nil {
			zap.L().Warn("achievement reward not queued", zap.Int("userID", userID), zap.Int("achievementID", a.ID), zap.Error(err))
		}
	}
	if err := s.publisher.PublishUnlocked(ctx, *ua); err != nil {
		zap.L().Warn("failed to publish unlock", zap.Int("unlockID", ua.ID), zap.Error(err))
	}
	return ua, true, nil
}

func (s *Service) UserAchievements(ctx context.Context, userID int) (*domain.AchievementOverview, error) {
	all, err := s.repo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list achievements", zap.Error(err))
		return nil, err
	}
	unlocked, err := s.repo.UnlockedIDs(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load unlocked achievements", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	overview := &domain.AchievementOverview{
		Unlocked: []domain.Achievement{},
		Locked:   []domain.Achievement{},
		Total:    len(all),
	}
	for _, a := range all {
		if _, ok := unlocked[a.ID]; ok {
			overview.Unlocked = append(overview.Unlocked, a)
		} else {
			overview.Locked = append(overview.Locked, a)
		}
	}
	overview.UnlockedCount = len(overview.Unlocked)
	return overview, nil
}

func (s *Service) Unnotified(ctx context.Context, userID int) ([]domain.UserAchievement, error) {
	list, err := s.repo.ListUnnotified(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list unnotified achievements", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) MarkNotified(ctx context.Context, userID, unlockID int) error {
	ok, err := s.repo.MarkNotified(ctx, userID, unlockID)
	if err != nil {
		zap.L().Error("failed to mark achievement notified", zap.Int("unlockID", unlockID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrUnlockNotFound
	}
	return nil
}

// SeedDefaults upserts the built-in catalog by name and returns how many rows were created and updated.
func (s *Service) SeedDefaults(ctx context.Context) (created, updated int, err error) {
	for _, a := range DefaultAchievements() {
		a := a
		isNew, err := s.repo.UpsertByName(ctx, &a)
		if err != nil {
			zap.L().Error("failed to seed achievement", zap.String("name", a.Name), zap.Error(err))
			return created, updated, err
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	zap.L().Info("achievements seeded", zap.Int("created", created), zap.Int("updated", updated))
	return created, updated, nil
}

type NopPublisher struct{}

func (NopPublisher) PublishUnlocked(context.Context, domain.UserAchievement) error { return nil }
