package lessonservice

//go:generate mockgen -source=lessonservice.go -destination=mock_lessonservice.go -package=lessonservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	ListPublished(ctx context.Context) ([]domain.Lesson, error)
	GetPublished(ctx context.Context, lessonID int) (*domain.Lesson, error)
	NextPublished(ctx context.Context, lessonNumber int) (*domain.Lesson, error)
	ListProgress(ctx context.Context, userID int) ([]domain.LessonProgress, error)
	GetProgress(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error)
	Start(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error)
	Complete(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error)
	Reopen(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error)
	CountByStatus(ctx context.Context, userID int, status domain.ProgressStatus) (int, error)
}

type Wallets interface {
	FirstWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, userID int, wallet *domain.Wallet) (*domain.Wallet, []domain.UserAchievement, error)
}

type Rewarder interface {
	CreditWallet(ctx context.Context, walletID int, amount decimal.Decimal, description string) error
}

type AchievementChecker interface {
	CheckAndUnlock(ctx context.Context, userID int, eventType domain.AchievementType, counters domain.Counters) ([]domain.UserAchievement, error)
}

type Service struct {
	repo         Repo
	wallets      Wallets
	rewarder     Rewarder
	achievements AchievementChecker
}

func New(repo Repo, wallets Wallets, rewarder Rewarder, achievements AchievementChecker) *Service {
	return &Service{
		repo:         repo,
		wallets:      wallets,
		rewarder:     rewarder,
		achievements: achievements,
	}
}

var ErrLessonNotFound = errors.New("lesson not found")

const rewardDescriptionPrefix = "Lesson completion reward: "

func (s *Service) ListWithProgress(ctx context.Context, userID int) ([]domain.LessonWithProgress, error) {
	lessons, err := s.repo.ListPublished(ctx)
	if err != nil {
		zap.L().Error("failed to list lessons", zap.Error(err))
		return nil, err
	}
	progress, err := s.repo.ListProgress(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list lesson progress", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	status := make(map[int]domain.ProgressStatus, len(progress))
	for _, p := range progress {
		status[p.LessonID] = p.Status
	}
	out := make([]domain.LessonWithProgress, 0, len(lessons))
	for _, l := range lessons {
		st, ok := status[l.ID]
		if !ok {
			st = domain.ProgressNotStarted
		}
		out = append(out, domain.LessonWithProgress{Lesson: l, Status: st})
	}
	return out, nil
}

func (s *Service) Statistics(ctx context.Context, userID int) (*domain.LessonStatistics, error) {
	lessons, err := s.repo.ListPublished(ctx)
	if err != nil {
		zap.L().Error("failed to list lessons", zap.Error(err))
		return nil, err
	}
	completed, err := s.repo.CountByStatus(ctx, userID, domain.ProgressCompleted)
	if err != nil {
		zap.L().Error("failed to count completed lessons", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	inProgress, err := s.repo.CountByStatus(ctx, userID, domain.ProgressInProgress)
	if err != nil {
		zap.L().Error("failed to count lessons in progress", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	stats := &domain.LessonStatistics{
		TotalLessons:    len(lessons),
		CompletedCount:  completed,
		InProgressCount: inProgress,
		NotStartedCount: len(lessons) - completed - inProgress,
	}
	if stats.NotStartedCount < 0 {
		stats.NotStartedCount = 0
	}
	if stats.TotalLessons > 0 {
		stats.CompletionPercentage = float64(completed) / float64(stats.TotalLessons) * 100
	}
	return stats, nil
}

func (s *Service) Get(ctx context.Context, lessonID int) (*domain.Lesson, error) {
	lesson, err := s.repo.GetPublished(ctx, lessonID)
	if err != nil {
		zap.L().Error("failed to get lesson", zap.Int("lessonID", lessonID), zap.Error(err))
		return nil, err
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}

// Next returns the published lesson after the given one, or nil at the end of the course.
func (s *Service) Next(ctx context.Context, lessonID int) (*domain.Lesson, error) {
	lesson, err := s.Get(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	next, err := s.repo.NextPublished(ctx, lesson.LessonNumber)
	if err != nil {
		zap.L().Error("failed to get next lesson", zap.Int("lessonID", lessonID), zap.Error(err))
		return nil, err
	}
	return next, nil
}

// Start moves a not started lesson to in progress. Other states are returned unchanged.
func (s *Service) Start(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error) {
	if _, err := s.Get(ctx, lessonID); err != nil {
		return nil, err
	}
	progress, err := s.repo.Start(ctx, userID, lessonID)
	if err != nil {
		zap.L().Error("failed to start lesson", zap.Int("lessonID", lessonID), zap.Error(err))
		return nil, err
	}
	if progress != nil {
		return progress, nil
	}
	return s.current(ctx, userID, lessonID)
}

// Complete marks the lesson completed. Only a real transition into completed pays the
// lesson reward and reports lesson_complete; repeating it returns the stored progress.
func (s *Service) Complete(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, []domain.UserAchievement, error) {
	lesson, err := s.Get(ctx, lessonID)
	if err != nil {
		return nil, nil, err
	}
	progress, err := s.repo.Complete(ctx, userID, lessonID)
	if err != nil {
		zap.L().Error("failed to complete lesson", zap.Int("lessonID", lessonID), zap.Error(err))
		return nil, nil, err
	}
	if progress == nil {
		p, err := s.current(ctx, userID, lessonID)
		return p, nil, err
	}

	zap.L().Info("lesson completed", zap.Int("userID", userID), zap.Int("lessonID", lessonID))
	unlocked := s.reward(ctx, userID, lesson)
	return progress, append(unlocked, s.lessonCompleted(ctx, userID)...), nil
}

// Reopen moves a completed lesson back to in progress.
func (s *Service) Reopen(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error) {
	if _, err := s.Get(ctx, lessonID); err != nil {
		return nil, err
	}
	progress, err := s.repo.Reopen(ctx, userID, lessonID)
	if err != nil {
		zap.L().Error("failed to reopen lesson", zap.Int("lessonID", lessonID), zap.Error(err))
		return nil, err
	}
	if progress != nil {
		return progress, nil
	}
	return s.current(ctx, userID, lessonID)
}

func (s *Service) current(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error) {
	progress, err := s.repo.GetProgress(ctx, userID, lessonID)
	if err != nil {
		zap.L().Error("failed to get lesson progress", zap.Int("lessonID", lessonID), zap.Error(err))
		return nil, err
	}
	if progress == nil {
		progress = &domain.LessonProgress{UserID: userID, LessonID: lessonID, Status: domain.ProgressNotStarted}
	}
	return progress, nil
}

// reward credits the lesson coins to the first wallet, creating a default wallet when
// the user has none. Achievements unlocked by that wallet are returned.
func (s *Service) reward(ctx context.Context, userID int, lesson *domain.Lesson) []domain.UserAchievement {
	if !lesson.CoinReward.IsPositive() {
		return nil
	}
	wallet, err := s.wallets.FirstWallet(ctx, userID)
	if err != nil {
		zap.L().Error("lesson reward skipped", zap.Int("userID", userID), zap.Error(err))
		return nil
	}

	var unlocked []domain.UserAchievement
	if wallet == nil {
		wallet, unlocked, err = s.wallets.CreateWallet(ctx, userID, &domain.Wallet{})
		if err != nil {
			zap.L().Error("failed to create default wallet for lesson reward", zap.Int("userID", userID), zap.Error(err))
			return nil
		}
	}

	if err := s.rewarder.CreditWallet(ctx, wallet.ID, lesson.CoinReward, rewardDescriptionPrefix+lesson.Title); err != nil {
		zap.L().Error("lesson reward not queued", zap.Int("walletID", wallet.ID), zap.Error(err))
	}
	return unlocked
}

func (s *Service) lessonCompleted(ctx context.Context, userID int) []domain.UserAchievement {
	count, err := s.repo.CountByStatus(ctx, userID, domain.ProgressCompleted)
	if err != nil {
		zap.L().Error("failed to count completed lessons", zap.Int("userID", userID), zap.Error(err))
		return nil
	}
	unlocked, err := s.achievements.CheckAndUnlock(ctx, userID, domain.AchievementLessonComplete, domain.Counters{CompletedCount: count})
	if err != nil {
		zap.L().Error("achievement check failed", zap.String("event", string(domain.AchievementLessonComplete)), zap.Error(err))
		return nil
	}
	return unlocked
}
