package achievementservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo      *MockRepo
	catalog   *MockCatalog
	rewarder  *MockRewarder
	publisher *MockPublisher
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:      NewMockRepo(ctrl),
		catalog:   NewMockCatalog(ctrl),
		rewarder:  NewMockRewarder(ctrl),
		publisher: NewMockPublisher(ctrl),
	}
	return New(m.repo, m.catalog, m.rewarder, m.publisher), m
}

var (
	firstWallet = domain.Achievement{
		ID:           1,
		Name:         "First Wallet",
		Type:         domain.AchievementWalletCreated,
		CoinReward:   decimal.NewFromInt(10),
		Requirements: domain.Requirements{"wallet_count": 1},
		IsActive:     true,
	}
	walletMaster = domain.Achievement{
		ID:           2,
		Name:         "Wallet Master",
		Type:         domain.AchievementWalletCreated,
		CoinReward:   decimal.NewFromInt(50),
		Requirements: domain.Requirements{"wallet_count": 5},
		IsActive:     true,
	}
	milestone = domain.Achievement{
		ID:           3,
		Name:         "Explorer",
		Type:         domain.AchievementMilestone,
		Requirements: domain.Requirements{},
		IsActive:     true,
	}
)

func TestCheckAndUnlock(t *testing.T) {
	tests := []struct {
		name          string
		eventType     domain.AchievementType
		counters      domain.Counters
		prepareMock   func(m mocks)
		expectedNames []string
		expectErr     bool
	}{
		{
			name:      "Threshold reached unlocks both wallet achievements",
			eventType: domain.AchievementWalletCreated,
			counters:  domain.Counters{WalletCount: 5},
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{firstWallet, walletMaster}, nil)
				m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{}, nil)
				m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 1, false).Return(&domain.UserAchievement{ID: 10, UserID: 1, AchievementID: 1}, nil)
				m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 2, false).Return(&domain.UserAchievement{ID: 11, UserID: 1, AchievementID: 2}, nil)
				m.rewarder.EXPECT().CreditUser(gomock.Any(), 1, decimal.NewFromInt(10), "Achievement reward: First Wallet").Return(nil)
				m.rewarder.EXPECT().CreditUser(gomock.Any(), 1, decimal.NewFromInt(50), "Achievement reward: Wallet Master").Return(nil)
				m.publisher.EXPECT().PublishUnlocked(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			expectedNames: []string{"First Wallet", "Wallet Master"},
		},
		{
			name:      "Below threshold leaves achievement locked",
			eventType: domain.AchievementWalletCreated,
			counters:  domain.Counters{WalletCount: 4},
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{walletMaster}, nil)
				m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{}, nil)
			},
		},
		{
			name:      "Already unlocked is skipped",
			eventType: domain.AchievementWalletCreated,
			counters:  domain.Counters{WalletCount: 2},
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{firstWallet}, nil)
				m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{1: {}}, nil)
			},
		},
		{
			name:      "Lost race is a silent no-op",
			eventType: domain.AchievementWalletCreated,
			counters:  domain.Counters{WalletCount: 1},
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{firstWallet}, nil)
				m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{}, nil)
				m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 1, false).Return(nil, nil)
			},
		},
		{
			name:      "Milestone unlocks regardless of counters",
			eventType: domain.AchievementMilestone,
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementMilestone).Return([]domain.Achievement{milestone}, nil)
				m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(nil, nil)
				m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 3, false).Return(&domain.UserAchievement{ID: 12, AchievementID: 3}, nil)
				m.publisher.EXPECT().PublishUnlocked(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedNames: []string{"Explorer"},
		},
		{
			name:      "Reward and publish failures do not block unlock",
			eventType: domain.AchievementWalletCreated,
			counters:  domain.Counters{WalletCount: 1},
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{firstWallet}, nil)
				m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{}, nil)
				m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 1, false).Return(&domain.UserAchievement{ID: 10, AchievementID: 1}, nil)
				m.rewarder.EXPECT().CreditUser(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(errors.New("queue full"))
				m.publisher.EXPECT().PublishUnlocked(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			expectedNames: []string{"First Wallet"},
		},
		{
			name:      "No active achievements",
			eventType: domain.AchievementLessonComplete,
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementLessonComplete).Return(nil, nil)
			},
		},
		{
			name:      "Catalog failure",
			eventType: domain.AchievementLessonComplete,
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementLessonComplete).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
		{
			name:      "Unlock insert failure",
			eventType: domain.AchievementWalletCreated,
			counters:  domain.Counters{WalletCount: 1},
			prepareMock: func(m mocks) {
				m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{firstWallet}, nil)
				m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{}, nil)
				m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 1, false).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			unlocked, err := service.CheckAndUnlock(context.Background(), 1, tt.eventType, tt.counters)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(unlocked))
			for _, ua := range unlocked {
				names = append(names, ua.Achievement.Name)
			}
			assert.ElementsMatch(t, tt.expectedNames, names)
		})
	}
}

func TestCheckAndUnlock_Idempotent(t *testing.T) {
	service, m := NewMock(t)

	m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{firstWallet}, nil).Times(2)
	gomock.InOrder(
		m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{}, nil),
		m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{1: {}}, nil),
	)
	m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 1, false).Return(&domain.UserAchievement{ID: 10, AchievementID: 1}, nil).Times(1)
	m.rewarder.EXPECT().CreditUser(gomock.Any(), 1, decimal.NewFromInt(10), gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().PublishUnlocked(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := service.CheckAndUnlock(context.Background(), 1, domain.AchievementWalletCreated, domain.Counters{WalletCount: 1})
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := service.CheckAndUnlock(context.Background(), 1, domain.AchievementWalletCreated, domain.Counters{WalletCount: 1})
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestCheckAndUnlock_ConcurrentDuplicate(t *testing.T) {
	service, m := NewMock(t)

	m.catalog.EXPECT().ListActiveByType(gomock.Any(), domain.AchievementWalletCreated).Return([]domain.Achievement{firstWallet}, nil).Times(2)
	m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{}, nil).Times(2)

	var mu sync.Mutex
	inserted := false
	m.repo.EXPECT().CreateUnlock(gomock.Any(), 1, 1, false).DoAndReturn(func(_ context.Context, userID, achievementID int, _ bool) (*domain.UserAchievement, error) {
		mu.Lock()
		defer mu.Unlock()
		if inserted {
			return nil, nil
		}
		inserted = true
		return &domain.UserAchievement{ID: 10, UserID: userID, AchievementID: achievementID}, nil
	}).Times(2)
	m.rewarder.EXPECT().CreditUser(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().PublishUnlocked(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	results := make([][]domain.UserAchievement, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.CheckAndUnlock(context.Background(), 1, domain.AchievementWalletCreated, domain.Counters{WalletCount: 1})
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 1, len(results[0])+len(results[1]))
}

func TestUnlock(t *testing.T) {
	t.Run("Without notification", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().GetAchievement(gomock.Any(), 1).Return(&firstWallet, nil)
		m.repo.EXPECT().CreateUnlock(gomock.Any(), 5, 1, true).Return(&domain.UserAchievement{ID: 3, IsNotified: true}, nil)
		m.rewarder.EXPECT().CreditUser(gomock.Any(), 5, decimal.NewFromInt(10), "Achievement reward: First Wallet").Return(nil)
		m.publisher.EXPECT().PublishUnlocked(gomock.Any(), gomock.Any()).Return(nil)

		ua, created, err := service.Unlock(context.Background(), 5, 1, false)
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, ua.IsNotified)
		assert.Equal(t, "First Wallet", ua.Achievement.Name)
	})

	t.Run("Unknown achievement", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().GetAchievement(gomock.Any(), 99).Return(nil, nil)

		_, _, err := service.Unlock(context.Background(), 5, 99, true)
		assert.ErrorIs(t, err, ErrAchievementNotFound)
	})
}

func TestUserAchievements(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().ListActive(gomock.Any()).Return([]domain.Achievement{firstWallet, walletMaster, milestone}, nil)
	m.repo.EXPECT().UnlockedIDs(gomock.Any(), 1).Return(map[int]struct{}{1: {}, 3: {}}, nil)

	overview, err := service.UserAchievements(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, overview.Total)
	assert.Equal(t, 2, overview.UnlockedCount)
	assert.Equal(t, []domain.Achievement{walletMaster}, overview.Locked)
}

func TestMarkNotified(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m mocks)
		expectedErr error
	}{
		{
			name: "Marked",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().MarkNotified(gomock.Any(), 1, 10).Return(true, nil)
			},
		},
		{
			name: "Not owned by user",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().MarkNotified(gomock.Any(), 1, 10).Return(false, nil)
			},
			expectedErr: ErrUnlockNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			err := service.MarkNotified(context.Background(), 1, 10)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeedDefaults(t *testing.T) {
	service, m := NewMock(t)
	calls := 0
	m.repo.EXPECT().UpsertByName(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Achievement) (bool, error) {
		calls++
		assert.True(t, a.IsActive)
		return calls <= 4, nil
	}).Times(6)

	created, updated, err := service.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, created)
	assert.Equal(t, 2, updated)
}
