package achievementservice

import (
	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
)

var defaultAchievements = []domain.Achievement{
	{
		Name:         "First Wallet",
		Description:  "Create your first wallet",
		Icon:         "💼",
		Color:        "#667eea",
		Type:         domain.AchievementWalletCreated,
		CoinReward:   decimal.NewFromInt(10),
		Requirements: domain.Requirements{"wallet_count": 1},
		Order:        1,
	},
	{
		Name:         "Wallet Master",
		Description:  "Create 5 wallets",
		Icon:         "🎯",
		Color:        "#764ba2",
		Type:         domain.AchievementWalletCreated,
		CoinReward:   decimal.NewFromInt(50),
		Requirements: domain.Requirements{"wallet_count": 5},
		Order:        2,
	},
	{
		Name:         "First Saving Goal",
		Description:  "Complete your first saving goal",
		Icon:         "🎯",
		Color:        "#28a745",
		Type:         domain.AchievementSavingGoalReached,
		CoinReward:   decimal.NewFromInt(25),
		Requirements: domain.Requirements{},
		Order:        3,
	},
	{
		Name:         "Saving Champion",
		Description:  "Complete 5 saving goals",
		Icon:         "🏆",
		Color:        "#ffc107",
		Type:         domain.AchievementSavingGoalReached,
		CoinReward:   decimal.NewFromInt(100),
		Requirements: domain.Requirements{},
		Order:        4,
	},
	{
		Name:         "Spending Tracker",
		Description:  "Track your first spending",
		Icon:         "💰",
		Color:        "#dc3545",
		Type:         domain.AchievementSpendingTracked,
		CoinReward:   decimal.NewFromInt(15),
		Requirements: domain.Requirements{"spending_count": 1},
		Order:        5,
	},
	{
		Name:         "Budget Master",
		Description:  "Track 20 spending records",
		Icon:         "📊",
		Color:        "#17a2b8",
		Type:         domain.AchievementSpendingTracked,
		CoinReward:   decimal.NewFromInt(75),
		Requirements: domain.Requirements{"spending_count": 20},
		Order:        6,
	},
}

// DefaultAchievements returns a copy of the built-in catalog.
func DefaultAchievements() []domain.Achievement {
	out := make([]domain.Achievement, len(defaultAchievements))
	copy(out, defaultAchievements)
	for i := range out {
		out[i].IsActive = true
	}
	return out
}
