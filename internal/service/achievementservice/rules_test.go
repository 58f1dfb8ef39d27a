package achievementservice

import (
	"testing"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQualifies(t *testing.T) {
	goal := func(id int) *int { return &id }

	tests := []struct {
		name     string
		a        domain.Achievement
		counters domain.Counters
		want     bool
	}{
		{
			name:     "Wallet count reaches threshold",
			a:        domain.Achievement{Type: domain.AchievementWalletCreated, Requirements: domain.Requirements{"wallet_count": 5}},
			counters: domain.Counters{WalletCount: 5},
			want:     true,
		},
		{
			name:     "Wallet count below threshold",
			a:        domain.Achievement{Type: domain.AchievementWalletCreated, Requirements: domain.Requirements{"wallet_count": 5}},
			counters: domain.Counters{WalletCount: 4},
		},
		{
			name:     "Wallet count default threshold",
			a:        domain.Achievement{Type: domain.AchievementWalletCreated},
			counters: domain.Counters{WalletCount: 1},
			want:     true,
		},
		{
			name:     "Threshold decoded from JSON as float",
			a:        domain.Achievement{Type: domain.AchievementSpendingTracked, Requirements: domain.Requirements{"spending_count": float64(20)}},
			counters: domain.Counters{TrackedCount: 19},
		},
		{
			name:     "Spending default threshold",
			a:        domain.Achievement{Type: domain.AchievementSpendingTracked, Requirements: domain.Requirements{}},
			counters: domain.Counters{TrackedCount: 1},
			want:     true,
		},
		{
			name:     "Spending without records",
			a:        domain.Achievement{Type: domain.AchievementSpendingTracked},
			counters: domain.Counters{},
		},
		{
			name:     "Lesson count reached",
			a:        domain.Achievement{Type: domain.AchievementLessonComplete, Requirements: domain.Requirements{"lesson_count": 3}},
			counters: domain.Counters{CompletedCount: 3},
			want:     true,
		},
		{
			name:     "Any goal completes when none is required",
			a:        domain.Achievement{Type: domain.AchievementSavingGoalReached},
			counters: domain.Counters{GoalID: goal(7)},
			want:     true,
		},
		{
			name:     "Null goal id means any goal",
			a:        domain.Achievement{Type: domain.AchievementSavingGoalReached, Requirements: domain.Requirements{"goal_id": nil}},
			counters: domain.Counters{},
			want:     true,
		},
		{
			name:     "Specific goal matches",
			a:        domain.Achievement{Type: domain.AchievementSavingGoalReached, Requirements: domain.Requirements{"goal_id": float64(7)}},
			counters: domain.Counters{GoalID: goal(7)},
			want:     true,
		},
		{
			name:     "Specific goal differs",
			a:        domain.Achievement{Type: domain.AchievementSavingGoalReached, Requirements: domain.Requirements{"goal_id": 7}},
			counters: domain.Counters{GoalID: goal(8)},
		},
		{
			name:     "Specific goal without reported goal",
			a:        domain.Achievement{Type: domain.AchievementSavingGoalReached, Requirements: domain.Requirements{"goal_id": 7}},
			counters: domain.Counters{},
		},
		{
			name:     "Fractional threshold compared as number",
			a:        domain.Achievement{Type: domain.AchievementWalletCreated, Requirements: domain.Requirements{"wallet_count": 2.5}},
			counters: domain.Counters{WalletCount: 2},
		},
		{
			name:     "Fractional threshold reached",
			a:        domain.Achievement{Type: domain.AchievementWalletCreated, Requirements: domain.Requirements{"wallet_count": 2.5}},
			counters: domain.Counters{WalletCount: 3},
			want:     true,
		},
		{
			name:     "Non-numeric threshold never unlocks",
			a:        domain.Achievement{Type: domain.AchievementWalletCreated, Requirements: domain.Requirements{"wallet_count": "five"}},
			counters: domain.Counters{WalletCount: 1},
		},
		{
			name:     "Numeric string threshold is not converted",
			a:        domain.Achievement{Type: domain.AchievementLessonComplete, Requirements: domain.Requirements{"lesson_count": "1"}},
			counters: domain.Counters{CompletedCount: 10},
		},
		{
			name:     "Goal id as string does not match",
			a:        domain.Achievement{Type: domain.AchievementSavingGoalReached, Requirements: domain.Requirements{"goal_id": "5"}},
			counters: domain.Counters{GoalID: goal(5)},
		},
		{
			name:     "Fractional goal id does not match",
			a:        domain.Achievement{Type: domain.AchievementSavingGoalReached, Requirements: domain.Requirements{"goal_id": 5.5}},
			counters: domain.Counters{GoalID: goal(5)},
		},
		{
			name: "Milestone always unlocks",
			a:    domain.Achievement{Type: domain.AchievementMilestone},
			want: true,
		},
		{
			name:     "Unknown type never unlocks",
			a:        domain.Achievement{Type: "birthday"},
			counters: domain.Counters{WalletCount: 100, TrackedCount: 100, CompletedCount: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Qualifies(tt.a, tt.counters))
		})
	}
}
