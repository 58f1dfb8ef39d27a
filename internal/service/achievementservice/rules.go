package achievementservice

import "github.com/GlebRadaev/coinkids/internal/domain"

// Qualifies reports whether counters satisfy the achievement's requirements.
func Qualifies(a domain.Achievement, counters domain.Counters) bool {
	req := a.Requirements
	switch a.Type {
	case domain.AchievementWalletCreated:
		return reaches(req, "wallet_count", counters.WalletCount)
	case domain.AchievementSpendingTracked:
		return reaches(req, "spending_count", counters.TrackedCount)
	case domain.AchievementLessonComplete:
		return reaches(req, "lesson_count", counters.CompletedCount)
	case domain.AchievementSavingGoalReached:
		if !req.Has("goal_id") {
			return true
		}
		target, ok := req.Number("goal_id")
		return ok && counters.GoalID != nil && float64(*counters.GoalID) == target
	case domain.AchievementMilestone:
		// Milestone rules are not defined yet.
		return true
	}
	return false
}

// reaches compares count with the threshold under key. An absent threshold is 1; a
// non-numeric one is never reached.
func reaches(req domain.Requirements, key string, count int) bool {
	if !req.Has(key) {
		return count >= 1
	}
	need, ok := req.Number(key)
	return ok && float64(count) >= need
}
