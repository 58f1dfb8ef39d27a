package dto

import "github.com/GlebRadaev/coinkids/internal/domain"

type DashboardResponseDTO struct {
	Wallets      WalletSummaryResponseDTO `json:"wallets"`
	Lessons      LessonStatisticsDTO      `json:"lessons"`
	Achievements AchievementsResponseDTO  `json:"achievements"`
	Goals        []GoalDTO                `json:"saving_goals"`
}

func NewDashboard(d *domain.Dashboard) DashboardResponseDTO {
	return DashboardResponseDTO{
		Wallets:      NewWalletSummary(d.Wallets),
		Lessons:      NewLessonStatistics(d.Lessons),
		Achievements: NewAchievementOverview(d.Achievements),
		Goals:        NewGoals(d.Goals),
	}
}
