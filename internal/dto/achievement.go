package dto

import (
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
)

type AchievementDTO struct {
	ID          int             `json:"id" example:"1"`
	Name        string          `json:"name" example:"First Wallet"`
	Description string          `json:"description"`
	Icon        string          `json:"icon" example:"💰"`
	Color       string          `json:"color" example:"#28a745"`
	Type        string          `json:"achievement_type" example:"wallet_created"`
	CoinReward  decimal.Decimal `json:"coin_reward" swaggertype:"string" example:"10"`
}

func NewAchievement(a domain.Achievement) AchievementDTO {
	return AchievementDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		Color:       a.Color,
		Type:        string(a.Type),
		CoinReward:  a.CoinReward,
	}
}

func NewAchievements(list []domain.Achievement) []AchievementDTO {
	out := make([]AchievementDTO, len(list))
	for i, a := range list {
		out[i] = NewAchievement(a)
	}
	return out
}

// UnlockedDTO is one unlock record, returned by the actions that trigger it
// and by the notification poller.
type UnlockedDTO struct {
	ID          int            `json:"id" example:"3"`
	UnlockedAt  time.Time      `json:"unlocked_at"`
	Achievement AchievementDTO `json:"achievement"`
}

func NewUnlocked(list []domain.UserAchievement) []UnlockedDTO {
	out := make([]UnlockedDTO, len(list))
	for i, ua := range list {
		out[i] = UnlockedDTO{
			ID:          ua.ID,
			UnlockedAt:  ua.UnlockedAt,
			Achievement: NewAchievement(ua.Achievement),
		}
	}
	return out
}

type AchievementsResponseDTO struct {
	Unlocked      []AchievementDTO `json:"unlocked"`
	Locked        []AchievementDTO `json:"locked"`
	Total         int              `json:"total" example:"6"`
	UnlockedCount int              `json:"unlocked_count" example:"2"`
}

func NewAchievementOverview(o *domain.AchievementOverview) AchievementsResponseDTO {
	return AchievementsResponseDTO{
		Unlocked:      NewAchievements(o.Unlocked),
		Locked:        NewAchievements(o.Locked),
		Total:         o.Total,
		UnlockedCount: o.UnlockedCount,
	}
}
