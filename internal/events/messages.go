package events

import (
	"encoding/json"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
)

const RoutingAchievementUnlocked = "achievement.unlocked"

// AchievementUnlockedMessage tells the notification side that a toast is pending.
type AchievementUnlockedMessage struct {
	UnlockID      int       `json:"unlock_id"`
	UserID        int       `json:"user_id"`
	AchievementID int       `json:"achievement_id"`
	Name          string    `json:"name"`
	Icon          string    `json:"icon"`
	CoinReward    string    `json:"coin_reward"`
	Notify        bool      `json:"notify"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

func NewAchievementUnlockedMessage(ua domain.UserAchievement) *AchievementUnlockedMessage {
	return &AchievementUnlockedMessage{
		UnlockID:      ua.ID,
		UserID:        ua.UserID,
		AchievementID: ua.AchievementID,
		Name:          ua.Achievement.Name,
		Icon:          ua.Achievement.Icon,
		CoinReward:    ua.Achievement.CoinReward.String(),
		Notify:        !ua.IsNotified,
		UnlockedAt:    ua.UnlockedAt,
	}
}

func (m *AchievementUnlockedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func AchievementUnlockedMessageFromJSON(data []byte) (*AchievementUnlockedMessage, error) {
	var msg AchievementUnlockedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
