package dto

import (
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
)

type LessonDTO struct {
	ID              int             `json:"id" example:"1"`
	Title           string          `json:"title" example:"Needs and Wants"`
	Slug            string          `json:"slug" example:"needs-and-wants"`
	Subtitle        string          `json:"subtitle"`
	Description     string          `json:"description"`
	Icon            string          `json:"icon" example:"💰"`
	LessonNumber    int             `json:"lesson_number" example:"1"`
	AgeRange        string          `json:"age_range" example:"6-12"`
	DurationMinutes int             `json:"duration_minutes" example:"15"`
	CoinReward      decimal.Decimal `json:"coin_reward" swaggertype:"string" example:"50"`
	Status          string          `json:"progress_status,omitempty" example:"in_progress"`
}

func NewLesson(l domain.Lesson) LessonDTO {
	return LessonDTO{
		ID:              l.ID,
		Title:           l.Title,
		Slug:            l.Slug,
		Subtitle:        l.Subtitle,
		Description:     l.Description,
		Icon:            l.Icon,
		LessonNumber:    l.LessonNumber,
		AgeRange:        l.AgeRange,
		DurationMinutes: l.DurationMinutes,
		CoinReward:      l.CoinReward,
	}
}

func NewLessonsWithProgress(list []domain.LessonWithProgress) []LessonDTO {
	out := make([]LessonDTO, len(list))
	for i, lp := range list {
		out[i] = NewLesson(lp.Lesson)
		out[i].Status = string(lp.Status)
	}
	return out
}

type LessonProgressDTO struct {
	LessonID    int        `json:"lesson_id" example:"1"`
	Status      string     `json:"status" example:"completed"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func NewLessonProgress(p *domain.LessonProgress) LessonProgressDTO {
	return LessonProgressDTO{
		LessonID:    p.LessonID,
		Status:      string(p.Status),
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
	}
}

type CompleteLessonResponseDTO struct {
	Progress   LessonProgressDTO `json:"progress"`
	NextLesson *LessonDTO        `json:"next_lesson"`
	Unlocked   []UnlockedDTO     `json:"unlocked_achievements"`
}

type LessonStatisticsDTO struct {
	TotalLessons         int     `json:"total_lessons" example:"8"`
	CompletedCount       int     `json:"completed_count" example:"2"`
	InProgressCount      int     `json:"in_progress_count" example:"1"`
	NotStartedCount      int     `json:"not_started_count" example:"5"`
	CompletionPercentage float64 `json:"completion_percentage" example:"25"`
}

func NewLessonStatistics(s *domain.LessonStatistics) LessonStatisticsDTO {
	return LessonStatisticsDTO{
		TotalLessons:         s.TotalLessons,
		CompletedCount:       s.CompletedCount,
		InProgressCount:      s.InProgressCount,
		NotStartedCount:      s.NotStartedCount,
		CompletionPercentage: s.CompletionPercentage,
	}
}
