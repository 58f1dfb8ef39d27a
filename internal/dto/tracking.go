package dto

import (
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Food"`
	Icon        string `json:"icon" example:"🍔"`
	Color       string `json:"color" example:"#FF6B6B"`
	Description string `json:"description"`
}

func NewCategories(list []domain.SpendingCategory) []CategoryDTO {
	out := make([]CategoryDTO, len(list))
	for i, c := range list {
		out[i] = CategoryDTO{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color, Description: c.Description}
	}
	return out
}

type SpendingRequestDTO struct {
	CategoryID     *int            `json:"category_id" example:"1"`
	CustomCategory string          `json:"custom_category" validate:"max=50" example:""`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"4.5"`
	Description    string          `json:"description" validate:"max=200" example:"Ice cream"`
	ChildName      string          `json:"child_name" validate:"max=50" example:"Anna"`
	Date           string          `json:"date" validate:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
}

type SpendingDTO struct {
	ID          int             `json:"id" example:"1"`
	CategoryID  *int            `json:"category_id" example:"1"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"4.5"`
	Description string          `json:"description" example:"Ice cream"`
	ChildName   string          `json:"child_name" example:"Anna"`
	Date        string          `json:"date" example:"2024-06-01"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewSpending(s domain.Spending) SpendingDTO {
	return SpendingDTO{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Amount:      s.Amount,
		Description: s.Description,
		ChildName:   s.ChildName,
		Date:        s.Date.Format(DateLayout),
		CreatedAt:   s.CreatedAt,
	}
}

func NewSpendings(list []domain.Spending) []SpendingDTO {
	out := make([]SpendingDTO, len(list))
	for i, s := range list {
		out[i] = NewSpending(s)
	}
	return out
}

type SpendingResponseDTO struct {
	Spending SpendingDTO   `json:"spending"`
	Unlocked []UnlockedDTO `json:"unlocked_achievements"`
}

type CategoryTotalDTO struct {
	CategoryID   *int            `json:"category_id" example:"1"`
	CategoryName string          `json:"category_name" example:"Food"`
	Total        decimal.Decimal `json:"total" swaggertype:"string" example:"12.5"`
	Count        int             `json:"count" example:"3"`
}

func NewCategoryTotals(list []domain.CategoryTotal) []CategoryTotalDTO {
	out := make([]CategoryTotalDTO, len(list))
	for i, c := range list {
		out[i] = CategoryTotalDTO{CategoryID: c.CategoryID, CategoryName: c.CategoryName, Total: c.Total, Count: c.Count}
	}
	return out
}

type SavingRequestDTO struct {
	SavingGoalID *int            `json:"saving_goal_id" example:"2"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"5"`
	Description  string          `json:"description" validate:"max=200" example:"Birthday money"`
	ChildName    string          `json:"child_name" validate:"max=50" example:"Anna"`
	Date         string          `json:"date" validate:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
}

type SavingDTO struct {
	ID           int             `json:"id" example:"1"`
	SavingGoalID *int            `json:"saving_goal_id" example:"2"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"5"`
	Description  string          `json:"description" example:"Birthday money"`
	ChildName    string          `json:"child_name" example:"Anna"`
	Date         string          `json:"date" example:"2024-06-01"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewSaving(s domain.Saving) SavingDTO {
	return SavingDTO{
		ID:           s.ID,
		SavingGoalID: s.SavingGoalID,
		Amount:       s.Amount,
		Description:  s.Description,
		ChildName:    s.ChildName,
		Date:         s.Date.Format(DateLayout),
		CreatedAt:    s.CreatedAt,
	}
}

func NewSavings(list []domain.Saving) []SavingDTO {
	out := make([]SavingDTO, len(list))
	for i, s := range list {
		out[i] = NewSaving(s)
	}
	return out
}

type SavingResponseDTO struct {
	Saving   SavingDTO     `json:"saving"`
	Unlocked []UnlockedDTO `json:"unlocked_achievements"`
}

type GoalRequestDTO struct {
	GoalName     string          `json:"goal_name" validate:"required,max=100" example:"New bike"`
	TargetAmount decimal.Decimal `json:"target_amount" swaggertype:"string" example:"150"`
	ChildName    string          `json:"child_name" validate:"max=50" example:"Anna"`
	Deadline     string          `json:"deadline" validate:"omitempty,datetime=2006-01-02" example:"2024-12-24"`
	Icon         string          `json:"icon" validate:"max=10" example:"🚲"`
	Color        string          `json:"color" validate:"omitempty,hexcolor" example:"#28a745"`
	Description  string          `json:"description" example:""`
}

type GoalDTO struct {
	ID                 int             `json:"id" example:"2"`
	GoalName           string          `json:"goal_name" example:"New bike"`
	TargetAmount       decimal.Decimal `json:"target_amount" swaggertype:"string" example:"150"`
	CurrentAmount      decimal.Decimal `json:"current_amount" swaggertype:"string" example:"60"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount" swaggertype:"string" example:"90"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage" swaggertype:"string" example:"40"`
	IsCompleted        bool            `json:"is_completed"`
	ChildName          string          `json:"child_name" example:"Anna"`
	Deadline           string          `json:"deadline,omitempty" example:"2024-12-24"`
	Icon               string          `json:"icon" example:"🎯"`
	Color              string          `json:"color" example:"#28a745"`
	Description        string          `json:"description"`
	CreatedAt          time.Time       `json:"created_at"`
}

func NewGoal(g domain.SavingGoal) GoalDTO {
	return GoalDTO{
		ID:                 g.ID,
		GoalName:           g.GoalName,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		RemainingAmount:    g.RemainingAmount(),
		ProgressPercentage: g.ProgressPercentage().Round(2),
		IsCompleted:        g.IsCompleted(),
		ChildName:          g.ChildName,
		Deadline:           formatOptionalDate(g.Deadline),
		Icon:               g.Icon,
		Color:              g.Color,
		Description:        g.Description,
		CreatedAt:          g.CreatedAt,
	}
}

func NewGoals(list []domain.SavingGoal) []GoalDTO {
	out := make([]GoalDTO, len(list))
	for i, g := range list {
		out[i] = NewGoal(g)
	}
	return out
}
