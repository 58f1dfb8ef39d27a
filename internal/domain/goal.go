package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SavingGoal has no stored progress: CurrentAmount is the sum of linked savings,
// filled in by the repository when the goal is loaded.
type SavingGoal struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	GoalName      string          `db:"goal_name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	ChildName     string          `db:"child_name"`
	Deadline      *time.Time      `db:"deadline"`
	Icon          string          `db:"icon"`
	Color         string          `db:"color"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
}

func (g *SavingGoal) ProgressPercentage() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	return decimal.Min(pct, hundred)
}

func (g *SavingGoal) RemainingAmount() decimal.Decimal {
	return decimal.Max(g.TargetAmount.Sub(g.CurrentAmount), decimal.Zero)
}

func (g *SavingGoal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
