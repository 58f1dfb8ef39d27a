package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSavingGoal_Progress(t *testing.T) {
	tests := []struct {
		name              string
		target            decimal.Decimal
		current           decimal.Decimal
		expectedPct       decimal.Decimal
		expectedRemaining decimal.Decimal
		expectedCompleted bool
	}{
		{
			name:              "Savings of 40 and 60 reach target of 100",
			target:            decimal.NewFromInt(100),
			current:           decimal.NewFromInt(40).Add(decimal.NewFromInt(60)),
			expectedPct:       decimal.NewFromInt(100),
			expectedRemaining: decimal.Zero,
			expectedCompleted: true,
		},
		{
			name:              "Overshoot is capped at 100 percent",
			target:            decimal.NewFromInt(100),
			current:           decimal.NewFromInt(101),
			expectedPct:       decimal.NewFromInt(100),
			expectedRemaining: decimal.Zero,
			expectedCompleted: true,
		},
		{
			name:              "Partial progress",
			target:            decimal.NewFromInt(80),
			current:           decimal.NewFromInt(20),
			expectedPct:       decimal.NewFromInt(25),
			expectedRemaining: decimal.NewFromInt(60),
			expectedCompleted: false,
		},
		{
			name:              "No savings yet",
			target:            decimal.NewFromInt(50),
			current:           decimal.Zero,
			expectedPct:       decimal.Zero,
			expectedRemaining: decimal.NewFromInt(50),
			expectedCompleted: false,
		},
		{
			name:              "Zero target guards division",
			target:            decimal.Zero,
			current:           decimal.NewFromInt(10),
			expectedPct:       decimal.Zero,
			expectedRemaining: decimal.Zero,
			expectedCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &SavingGoal{TargetAmount: tt.target, CurrentAmount: tt.current}

			assert.True(t, tt.expectedPct.Equal(goal.ProgressPercentage()), "progress %s", goal.ProgressPercentage())
			assert.True(t, tt.expectedRemaining.Equal(goal.RemainingAmount()), "remaining %s", goal.RemainingAmount())
			assert.Equal(t, tt.expectedCompleted, goal.IsCompleted())
		})
	}
}
