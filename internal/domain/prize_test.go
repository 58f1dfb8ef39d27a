package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrize_IsAvailableAt(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	sameDayMorning := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prize    Prize
		expected bool
	}{
		{"Active with unlimited stock", Prize{Status: PrizeActive, StockQuantity: UnlimitedStock}, true},
		{"Inactive", Prize{Status: PrizeInactive, StockQuantity: UnlimitedStock}, false},
		{"Sold out status", Prize{Status: PrizeSoldOut, StockQuantity: 3}, false},
		{"Stock exhausted", Prize{Status: PrizeActive, StockQuantity: 0}, false},
		{"Stock left", Prize{Status: PrizeActive, StockQuantity: 1}, true},
		{"Not yet available", Prize{Status: PrizeActive, StockQuantity: UnlimitedStock, AvailableFrom: &tomorrow}, false},
		{"Expired", Prize{Status: PrizeActive, StockQuantity: UnlimitedStock, AvailableUntil: &yesterday}, false},
		{"Window ends today", Prize{Status: PrizeActive, StockQuantity: UnlimitedStock, AvailableUntil: &sameDayMorning}, true},
		{"Inside window", Prize{Status: PrizeActive, StockQuantity: UnlimitedStock, AvailableFrom: &yesterday, AvailableUntil: &tomorrow}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.prize.IsAvailableAt(now))
		})
	}
}

func TestPrize_RemainingStock(t *testing.T) {
	assert.Equal(t, UnlimitedStock, (&Prize{StockQuantity: UnlimitedStock}).RemainingStock())
	assert.Equal(t, 4, (&Prize{StockQuantity: 4}).RemainingStock())
}
