package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PrizeCategory string

const (
	PrizeDigital     PrizeCategory = "digital"
	PrizePhysical    PrizeCategory = "physical"
	PrizePrivilege   PrizeCategory = "privilege"
	PrizeCertificate PrizeCategory = "certificate"
)

type PrizeStatus string

const (
	PrizeActive   PrizeStatus = "active"
	PrizeInactive PrizeStatus = "inactive"
	PrizeSoldOut  PrizeStatus = "sold_out"
)

// UnlimitedStock marks a prize that never sells out.
const UnlimitedStock = -1

type Prize struct {
	ID             int             `db:"id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	Icon           string          `db:"icon"`
	Category       PrizeCategory   `db:"category"`
	Status         PrizeStatus     `db:"status"`
	CoinCost       decimal.Decimal `db:"coin_cost"`
	StockQuantity  int             `db:"stock_quantity"`
	AvailableFrom  *time.Time      `db:"available_from"`
	AvailableUntil *time.Time      `db:"available_until"`
	Priority       int             `db:"priority"`
	IsFeatured     bool            `db:"is_featured"`
	MinAge         *int            `db:"min_age"`
	MaxAge         *int            `db:"max_age"`
}

func (p *Prize) HasLimitedStock() bool {
	return p.StockQuantity >= 0
}

// IsAvailableAt compares calendar days only.
func (p *Prize) IsAvailableAt(now time.Time) bool {
	if p.Status != PrizeActive {
		return false
	}
	today := truncateDay(now)
	if p.AvailableFrom != nil && today.Before(truncateDay(*p.AvailableFrom)) {
		return false
	}
	if p.AvailableUntil != nil && today.After(truncateDay(*p.AvailableUntil)) {
		return false
	}
	if p.HasLimitedStock() && p.StockQuantity <= 0 {
		return false
	}
	return true
}

func (p *Prize) RemainingStock() int {
	if !p.HasLimitedStock() {
		return UnlimitedStock
	}
	return p.StockQuantity
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PrizeFilter narrows the active prize catalog. Zero fields match everything.
type PrizeFilter struct {
	Category     PrizeCategory
	FeaturedOnly bool
	Query        string
}
