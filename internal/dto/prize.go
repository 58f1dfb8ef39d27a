package dto

import (
	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
)

type PrizeDTO struct {
	ID             int             `json:"id" example:"1"`
	Name           string          `json:"name" example:"Movie night"`
	Description    string          `json:"description"`
	Icon           string          `json:"icon" example:"🎬"`
	Category       string          `json:"category" example:"privilege"`
	Status         string          `json:"status" example:"active"`
	CoinCost       decimal.Decimal `json:"coin_cost" swaggertype:"string" example:"30"`
	RemainingStock int             `json:"remaining_stock" example:"-1"`
	AvailableFrom  string          `json:"available_from,omitempty" example:"2024-06-01"`
	AvailableUntil string          `json:"available_until,omitempty" example:"2024-08-31"`
	IsFeatured     bool            `json:"is_featured"`
	MinAge         *int            `json:"min_age,omitempty"`
	MaxAge         *int            `json:"max_age,omitempty"`
}

func NewPrize(p domain.Prize) PrizeDTO {
	return PrizeDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Icon:           p.Icon,
		Category:       string(p.Category),
		Status:         string(p.Status),
		CoinCost:       p.CoinCost,
		RemainingStock: p.RemainingStock(),
		AvailableFrom:  formatOptionalDate(p.AvailableFrom),
		AvailableUntil: formatOptionalDate(p.AvailableUntil),
		IsFeatured:     p.IsFeatured,
		MinAge:         p.MinAge,
		MaxAge:         p.MaxAge,
	}
}

func NewPrizes(list []domain.Prize) []PrizeDTO {
	out := make([]PrizeDTO, len(list))
	for i, p := range list {
		out[i] = NewPrize(p)
	}
	return out
}

type PrizeDetailResponseDTO struct {
	Prize     PrizeDTO `json:"prize"`
	CanRedeem bool     `json:"can_redeem"`
	Reason    string   `json:"reason,omitempty" example:"not enough coins to redeem this prize"`
}

type RedeemRequestDTO struct {
	WalletID int `json:"wallet_id" validate:"gte=0" example:"1"`
}

type PrizeQueryDTO struct {
	Category string `validate:"omitempty,oneof=digital physical privilege certificate"`
	Query    string `validate:"max=100"`
}
