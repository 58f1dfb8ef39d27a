package dto

import (
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateWalletRequestDTO struct {
	ChildName              string          `json:"child_name" validate:"max=50" example:"Anna"`
	CoinName               string          `json:"coin_name" validate:"max=50" example:"Star"`
	CoinIcon               string          `json:"coin_icon" validate:"max=10" example:"⭐"`
	IsPracticeMode         bool            `json:"is_practice_mode"`
	PracticeInitialBalance decimal.Decimal `json:"practice_initial_balance" swaggertype:"string" example:"100"`
}

type WalletDTO struct {
	ID                     int             `json:"id" example:"1"`
	ChildName              string          `json:"child_name" example:"Anna"`
	CoinName               string          `json:"coin_name" example:"Coin"`
	CoinIcon               string          `json:"coin_icon" example:"⭐"`
	IsPracticeMode         bool            `json:"is_practice_mode"`
	PracticeInitialBalance decimal.Decimal `json:"practice_initial_balance" swaggertype:"string" example:"0"`
	CreatedAt              time.Time       `json:"created_at"`
}

func NewWallet(w domain.Wallet) WalletDTO {
	return WalletDTO{
		ID:                     w.ID,
		ChildName:              w.ChildName,
		CoinName:               w.CoinName,
		CoinIcon:               w.CoinIcon,
		IsPracticeMode:         w.IsPracticeMode,
		PracticeInitialBalance: w.PracticeInitialBalance,
		CreatedAt:              w.CreatedAt,
	}
}

func NewWallets(list []domain.Wallet) []WalletDTO {
	out := make([]WalletDTO, len(list))
	for i, w := range list {
		out[i] = NewWallet(w)
	}
	return out
}

type CreateWalletResponseDTO struct {
	Wallet   WalletDTO     `json:"wallet"`
	Unlocked []UnlockedDTO `json:"unlocked_achievements"`
}

type WalletBalanceDTO struct {
	WalletDTO
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"42.5"`
}

type WalletSummaryResponseDTO struct {
	Wallets         []WalletBalanceDTO `json:"wallets"`
	TotalBalance    decimal.Decimal    `json:"total_balance" swaggertype:"string" example:"142.5"`
	PracticeBalance decimal.Decimal    `json:"practice_balance" swaggertype:"string" example:"100"`
	RealBalance     decimal.Decimal    `json:"real_balance" swaggertype:"string" example:"42.5"`
}

func NewWalletSummary(s *domain.WalletSummary) WalletSummaryResponseDTO {
	out := WalletSummaryResponseDTO{
		Wallets:         make([]WalletBalanceDTO, len(s.Wallets)),
		TotalBalance:    s.TotalBalance,
		PracticeBalance: s.PracticeBalance,
		RealBalance:     s.RealBalance,
	}
	for i, wb := range s.Wallets {
		out.Wallets[i] = WalletBalanceDTO{WalletDTO: NewWallet(wb.Wallet), Balance: wb.Balance}
	}
	return out
}

type WalletStatisticsDTO struct {
	TotalIncome      decimal.Decimal `json:"total_income" swaggertype:"string" example:"60"`
	TotalExpense     decimal.Decimal `json:"total_expense" swaggertype:"string" example:"17.5"`
	Balance          decimal.Decimal `json:"balance" swaggertype:"string" example:"42.5"`
	TransactionCount int             `json:"transaction_count" example:"4"`
}

type WalletDetailResponseDTO struct {
	Wallet     WalletDTO           `json:"wallet"`
	Statistics WalletStatisticsDTO `json:"statistics"`
}

func NewWalletDetail(w *domain.Wallet, s *domain.WalletStatistics) WalletDetailResponseDTO {
	return WalletDetailResponseDTO{
		Wallet: NewWallet(*w),
		Statistics: WalletStatisticsDTO{
			TotalIncome:      s.TotalIncome,
			TotalExpense:     s.TotalExpense,
			Balance:          s.Balance,
			TransactionCount: s.TransactionCount,
		},
	}
}

type TransactionRequestDTO struct {
	Type        string          `json:"transaction_type" validate:"required,oneof=income expense" example:"income"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"10"`
	Description string          `json:"description" validate:"max=200" example:"Pocket money"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
}

type TransactionDTO struct {
	ID          int             `json:"id" example:"1"`
	WalletID    int             `json:"wallet_id" example:"1"`
	Type        string          `json:"transaction_type" example:"income"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"10"`
	Description string          `json:"description" example:"Pocket money"`
	Date        string          `json:"date" example:"2024-06-01"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewTransaction(t domain.WalletTransaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Type:        string(t.Kind),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date.Format(DateLayout),
		CreatedAt:   t.CreatedAt,
	}
}

func NewTransactions(list []domain.WalletTransaction) []TransactionDTO {
	out := make([]TransactionDTO, len(list))
	for i, t := range list {
		out[i] = NewTransaction(t)
	}
	return out
}
