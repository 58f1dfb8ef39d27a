package prizeservice

//go:generate mockgen -source=prizeservice.go -destination=mock_prizeservice.go -package=prizeservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	ListActive(ctx context.Context, filter domain.PrizeFilter) ([]domain.Prize, error)
	GetPrize(ctx context.Context, prizeID int) (*domain.Prize, error)
	Redeem(ctx context.Context, prize *domain.Prize, expense *domain.WalletTransaction) (*domain.WalletTransaction, error)
}

type Wallets interface {
	SummaryFor(ctx context.Context, userID int) (*domain.WalletSummary, error)
	GetWallet(ctx context.Context, userID, walletID int) (*domain.Wallet, error)
	FirstWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	UserTransactions(ctx context.Context, userID int, kind domain.TransactionKind, prefix string) ([]domain.WalletTransaction, error)
}

type Service struct {
	repo    Repo
	wallets Wallets
	now     func() time.Time
}

func New(repo Repo, wallets Wallets) *Service {
	return &Service{
		repo:    repo,
		wallets: wallets,
		now:     time.Now,
	}
}

var (
	ErrPrizeNotFound     = errors.New("prize not found")
	ErrPrizeUnavailable  = errors.New("prize is not available")
	ErrInsufficientCoins = errors.New("not enough coins to redeem this prize")
	ErrNoWallet          = errors.New("no wallet found, create a wallet first")
)

const (
	RedemptionPrefix     = "Prize redemption:"
	DefaultFeaturedLimit = 6
)

func (s *Service) ListAvailable(ctx context.Context, category domain.PrizeCategory, featured bool) ([]domain.Prize, error) {
	prizes, err := s.repo.ListActive(ctx, domain.PrizeFilter{Category: category, FeaturedOnly: featured})
	if err != nil {
		zap.L().Error("failed to list prizes", zap.Error(err))
		return nil, err
	}
	now := s.now()
	available := make([]domain.Prize, 0, len(prizes))
	for _, p := range prizes {
		if p.IsAvailableAt(now) {
			available = append(available, p)
		}
	}
	return available, nil
}

// Search matches name or description of active prizes regardless of stock and dates.
func (s *Service) Search(ctx context.Context, query string, category domain.PrizeCategory) ([]domain.Prize, error) {
	prizes, err := s.repo.ListActive(ctx, domain.PrizeFilter{Category: category, Query: query})
	if err != nil {
		zap.L().Error("failed to search prizes", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return prizes, nil
}

func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Prize, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	prizes, err := s.ListAvailable(ctx, "", true)
	if err != nil {
		return nil, err
	}
	if len(prizes) > limit {
		prizes = prizes[:limit]
	}
	return prizes, nil
}

func (s *Service) Get(ctx context.Context, prizeID int) (*domain.Prize, error) {
	prize, err := s.repo.GetPrize(ctx, prizeID)
	if err != nil {
		zap.L().Error("failed to get prize", zap.Int("prizeID", prizeID), zap.Error(err))
		return nil, err
	}
	if prize == nil {
		return nil, ErrPrizeNotFound
	}
	return prize, nil
}

// CanRedeem reports why the user cannot redeem the prize, or nil when they can.
// Affordability is checked against the total over all of the user's wallets.
func (s *Service) CanRedeem(ctx context.Context, userID int, prize *domain.Prize) error {
	if !prize.IsAvailableAt(s.now()) {
		return ErrPrizeUnavailable
	}
	summary, err := s.wallets.SummaryFor(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load wallet summary", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	if summary.TotalBalance.LessThan(prize.CoinCost) {
		return ErrInsufficientCoins
	}
	return nil
}

// Redeem charges the prize cost to walletID, or to the first wallet when walletID is zero.
func (s *Service) Redeem(ctx context.Context, userID, prizeID, walletID int) (*domain.WalletTransaction, error) {
	prize, err := s.Get(ctx, prizeID)
	if err != nil {
		return nil, err
	}
	if err := s.CanRedeem(ctx, userID, prize); err != nil {
		return nil, err
	}
	wallet, err := s.targetWallet(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.Redeem(ctx, prize, &domain.WalletTransaction{
		WalletID:    wallet.ID,
		Kind:        domain.TransactionExpense,
		Amount:      prize.CoinCost,
		Description: RedemptionPrefix + " " + prize.Name,
		Date:        s.now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			return nil, ErrPrizeUnavailable
		}
		zap.L().Error("failed to redeem prize", zap.Int("prizeID", prizeID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("prize redeemed", zap.Int("userID", userID), zap.Int("prizeID", prizeID), zap.Int("walletID", wallet.ID))
	return expense, nil
}

func (s *Service) targetWallet(ctx context.Context, userID, walletID int) (*domain.Wallet, error) {
	if walletID != 0 {
		return s.wallets.GetWallet(ctx, userID, walletID)
	}
	wallet, err := s.wallets.FirstWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrNoWallet
	}
	return wallet, nil
}

func (s *Service) History(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	return s.wallets.UserTransactions(ctx, userID, domain.TransactionExpense, RedemptionPrefix)
}
