package ledgerservice

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletRepo interface {
	CreateWallet(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletID int) (*domain.Wallet, error)
	ListWallets(ctx context.Context, userID int) ([]domain.Wallet, error)
	GetFirstWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	CountWallets(ctx context.Context, userID int) (int, error)
	GetWalletBalances(ctx context.Context, userID int) ([]domain.WalletBalance, error)
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetTotals(ctx context.Context, walletID int) (*domain.WalletStatistics, error)
	ListTransactions(ctx context.Context, walletID int) ([]domain.WalletTransaction, error)
	ListUserTransactions(ctx context.Context, userID int, kind domain.TransactionKind, descriptionPrefix string) ([]domain.WalletTransaction, error)
}

type AchievementChecker interface {
	CheckAndUnlock(ctx context.Context, userID int, eventType domain.AchievementType, counters domain.Counters) ([]domain.UserAchievement, error)
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	achievements    AchievementChecker
	now             func() time.Time
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, achievements AchievementChecker) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		achievements:    achievements,
		now:             time.Now,
	}
}

const (
	DefaultCoinName = "Coin"
	DefaultCoinIcon = "⭐"

	PracticeInitialBalanceDescription = "Practice mode initial balance"
)

// Wallet listing filters.
const (
	ModeAll      = ""
	ModePractice = "practice"
	ModeReal     = "real"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrWalletExists   = errors.New("wallet with this child and coin name already exists")
	ErrInvalidAmount  = errors.New("amount must be non-negative")
	ErrInvalidKind    = errors.New("transaction type must be income or expense")
)

// RecordTransaction appends a row to the wallet's ledger. Expenses are not checked
// against the current balance.
func (s *Service) RecordTransaction(ctx context.Context, walletID int, kind domain.TransactionKind, amount decimal.Decimal, description string, date time.Time) (*domain.WalletTransaction, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.walletRepo.GetWallet(ctx, walletID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	if date.IsZero() {
		date = s.now()
	}

	tx, err := s.transactionRepo.CreateTransaction(ctx, &domain.WalletTransaction{
		WalletID:    walletID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Date:        date,
	})
	if err != nil {
		zap.L().Error("failed to record transaction", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// RecordForUser is RecordTransaction restricted to wallets owned by userID.
func (s *Service) RecordForUser(ctx context.Context, userID, walletID int, kind domain.TransactionKind, amount decimal.Decimal, description string, date time.Time) (*domain.WalletTransaction, error) {
	if _, err := s.GetWallet(ctx, userID, walletID); err != nil {
		return nil, err
	}
	return s.RecordTransaction(ctx, walletID, kind, amount, description, date)
}

// BalanceOf is always recomputed from the transaction history.
func (s *Service) BalanceOf(ctx context.Context, walletID int) (decimal.Decimal, error) {
	stats, err := s.statistics(ctx, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	return stats.Balance, nil
}

func (s *Service) Statistics(ctx context.Context, userID, walletID int) (*domain.WalletStatistics, error) {
	if _, err := s.GetWallet(ctx, userID, walletID); err != nil {
		return nil, err
	}
	return s.statistics(ctx, walletID)
}

func (s *Service) statistics(ctx context.Context, walletID int) (*domain.WalletStatistics, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, walletID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	stats, err := s.transactionRepo.GetTotals(ctx, walletID)
	if err != nil {
		zap.L().Error("failed to aggregate transactions", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats, nil
}

// SummaryFor returns every wallet of the user with its derived balance and the totals.
func (s *Service) SummaryFor(ctx context.Context, userID int) (*domain.WalletSummary, error) {
	balances, err := s.walletRepo.GetWalletBalances(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet balances", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	summary := &domain.WalletSummary{
		Wallets:         make([]domain.WalletBalance, 0, len(balances)),
		TotalBalance:    decimal.Zero,
		PracticeBalance: decimal.Zero,
		RealBalance:     decimal.Zero,
	}
	for _, wb := range balances {
		summary.Wallets = append(summary.Wallets, wb)
		summary.TotalBalance = summary.TotalBalance.Add(wb.Balance)
		if wb.Wallet.IsPracticeMode {
			summary.PracticeBalance = summary.PracticeBalance.Add(wb.Balance)
		} else {
			summary.RealBalance = summary.RealBalance.Add(wb.Balance)
		}
	}
	return summary, nil
}

// CreateWallet stores the wallet, seeds a practice balance when one is set and
// reports the wallet_created event. Achievements unlocked by the event are returned
// alongside; evaluator errors are logged only.
func (s *Service) CreateWallet(ctx context.Context, userID int, wallet *domain.Wallet) (*domain.Wallet, []domain.UserAchievement, error) {
	wallet.UserID = userID
	if wallet.CoinName == "" {
		wallet.CoinName = DefaultCoinName
	}
	if wallet.CoinIcon == "" {
		wallet.CoinIcon = DefaultCoinIcon
	}
	if wallet.PracticeInitialBalance.IsNegative() {
		return nil, nil, ErrInvalidAmount
	}
	if !wallet.IsPracticeMode {
		wallet.PracticeInitialBalance = decimal.Zero
	}

	created, err := s.walletRepo.CreateWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, nil, ErrWalletExists
		}
		zap.L().Error("failed to create wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, nil, err
	}

	if created.IsPracticeMode && created.PracticeInitialBalance.IsPositive() {
		_, err := s.transactionRepo.CreateTransaction(ctx, &domain.WalletTransaction{
			WalletID:    created.ID,
			Kind:        domain.TransactionIncome,
			Amount:      created.PracticeInitialBalance,
			Description: PracticeInitialBalanceDescription,
			Date:        s.now(),
		})
		if err != nil {
			zap.L().Error("failed to seed practice balance", zap.Int("walletID", created.ID), zap.Error(err))
			return nil, nil, fmt.Errorf("seed practice balance: %w", err)
		}
	}

	zap.L().Info("wallet created", zap.Int("userID", userID), zap.Int("walletID", created.ID))
	return created, s.walletCreated(ctx, userID), nil
}

func (s *Service) walletCreated(ctx context.Context, userID int) []domain.UserAchievement {
	count, err := s.walletRepo.CountWallets(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count wallets", zap.Int("userID", userID), zap.Error(err))
		return nil
	}
	unlocked, err := s.achievements.CheckAndUnlock(ctx, userID, domain.AchievementWalletCreated, domain.Counters{WalletCount: count})
	if err != nil {
		zap.L().Error("achievement check failed", zap.String("event", string(domain.AchievementWalletCreated)), zap.Error(err))
		return nil
	}
	return unlocked
}

func (s *Service) GetWallet(ctx context.Context, userID, walletID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, walletID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	if wallet == nil || wallet.UserID != userID {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) ListWallets(ctx context.Context, userID int, mode string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWallets(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list wallets", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if mode == ModeAll {
		return wallets, nil
	}
	filtered := make([]domain.Wallet, 0, len(wallets))
	for _, w := range wallets {
		if w.IsPracticeMode == (mode == ModePractice) {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// FirstWallet returns the first wallet in listing order, or nil when the user has none.
func (s *Service) FirstWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetFirstWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get first wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID, walletID int) ([]domain.WalletTransaction, error) {
	if _, err := s.GetWallet(ctx, userID, walletID); err != nil {
		return nil, err
	}
	txs, err := s.transactionRepo.ListTransactions(ctx, walletID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// UserTransactions lists the user's transactions of one kind across all wallets
// whose description starts with prefix.
func (s *Service) UserTransactions(ctx context.Context, userID int, kind domain.TransactionKind, prefix string) ([]domain.WalletTransaction, error) {
	txs, err := s.transactionRepo.ListUserTransactions(ctx, userID, kind, prefix)
	if err != nil {
		zap.L().Error("failed to list user transactions", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}
