package reward

//go:generate mockgen -source=reward.go -destination=mock_reward.go -package=reward

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetFirstWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error)
}

// Service credits coin rewards in the background. A failed credit is logged and dropped.
type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	workerPool      WorkerPoolI
	timeout         time.Duration
	now             func() time.Time
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, workerPool WorkerPoolI, timeout time.Duration) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		workerPool:      workerPool,
		timeout:         timeout,
		now:             time.Now,
	}
}

// CreditUser queues an income on the user's first wallet. Users without a wallet get nothing.
func (s *Service) CreditUser(ctx context.Context, userID int, amount decimal.Decimal, description string) error {
	return s.dispatch(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetFirstWallet(ctx, userID)
		if err != nil {
			return fmt.Errorf("find wallet for user %d: %w", userID, err)
		}
		if wallet == nil {
			zap.L().Info("Reward skipped, user has no wallet", zap.Int("userID", userID), zap.String("description", description))
			return nil
		}
		return s.credit(ctx, wallet.ID, amount, description)
	})
}

// CreditWallet queues an income on the given wallet.
func (s *Service) CreditWallet(ctx context.Context, walletID int, amount decimal.Decimal, description string) error {
	return s.dispatch(ctx, func(ctx context.Context) error {
		return s.credit(ctx, walletID, amount, description)
	})
}

func (s *Service) dispatch(ctx context.Context, fn func(ctx context.Context) error) error {
	detached := context.WithoutCancel(ctx)
	err := s.workerPool.AddTask(ctx, func() error {
		taskCtx, cancel := context.WithTimeout(detached, s.timeout)
		defer cancel()
		return fn(taskCtx)
	})
	if err != nil {
		zap.L().Error("Failed to queue reward", zap.Error(err))
	}
	return err
}

func (s *Service) credit(ctx context.Context, walletID int, amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return nil
	}
	_, err := s.transactionRepo.CreateTransaction(ctx, &domain.WalletTransaction{
		WalletID:    walletID,
		Kind:        domain.TransactionIncome,
		Amount:      amount,
		Description: description,
		Date:        s.now(),
	})
	if err != nil {
		return fmt.Errorf("credit wallet %d: %w", walletID, err)
	}
	zap.L().Info("Reward credited", zap.Int("walletID", walletID), zap.String("amount", amount.String()))
	return nil
}
