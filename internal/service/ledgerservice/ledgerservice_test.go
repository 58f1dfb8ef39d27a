package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockTransactionRepo, *MockAchievementChecker) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	checker := NewMockAchievementChecker(ctrl)
	service := New(walletRepo, transactionRepo, checker)
	service.now = func() time.Time { return fixedNow }
	return service, walletRepo, transactionRepo, checker
}

func TestRecordTransaction(t *testing.T) {
	tests := []struct {
		name        string
		walletID    int
		kind        domain.TransactionKind
		amount      decimal.Decimal
		date        time.Time
		prepareMock func(w *MockWalletRepo, tr *MockTransactionRepo)
		expectedErr error
	}{
		{
			name:     "Income recorded",
			walletID: 1,
			kind:     domain.TransactionIncome,
			amount:   decimal.NewFromInt(10),
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 7}, nil)
				tr.EXPECT().CreateTransaction(gomock.Any(), &domain.WalletTransaction{
					WalletID:    1,
					Kind:        domain.TransactionIncome,
					Amount:      decimal.NewFromInt(10),
					Description: "allowance",
					Date:        fixedNow,
				}).Return(&domain.WalletTransaction{ID: 3, WalletID: 1}, nil)
			},
		},
		{
			name:     "Expense exceeding balance is still recorded",
			walletID: 1,
			kind:     domain.TransactionExpense,
			amount:   decimal.NewFromInt(1000),
			date:     fixedNow.Add(-time.Hour),
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{ID: 1}, nil)
				tr.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&domain.WalletTransaction{ID: 4}, nil)
			},
		},
		{
			name:        "Unknown kind",
			walletID:    1,
			kind:        "refund",
			amount:      decimal.NewFromInt(1),
			expectedErr: ErrInvalidKind,
		},
		{
			name:        "Negative amount",
			walletID:    1,
			kind:        domain.TransactionIncome,
			amount:      decimal.NewFromInt(-1),
			expectedErr: ErrInvalidAmount,
		},
		{
			name:     "Wallet missing",
			walletID: 9,
			kind:     domain.TransactionIncome,
			amount:   decimal.NewFromInt(1),
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 9).Return(nil, nil)
			},
			expectedErr: ErrWalletNotFound,
		},
		{
			name:     "Insert fails",
			walletID: 1,
			kind:     domain.TransactionIncome,
			amount:   decimal.NewFromInt(1),
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{ID: 1}, nil)
				tr.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, walletRepo, transactionRepo, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(walletRepo, transactionRepo)
			}

			tx, err := service.RecordTransaction(context.Background(), tt.walletID, tt.kind, tt.amount, "allowance", tt.date)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, tx)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, tx)
		})
	}
}

func TestRecordForUser_ForeignWallet(t *testing.T) {
	service, walletRepo, _, _ := NewMock(t)
	walletRepo.EXPECT().GetWallet(gomock.Any(), 2).Return(&domain.Wallet{ID: 2, UserID: 99}, nil)

	_, err := service.RecordForUser(context.Background(), 1, 2, domain.TransactionIncome, decimal.NewFromInt(5), "", time.Time{})
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestBalanceOf(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(w *MockWalletRepo, tr *MockTransactionRepo)
		expectedBalance decimal.Decimal
		expectedErr     error
	}{
		{
			name: "Income minus expense",
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{ID: 1}, nil)
				tr.EXPECT().GetTotals(gomock.Any(), 1).Return(&domain.WalletStatistics{
					TotalIncome:      decimal.NewFromInt(100),
					TotalExpense:     decimal.NewFromInt(30),
					TransactionCount: 2,
				}, nil)
			},
			expectedBalance: decimal.NewFromInt(70),
		},
		{
			name: "No transactions",
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{ID: 1}, nil)
				tr.EXPECT().GetTotals(gomock.Any(), 1).Return(&domain.WalletStatistics{
					TotalIncome:  decimal.Zero,
					TotalExpense: decimal.Zero,
				}, nil)
			},
			expectedBalance: decimal.Zero,
		},
		{
			name: "Overspent wallet goes negative",
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{ID: 1}, nil)
				tr.EXPECT().GetTotals(gomock.Any(), 1).Return(&domain.WalletStatistics{
					TotalIncome:  decimal.NewFromInt(5),
					TotalExpense: decimal.NewFromInt(8),
				}, nil)
			},
			expectedBalance: decimal.NewFromInt(-3),
		},
		{
			name: "Wallet missing",
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo) {
				w.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, nil)
			},
			expectedErr: ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, walletRepo, transactionRepo, _ := NewMock(t)
			tt.prepareMock(walletRepo, transactionRepo)

			balance, err := service.BalanceOf(context.Background(), 1)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expectedBalance.Equal(balance), "got %s", balance)
		})
	}
}

func TestSummaryFor(t *testing.T) {
	service, walletRepo, _, _ := NewMock(t)
	walletRepo.EXPECT().GetWalletBalances(gomock.Any(), 1).Return([]domain.WalletBalance{
		{Wallet: domain.Wallet{ID: 1, IsPracticeMode: true}, Balance: decimal.NewFromInt(50)},
		{Wallet: domain.Wallet{ID: 2}, Balance: decimal.NewFromInt(20)},
		{Wallet: domain.Wallet{ID: 3}, Balance: decimal.NewFromInt(-5)},
	}, nil)

	summary, err := service.SummaryFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, summary.Wallets, 3)
	assert.True(t, summary.TotalBalance.Equal(decimal.NewFromInt(65)))
	assert.True(t, summary.PracticeBalance.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.RealBalance.Equal(decimal.NewFromInt(15)))
}

func TestSummaryFor_NoWallets(t *testing.T) {
	service, walletRepo, _, _ := NewMock(t)
	walletRepo.EXPECT().GetWalletBalances(gomock.Any(), 1).Return(nil, nil)

	summary, err := service.SummaryFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, summary.Wallets)
	assert.True(t, summary.TotalBalance.IsZero())
}

func TestCreateWallet(t *testing.T) {
	tests := []struct {
		name         string
		wallet       *domain.Wallet
		prepareMock  func(w *MockWalletRepo, tr *MockTransactionRepo, c *MockAchievementChecker)
		expectedErr  error
		wantUnlocked int
	}{
		{
			name:   "Defaults applied and achievement unlocked",
			wallet: &domain.Wallet{ChildName: "Ann"},
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo, c *MockAchievementChecker) {
				w.EXPECT().CreateWallet(gomock.Any(), &domain.Wallet{
					UserID:                 1,
					ChildName:              "Ann",
					CoinName:               DefaultCoinName,
					CoinIcon:               DefaultCoinIcon,
					PracticeInitialBalance: decimal.Zero,
				}).Return(&domain.Wallet{ID: 10, UserID: 1, ChildName: "Ann"}, nil)
				w.EXPECT().CountWallets(gomock.Any(), 1).Return(1, nil)
				c.EXPECT().CheckAndUnlock(gomock.Any(), 1, domain.AchievementWalletCreated, domain.Counters{WalletCount: 1}).
					Return([]domain.UserAchievement{{AchievementID: 1}}, nil)
			},
			wantUnlocked: 1,
		},
		{
			name: "Practice wallet seeds initial balance",
			wallet: &domain.Wallet{
				ChildName:              "Bob",
				IsPracticeMode:         true,
				PracticeInitialBalance: decimal.NewFromInt(100),
			},
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo, c *MockAchievementChecker) {
				w.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(&domain.Wallet{
					ID:                     11,
					UserID:                 1,
					IsPracticeMode:         true,
					PracticeInitialBalance: decimal.NewFromInt(100),
				}, nil)
				tr.EXPECT().CreateTransaction(gomock.Any(), &domain.WalletTransaction{
					WalletID:    11,
					Kind:        domain.TransactionIncome,
					Amount:      decimal.NewFromInt(100),
					Description: PracticeInitialBalanceDescription,
					Date:        fixedNow,
				}).Return(&domain.WalletTransaction{ID: 1}, nil)
				w.EXPECT().CountWallets(gomock.Any(), 1).Return(2, nil)
				c.EXPECT().CheckAndUnlock(gomock.Any(), 1, domain.AchievementWalletCreated, domain.Counters{WalletCount: 2}).Return(nil, nil)
			},
		},
		{
			name:   "Duplicate wallet",
			wallet: &domain.Wallet{ChildName: "Ann"},
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo, c *MockAchievementChecker) {
				w.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadyExists)
			},
			expectedErr: ErrWalletExists,
		},
		{
			name:        "Negative practice balance",
			wallet:      &domain.Wallet{ChildName: "Ann", IsPracticeMode: true, PracticeInitialBalance: decimal.NewFromInt(-1)},
			expectedErr: ErrInvalidAmount,
		},
		{
			name:   "Evaluator failure does not fail creation",
			wallet: &domain.Wallet{ChildName: "Ann"},
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo, c *MockAchievementChecker) {
				w.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(&domain.Wallet{ID: 10, UserID: 1}, nil)
				w.EXPECT().CountWallets(gomock.Any(), 1).Return(1, nil)
				c.EXPECT().CheckAndUnlock(gomock.Any(), 1, domain.AchievementWalletCreated, gomock.Any()).Return(nil, errors.New("boom"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, walletRepo, transactionRepo, checker := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(walletRepo, transactionRepo, checker)
			}

			wallet, unlocked, err := service.CreateWallet(context.Background(), 1, tt.wallet)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, wallet)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, wallet)
			assert.Len(t, unlocked, tt.wantUnlocked)
		})
	}
}

func TestListWallets(t *testing.T) {
	wallets := []domain.Wallet{
		{ID: 3, IsPracticeMode: true},
		{ID: 2},
		{ID: 1, IsPracticeMode: true},
	}
	tests := []struct {
		name        string
		mode        string
		expectedIDs []int
	}{
		{name: "All", mode: ModeAll, expectedIDs: []int{3, 2, 1}},
		{name: "Practice only", mode: ModePractice, expectedIDs: []int{3, 1}},
		{name: "Real only", mode: ModeReal, expectedIDs: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, walletRepo, _, _ := NewMock(t)
			walletRepo.EXPECT().ListWallets(gomock.Any(), 1).Return(wallets, nil)

			got, err := service.ListWallets(context.Background(), 1, tt.mode)
			require.NoError(t, err)
			ids := make([]int, 0, len(got))
			for _, w := range got {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestListTransactions(t *testing.T) {
	service, walletRepo, transactionRepo, _ := NewMock(t)
	walletRepo.EXPECT().GetWallet(gomock.Any(), 5).Return(&domain.Wallet{ID: 5, UserID: 1}, nil)
	transactionRepo.EXPECT().ListTransactions(gomock.Any(), 5).Return([]domain.WalletTransaction{{ID: 2}, {ID: 1}}, nil)

	txs, err := service.ListTransactions(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestStatistics(t *testing.T) {
	service, walletRepo, transactionRepo, _ := NewMock(t)
	walletRepo.EXPECT().GetWallet(gomock.Any(), 5).Return(&domain.Wallet{ID: 5, UserID: 1}, nil).Times(2)
	transactionRepo.EXPECT().GetTotals(gomock.Any(), 5).Return(&domain.WalletStatistics{
		TotalIncome:      decimal.NewFromInt(12),
		TotalExpense:     decimal.NewFromInt(2),
		TransactionCount: 3,
	}, nil)

	stats, err := service.Statistics(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TransactionCount)
	assert.True(t, stats.Balance.Equal(decimal.NewFromInt(10)))
}
