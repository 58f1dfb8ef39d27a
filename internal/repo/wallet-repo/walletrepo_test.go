package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	walletCols = []string{"id", "user_id", "child_name", "coin_name", "coin_icon", "is_practice_mode", "practice_initial_balance", "created_at"}
	createdAt  = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_CreateWallet(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO wallets (user_id, child_name, coin_name, coin_icon, is_practice_mode, practice_initial_balance) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`)
	wallet := &domain.Wallet{UserID: 1, ChildName: "Ann", CoinName: "Coin", CoinIcon: "⭐", PracticeInitialBalance: decimal.Zero}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr error
	}{
		{
			name: "Wallet created",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).
					WithArgs(1, "Ann", "Coin", "⭐", false, decimal.Zero).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, createdAt))
			},
		},
		{
			name: "Duplicate child and coin name",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).
					WithArgs(1, "Ann", "Coin", "⭐", false, decimal.Zero).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			created, err := repo.CreateWallet(context.Background(), wallet)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 5, created.ID)
				assert.Equal(t, createdAt, created.CreatedAt)
				assert.Equal(t, "Ann", created.ChildName)
				assert.Zero(t, wallet.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetWallet(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, user_id, child_name, coin_name, coin_icon, is_practice_mode, practice_initial_balance, created_at FROM wallets WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name: "Existing wallet",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(3).WillReturnRows(pgxmock.NewRows(walletCols).
					AddRow(3, 1, "Ann", "Coin", "⭐", true, decimal.NewFromInt(100), createdAt))
			},
			result: &domain.Wallet{ID: 3, UserID: 1, ChildName: "Ann", CoinName: "Coin", CoinIcon: "⭐",
				IsPracticeMode: true, PracticeInitialBalance: decimal.NewFromInt(100), CreatedAt: createdAt},
		},
		{
			name: "Missing wallet returns nil",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			wallet, err := repo.GetWallet(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, wallet)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListWallets(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets WHERE user_id = $1 ORDER BY created_at DESC, id DESC`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(walletCols).
			AddRow(2, 1, "Bob", "Coin", "⭐", false, decimal.Zero, createdAt.Add(time.Hour)).
			AddRow(1, 1, "Ann", "Coin", "⭐", true, decimal.NewFromInt(10), createdAt))

	wallets, err := repo.ListWallets(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	assert.Equal(t, 2, wallets[0].ID)
	assert.True(t, wallets[1].IsPracticeMode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetFirstWallet(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC LIMIT 1`)
	mock.ExpectQuery(query).WithArgs(1).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(query).WithArgs(2).WillReturnRows(pgxmock.NewRows(walletCols).
		AddRow(7, 2, "Cy", "Gem", "💎", false, decimal.Zero, createdAt))

	none, err := repo.GetFirstWallet(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, none)

	wallet, err := repo.GetFirstWallet(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 7, wallet.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountWallets(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM wallets WHERE user_id = $1`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountWallets(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWalletBalances(t *testing.T) {
	repo, mock := NewMock(t)
	cols := append(append([]string{}, walletCols...), "balance")
	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN wallet_transactions t ON t.wallet_id = w.id WHERE w.user_id = $1 GROUP BY w.id`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(2, 1, "Bob", "Coin", "⭐", false, decimal.Zero, createdAt, decimal.NewFromInt(-4)).
			AddRow(1, 1, "Ann", "Coin", "⭐", true, decimal.NewFromInt(50), createdAt, decimal.NewFromInt(50)))

	balances, err := repo.GetWalletBalances(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.True(t, balances[0].Balance.Equal(decimal.NewFromInt(-4)))
	assert.Equal(t, "Ann", balances[1].Wallet.ChildName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
