package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	txCols = []string{"id", "wallet_id", "transaction_type", "amount", "description", "date", "created_at"}
	day    = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_CreateTransaction(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO wallet_transactions (wallet_id, transaction_type, amount, description, date) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`)
	amount := decimal.NewFromInt(25)
	in := &domain.WalletTransaction{WalletID: 2, Kind: domain.TransactionExpense, Amount: amount, Description: "candy", Date: day}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
	}{
		{
			name: "Inserted",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).
					WithArgs(2, domain.TransactionExpense, amount, "candy", day).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(9, day))
			},
		},
		{
			name: "Constraint rejects row",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).
					WithArgs(2, domain.TransactionExpense, amount, "candy", day).
					WillReturnError(errors.New("check constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			created, err := repo.CreateTransaction(context.Background(), in)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 9, created.ID)
				assert.Equal(t, "candy", created.Description)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetTotals(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE wallet_id = $1`)).
		WithArgs(4).
		WillReturnRows(pgxmock.NewRows([]string{"income", "expense", "count"}).
			AddRow(decimal.NewFromInt(100), decimal.NewFromInt(40), 3))

	stats, err := repo.GetTotals(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, stats.TotalIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.TotalExpense.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 3, stats.TransactionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListTransactions(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE wallet_id = $1 ORDER BY date DESC, created_at DESC, id DESC`)).
		WithArgs(4).
		WillReturnRows(pgxmock.NewRows(txCols).
			AddRow(2, 4, domain.TransactionExpense, decimal.NewFromInt(5), "toy", day, day).
			AddRow(1, 4, domain.TransactionIncome, decimal.NewFromInt(20), "allowance", day, day))

	txs, err := repo.ListTransactions(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, domain.TransactionExpense, txs[0].Kind)
	assert.Equal(t, "allowance", txs[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUserTransactions(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN wallets w ON w.id = t.wallet_id WHERE w.user_id = $1 AND t.transaction_type = $2`)).
		WithArgs(1, domain.TransactionExpense, "Prize redemption:").
		WillReturnRows(pgxmock.NewRows(txCols).
			AddRow(8, 3, domain.TransactionExpense, decimal.NewFromInt(50), "Prize redemption: Sticker", day, day))

	txs, err := repo.ListUserTransactions(context.Background(), 1, domain.TransactionExpense, "Prize redemption:")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Prize redemption: Sticker", txs[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListTransactions_QueryError(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
		WithArgs(4).
		WillReturnError(errors.New("db down"))

	txs, err := repo.ListTransactions(context.Background(), 4)
	assert.Error(t, err)
	assert.Nil(t, txs)
}
