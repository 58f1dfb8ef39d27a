package transactionrepo

import (
	"context"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions (wallet_id, transaction_type, amount, description, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	created := *tx
	err := r.db.QueryRow(ctx, query, tx.WalletID, tx.Kind, tx.Amount, tx.Description, tx.Date).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Int("walletID", tx.WalletID), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetTotals(ctx context.Context, walletID int) (*domain.WalletStatistics, error) {
	query := `
        SELECT COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'income'), 0),
               COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'expense'), 0),
               COUNT(*)
        FROM wallet_transactions
        WHERE wallet_id = $1
    `
	var stats domain.WalletStatistics
	err := r.db.QueryRow(ctx, query, walletID).Scan(&stats.TotalIncome, &stats.TotalExpense, &stats.TransactionCount)
	if err != nil {
		zap.L().Error("failed to aggregate transactions", zap.Int("walletID", walletID), zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, wallet_id, transaction_type, amount, description, date, created_at
        FROM wallet_transactions
        WHERE wallet_id = $1
        ORDER BY date DESC, created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) ListUserTransactions(ctx context.Context, userID int, kind domain.TransactionKind, descriptionPrefix string) ([]domain.WalletTransaction, error) {
	query := `
        SELECT t.id, t.wallet_id, t.transaction_type, t.amount, t.description, t.date, t.created_at
        FROM wallet_transactions t
        JOIN wallets w ON w.id = t.wallet_id
        WHERE w.user_id = $1 AND t.transaction_type = $2 AND t.description LIKE $3 || '%'
        ORDER BY t.date DESC, t.created_at DESC, t.id DESC
    `
	rows, err := r.db.Query(ctx, query, userID, kind, descriptionPrefix)
	if err != nil {
		zap.L().Error("failed to list user transactions", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]domain.WalletTransaction, error) {
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Kind, &t.Amount, &t.Description, &t.Date, &t.CreatedAt); err != nil {
			zap.L().Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
