package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const walletColumns = `id, user_id, child_name, coin_name, coin_icon, is_practice_mode, practice_initial_balance, created_at`

func scanWallet(row pgx.Row, w *domain.Wallet) error {
	return row.Scan(&w.ID, &w.UserID, &w.ChildName, &w.CoinName, &w.CoinIcon,
		&w.IsPracticeMode, &w.PracticeInitialBalance, &w.CreatedAt)
}

func (r *Repository) CreateWallet(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, child_name, coin_name, coin_icon, is_practice_mode, practice_initial_balance)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	created := *wallet
	err := r.db.QueryRow(ctx, query, wallet.UserID, wallet.ChildName, wallet.CoinName, wallet.CoinIcon,
		wallet.IsPracticeMode, wallet.PracticeInitialBalance).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, pg.WrapUnique(err)
	}
	return &created, nil
}

func (r *Repository) GetWallet(ctx context.Context, walletID int) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	var wallet domain.Wallet
	if err := scanWallet(r.db.QueryRow(ctx, query, walletID), &wallet); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) ListWallets(ctx context.Context, userID int) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list wallets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var wallet domain.Wallet
		if err := scanWallet(rows, &wallet); err != nil {
			zap.L().Error("failed to scan wallet", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, wallet)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating wallets", zap.Error(err))
		return nil, err
	}
	return wallets, nil
}

func (r *Repository) GetFirstWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`
	var wallet domain.Wallet
	if err := scanWallet(r.db.QueryRow(ctx, query, userID), &wallet); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get first wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) CountWallets(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM wallets WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count wallets", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) GetWalletBalances(ctx context.Context, userID int) ([]domain.WalletBalance, error) {
	query := `
        SELECT w.id, w.user_id, w.child_name, w.coin_name, w.coin_icon, w.is_practice_mode,
               w.practice_initial_balance, w.created_at,
               COALESCE(SUM(CASE WHEN t.transaction_type = 'income' THEN t.amount ELSE -t.amount END), 0) AS balance
        FROM wallets w
        LEFT JOIN wallet_transactions t ON t.wallet_id = w.id
        WHERE w.user_id = $1
        GROUP BY w.id
        ORDER BY w.created_at DESC, w.id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get wallet balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.WalletBalance
	for rows.Next() {
		var wb domain.WalletBalance
		w := &wb.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.ChildName, &w.CoinName, &w.CoinIcon,
			&w.IsPracticeMode, &w.PracticeInitialBalance, &w.CreatedAt, &wb.Balance); err != nil {
			zap.L().Error("failed to scan wallet balance", zap.Error(err))
			return nil, err
		}
		balances = append(balances, wb)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating wallet balances", zap.Error(err))
		return nil, err
	}
	return balances, nil
}
