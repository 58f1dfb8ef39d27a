package prizerepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const prizeColumns = `id, name, description, icon, category, status, coin_cost, stock_quantity,
        available_from, available_until, priority, is_featured, min_age, max_age`

func scanPrize(row pgx.Row, p *domain.Prize) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Icon, &p.Category, &p.Status, &p.CoinCost,
		&p.StockQuantity, &p.AvailableFrom, &p.AvailableUntil, &p.Priority, &p.IsFeatured, &p.MinAge, &p.MaxAge)
}

// ListActive returns active prizes matching the filter. Date windows and stock are
// left to the caller.
func (r *Repository) ListActive(ctx context.Context, filter domain.PrizeFilter) ([]domain.Prize, error) {
	conds := []string{`status = 'active'`}
	var args []any
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.FeaturedOnly {
		conds = append(conds, "is_featured")
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + prizeColumns + ` FROM prizes WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY priority DESC, is_featured DESC, name`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list prizes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var prizes []domain.Prize
	for rows.Next() {
		var prize domain.Prize
		if err := scanPrize(rows, &prize); err != nil {
			zap.L().Error("failed to scan prize", zap.Error(err))
			return nil, err
		}
		prizes = append(prizes, prize)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating prizes", zap.Error(err))
		return nil, err
	}
	return prizes, nil
}

func (r *Repository) GetPrize(ctx context.Context, prizeID int) (*domain.Prize, error) {
	var prize domain.Prize
	query := `SELECT ` + prizeColumns + ` FROM prizes WHERE id = $1`
	if err := scanPrize(r.db.QueryRow(ctx, query, prizeID), &prize); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get prize", zap.Int("prizeID", prizeID), zap.Error(err))
		return nil, err
	}
	return &prize, nil
}

// Redeem takes one unit of limited stock and records the expense in a single
// transaction. It fails with domain.ErrOutOfStock when no unit is left.
func (r *Repository) Redeem(ctx context.Context, prize *domain.Prize, expense *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	takeStock := `
        UPDATE prizes
        SET stock_quantity = stock_quantity - 1,
            status = CASE WHEN stock_quantity - 1 <= 0 THEN 'sold_out' ELSE status END
        WHERE id = $1 AND stock_quantity > 0
    `
	insertExpense := `
        INSERT INTO wallet_transactions (wallet_id, transaction_type, amount, description, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	created := *expense
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if prize.HasLimitedStock() {
			tag, err := r.db.Exec(ctx, takeStock, prize.ID)
			if err != nil {
				zap.L().Error("failed to take prize stock", zap.Int("prizeID", prize.ID), zap.Error(err))
				return err
			}
			if tag.RowsAffected() == 0 {
				return domain.ErrOutOfStock
			}
		}
		err := r.db.QueryRow(ctx, insertExpense, expense.WalletID, expense.Kind, expense.Amount, expense.Description, expense.Date).
			Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			zap.L().Error("failed to record prize expense", zap.Int("walletID", expense.WalletID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
