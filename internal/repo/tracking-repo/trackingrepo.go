package trackingrepo

import (
	"context"
	"fmt"
	"strings"

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

func (r *Repository) ListCategories(ctx context.Context) ([]domain.SpendingCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, icon, color, description FROM spending_categories ORDER BY name`)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.SpendingCategory
	for rows.Next() {
		var c domain.SpendingCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description); err != nil {
			zap.L().Error("failed to scan category", zap.Error(err))
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *Repository) GetCategory(ctx context.Context, categoryID int) (*domain.SpendingCategory, error) {
	var c domain.SpendingCategory
	err := r.db.QueryRow(ctx, `SELECT id, name, icon, color, description FROM spending_categories WHERE id = $1`, categoryID).
		Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCategory inserts the category unless one with the same name exists, and returns the stored row.
func (r *Repository) GetOrCreateCategory(ctx context.Context, category *domain.SpendingCategory) (*domain.SpendingCategory, error) {
	query := `
        INSERT INTO spending_categories (name, icon, color, description)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id, name, icon, color, description
    `
	var c domain.SpendingCategory
	err := r.db.QueryRow(ctx, query, category.Name, category.Icon, category.Color, category.Description).
		Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.Description)
	if err != nil {
		zap.L().Error("failed to get or create category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateSpending(ctx context.Context, spending *domain.Spending) (*domain.Spending, error) {
	query := `
        INSERT INTO spendings (user_id, category_id, amount, description, child_name, date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	created := *spending
	err := r.db.QueryRow(ctx, query, spending.UserID, spending.CategoryID, spending.Amount,
		spending.Description, spending.ChildName, spending.Date).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create spending", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) String() string {
	return strings.Join(w.conds, " AND ")
}

func recordWhere(alias string, userID int, f domain.RecordFilter, searchCols ...string) *where {
	w := &where{}
	w.add(alias+".user_id = $%d", userID)
	if f.Search != "" {
		w.args = append(w.args, "%"+f.Search+"%")
		n := len(w.args)
		parts := make([]string, 0, len(searchCols))
		for _, col := range searchCols {
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
	}
	if f.ChildName != "" {
		w.add(alias+".child_name = $%d", f.ChildName)
	}
	if f.CategoryID != nil && alias == "s" {
		w.add("s.category_id = $%d", *f.CategoryID)
	}
	if f.From != nil {
		w.add(alias+".date >= $%d", *f.From)
	}
	if f.To != nil {
		w.add(alias+".date <= $%d", *f.To)
	}
	return w
}

func (r *Repository) ListSpendings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Spending, error) {
	w := recordWhere("s", userID, filter, "s.description", "s.child_name", "c.name")
	query := `
        SELECT s.id, s.user_id, s.category_id, s.amount, s.description, s.child_name, s.date, s.created_at
        FROM spendings s
        LEFT JOIN spending_categories c ON c.id = s.category_id
        WHERE ` + w.String() + `
        ORDER BY s.date DESC, s.created_at DESC`
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		zap.L().Error("failed to list spendings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.Spending
	for rows.Next() {
		var s domain.Spending
		if err := rows.Scan(&s.ID, &s.UserID, &s.CategoryID, &s.Amount, &s.Description, &s.ChildName, &s.Date, &s.CreatedAt); err != nil {
			zap.L().Error("failed to scan spending", zap.Error(err))
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *Repository) CountSpendings(ctx context.Context, userID int) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM spendings WHERE user_id = $1`, userID).Scan(&count); err != nil {
		zap.L().Error("failed to count spendings", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) DeleteSpending(ctx context.Context, userID, spendingID int) (bool, error) {
	return r.delete(ctx, `DELETE FROM spendings WHERE id = $1 AND user_id = $2`, spendingID, userID)
}

func (r *Repository) SpendingByCategory(ctx context.Context, userID int) ([]domain.CategoryTotal, error) {
	query := `
        SELECT s.category_id, COALESCE(c.name, 'Uncategorized'), SUM(s.amount) AS total, COUNT(*)
        FROM spendings s
        LEFT JOIN spending_categories c ON c.id = s.category_id
        WHERE s.user_id = $1
        GROUP BY s.category_id, c.name
        ORDER BY total DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to summarize spendings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.CategoryTotal
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.CategoryID, &t.CategoryName, &t.Total, &t.Count); err != nil {
			zap.L().Error("failed to scan category total", zap.Error(err))
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *Repository) CreateSaving(ctx context.Context, saving *domain.Saving) (*domain.Saving, error) {
	query := `
        INSERT INTO savings (user_id, saving_goal_id, amount, description, child_name, date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	created := *saving
	err := r.db.QueryRow(ctx, query, saving.UserID, saving.SavingGoalID, saving.Amount,
		saving.Description, saving.ChildName, saving.Date).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create saving", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListSavings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Saving, error) {
	w := recordWhere("v", userID, filter, "v.description", "v.child_name")
	query := `
        SELECT v.id, v.user_id, v.saving_goal_id, v.amount, v.description, v.child_name, v.date, v.created_at
        FROM savings v
        WHERE ` + w.String() + `
        ORDER BY v.date DESC, v.created_at DESC`
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		zap.L().Error("failed to list savings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.Saving
	for rows.Next() {
		var s domain.Saving
		if err := rows.Scan(&s.ID, &s.UserID, &s.SavingGoalID, &s.Amount, &s.Description, &s.ChildName, &s.Date, &s.CreatedAt); err != nil {
			zap.L().Error("failed to scan saving", zap.Error(err))
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *Repository) DeleteSaving(ctx context.Context, userID, savingID int) (bool, error) {
	return r.delete(ctx, `DELETE FROM savings WHERE id = $1 AND user_id = $2`, savingID, userID)
}

func (r *Repository) CreateGoal(ctx context.Context, goal *domain.SavingGoal) (*domain.SavingGoal, error) {
	query := `
        INSERT INTO saving_goals (user_id, goal_name, target_amount, child_name, deadline, icon, color, description)
        VALUES ($1, $2, $3, $4, $5, COALESCE(NULLIF($6, ''), '🎯'), COALESCE(NULLIF($7, ''), '#28a745'), $8)
        RETURNING id, icon, color, created_at
    `
	created := *goal
	err := r.db.QueryRow(ctx, query, goal.UserID, goal.GoalName, goal.TargetAmount, goal.ChildName,
		goal.Deadline, goal.Icon, goal.Color, goal.Description).
		Scan(&created.ID, &created.Icon, &created.Color, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create saving goal", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// goalSelect loads goals together with the sum of their linked savings.
const goalSelect = `
        SELECT g.id, g.user_id, g.goal_name, g.target_amount, g.child_name, g.deadline, g.icon, g.color,
               g.description, g.created_at,
               COALESCE((SELECT SUM(s.amount) FROM savings s WHERE s.saving_goal_id = g.id), 0) AS current_amount
        FROM saving_goals g
`

func scanGoal(row pgx.Row, g *domain.SavingGoal) error {
	return row.Scan(&g.ID, &g.UserID, &g.GoalName, &g.TargetAmount, &g.ChildName, &g.Deadline,
		&g.Icon, &g.Color, &g.Description, &g.CreatedAt, &g.CurrentAmount)
}

func (r *Repository) GetGoal(ctx context.Context, goalID int) (*domain.SavingGoal, error) {
	var g domain.SavingGoal
	if err := scanGoal(r.db.QueryRow(ctx, goalSelect+` WHERE g.id = $1`, goalID), &g); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get saving goal", zap.Error(err))
		return nil, err
	}
	return &g, nil
}

func (r *Repository) ListGoals(ctx context.Context, userID int) ([]domain.SavingGoal, error) {
	rows, err := r.db.Query(ctx, goalSelect+` WHERE g.user_id = $1 ORDER BY g.created_at DESC, g.id DESC`, userID)
	if err != nil {
		zap.L().Error("failed to list saving goals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.SavingGoal
	for rows.Next() {
		var g domain.SavingGoal
		if err := scanGoal(rows, &g); err != nil {
			zap.L().Error("failed to scan saving goal", zap.Error(err))
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (r *Repository) DeleteGoal(ctx context.Context, userID, goalID int) (bool, error) {
	return r.delete(ctx, `DELETE FROM saving_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
}

func (r *Repository) delete(ctx context.Context, query string, id, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("failed to delete row", zap.String("query", query), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
