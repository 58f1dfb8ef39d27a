package achievementrepo

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

const achievementColumns = `id, name, description, icon, color, achievement_type, coin_reward, requirements, display_order, is_active, created_at`

func scanAchievement(row pgx.Row, a *domain.Achievement) error {
	return row.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Color, &a.Type,
		&a.CoinReward, &a.Requirements, &a.Order, &a.IsActive, &a.CreatedAt)
}

func (r *Repository) GetAchievement(ctx context.Context, achievementID int) (*domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`
	var a domain.Achievement
	if err := scanAchievement(r.db.QueryRow(ctx, query, achievementID), &a); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get achievement", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE is_active ORDER BY display_order, created_at`
	return r.list(ctx, query)
}

func (r *Repository) ListActiveByType(ctx context.Context, achievementType domain.AchievementType) ([]domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE is_active AND achievement_type = $1 ORDER BY display_order, created_at`
	return r.list(ctx, query, achievementType)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Achievement, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := scanAchievement(rows, &a); err != nil {
			zap.L().Error("failed to scan achievement", zap.Error(err))
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating achievements", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (r *Repository) UnlockedIDs(ctx context.Context, userID int) (map[int]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT achievement_id FROM user_achievements WHERE user_id = $1`, userID)
	if err != nil {
		zap.L().Error("failed to list unlocked achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int]struct{})
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan achievement id", zap.Error(err))
			return nil, err
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating unlocked achievements", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// CreateUnlock inserts the unlock row. It returns nil, nil when the user already has it.
func (r *Repository) CreateUnlock(ctx context.Context, userID, achievementID int, isNotified bool) (*domain.UserAchievement, error) {
	query := `
        INSERT INTO user_achievements (user_id, achievement_id, is_notified)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, achievement_id) DO NOTHING
        RETURNING id, unlocked_at
    `
	ua := domain.UserAchievement{UserID: userID, AchievementID: achievementID, IsNotified: isNotified}
	err := r.db.QueryRow(ctx, query, userID, achievementID, isNotified).Scan(&ua.ID, &ua.UnlockedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to create unlock", zap.Error(err))
		return nil, err
	}
	return &ua, nil
}

func (r *Repository) ListUnnotified(ctx context.Context, userID int) ([]domain.UserAchievement, error) {
	query := `
        SELECT ua.id, ua.user_id, ua.achievement_id, ua.unlocked_at, ua.is_notified,
               a.id, a.name, a.description, a.icon, a.color, a.achievement_type, a.coin_reward,
               a.requirements, a.display_order, a.is_active, a.created_at
        FROM user_achievements ua
        JOIN achievements a ON a.id = ua.achievement_id
        WHERE ua.user_id = $1 AND NOT ua.is_notified
        ORDER BY ua.unlocked_at DESC, ua.id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list unnotified achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.UserAchievement
	for rows.Next() {
		var ua domain.UserAchievement
		a := &ua.Achievement
		if err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.UnlockedAt, &ua.IsNotified,
			&a.ID, &a.Name, &a.Description, &a.Icon, &a.Color, &a.Type, &a.CoinReward,
			&a.Requirements, &a.Order, &a.IsActive, &a.CreatedAt); err != nil {
			zap.L().Error("failed to scan unlock", zap.Error(err))
			return nil, err
		}
		list = append(list, ua)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating unlocks", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (r *Repository) MarkNotified(ctx context.Context, userID, unlockID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE user_achievements SET is_notified = TRUE WHERE id = $1 AND user_id = $2`, unlockID, userID)
	if err != nil {
		zap.L().Error("failed to mark unlock notified", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpsertByName inserts or refreshes an achievement keyed by name and reports whether it was inserted.
func (r *Repository) UpsertByName(ctx context.Context, a *domain.Achievement) (bool, error) {
	query := `
        INSERT INTO achievements (name, description, icon, color, achievement_type, coin_reward, requirements, display_order, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (name) DO UPDATE SET
            description = EXCLUDED.description,
            icon = EXCLUDED.icon,
            color = EXCLUDED.color,
            achievement_type = EXCLUDED.achievement_type,
            coin_reward = EXCLUDED.coin_reward,
            requirements = EXCLUDED.requirements,
            display_order = EXCLUDED.display_order,
            is_active = EXCLUDED.is_active
        RETURNING id, (xmax = 0) AS inserted
    `
	var inserted bool
	err := r.db.QueryRow(ctx, query, a.Name, a.Description, a.Icon, a.Color, a.Type, a.CoinReward,
		a.Requirements, a.Order, a.IsActive).Scan(&a.ID, &inserted)
	if err != nil {
		zap.L().Error("failed to upsert achievement", zap.String("name", a.Name), zap.Error(err))
		return false, err
	}
	return inserted, nil
}
