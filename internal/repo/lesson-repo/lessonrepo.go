package lessonrepo

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

const (
	lessonColumns   = `id, title, slug, subtitle, description, icon, lesson_number, age_range, duration_minutes, coin_reward, status`
	progressColumns = `id, user_id, lesson_id, status, started_at, completed_at, updated_at`
)

func scanLesson(row pgx.Row, l *domain.Lesson) error {
	return row.Scan(&l.ID, &l.Title, &l.Slug, &l.Subtitle, &l.Description, &l.Icon,
		&l.LessonNumber, &l.AgeRange, &l.DurationMinutes, &l.CoinReward, &l.Status)
}

func scanProgress(row pgx.Row, p *domain.LessonProgress) error {
	return row.Scan(&p.ID, &p.UserID, &p.LessonID, &p.Status, &p.StartedAt, &p.CompletedAt, &p.UpdatedAt)
}

func (r *Repository) ListPublished(ctx context.Context) ([]domain.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE status = 'published' ORDER BY lesson_number`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list lessons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lessons []domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		if err := scanLesson(rows, &lesson); err != nil {
			zap.L().Error("failed to scan lesson", zap.Error(err))
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating lessons", zap.Error(err))
		return nil, err
	}
	return lessons, nil
}

func (r *Repository) GetPublished(ctx context.Context, lessonID int) (*domain.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1 AND status = 'published'`
	return r.getLesson(ctx, query, lessonID)
}

func (r *Repository) NextPublished(ctx context.Context, lessonNumber int) (*domain.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons
        WHERE status = 'published' AND lesson_number > $1
        ORDER BY lesson_number LIMIT 1`
	return r.getLesson(ctx, query, lessonNumber)
}

func (r *Repository) getLesson(ctx context.Context, query string, arg int) (*domain.Lesson, error) {
	var lesson domain.Lesson
	if err := scanLesson(r.db.QueryRow(ctx, query, arg), &lesson); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get lesson", zap.Error(err))
		return nil, err
	}
	return &lesson, nil
}

func (r *Repository) ListProgress(ctx context.Context, userID int) ([]domain.LessonProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_lesson_progress WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list lesson progress", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var progress []domain.LessonProgress
	for rows.Next() {
		var p domain.LessonProgress
		if err := scanProgress(rows, &p); err != nil {
			zap.L().Error("failed to scan lesson progress", zap.Error(err))
			return nil, err
		}
		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating lesson progress", zap.Error(err))
		return nil, err
	}
	return progress, nil
}

func (r *Repository) GetProgress(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM user_lesson_progress WHERE user_id = $1 AND lesson_id = $2`
	return r.progress(ctx, "get", query, userID, lessonID)
}

// Start returns nil when the lesson was already started or completed.
func (r *Repository) Start(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error) {
	query := `
        INSERT INTO user_lesson_progress (user_id, lesson_id, status, started_at, updated_at)
        VALUES ($1, $2, 'in_progress', now(), now())
        ON CONFLICT (user_id, lesson_id) DO UPDATE
            SET status = 'in_progress', started_at = now(), updated_at = now()
            WHERE user_lesson_progress.status = 'not_started'
        RETURNING ` + progressColumns
	return r.progress(ctx, "start", query, userID, lessonID)
}

// Complete returns nil when the lesson was already completed, so callers
// see each transition into completed exactly once.
func (r *Repository) Complete(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error) {
	query := `
        INSERT INTO user_lesson_progress (user_id, lesson_id, status, started_at, completed_at, updated_at)
        VALUES ($1, $2, 'completed', now(), now(), now())
        ON CONFLICT (user_id, lesson_id) DO UPDATE
            SET status = 'completed',
                started_at = COALESCE(user_lesson_progress.started_at, now()),
                completed_at = now(),
                updated_at = now()
            WHERE user_lesson_progress.status <> 'completed'
        RETURNING ` + progressColumns
	return r.progress(ctx, "complete", query, userID, lessonID)
}

func (r *Repository) Reopen(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error) {
	query := `
        UPDATE user_lesson_progress
        SET status = 'in_progress', completed_at = NULL, updated_at = now()
        WHERE user_id = $1 AND lesson_id = $2 AND status = 'completed'
        RETURNING ` + progressColumns
	return r.progress(ctx, "reopen", query, userID, lessonID)
}

func (r *Repository) progress(ctx context.Context, op, query string, userID, lessonID int) (*domain.LessonProgress, error) {
	var p domain.LessonProgress
	if err := scanProgress(r.db.QueryRow(ctx, query, userID, lessonID), &p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("lesson progress query failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CountByStatus(ctx context.Context, userID int, status domain.ProgressStatus) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM user_lesson_progress WHERE user_id = $1 AND status = $2`
	if err := r.db.QueryRow(ctx, query, userID, status).Scan(&count); err != nil {
		zap.L().Error("failed to count lesson progress", zap.Error(err))
		return 0, err
	}
	return count, nil
}
