package lessons

//go:generate mockgen -source=lessons.go -destination=mock_lessons.go -package=lessons

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/internal/service/lessonservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/GlebRadaev/coinkids/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	ListWithProgress(ctx context.Context, userID int) ([]domain.LessonWithProgress, error)
	Statistics(ctx context.Context, userID int) (*domain.LessonStatistics, error)
	Get(ctx context.Context, lessonID int) (*domain.Lesson, error)
	Next(ctx context.Context, lessonID int) (*domain.Lesson, error)
	Start(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error)
	Complete(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, []domain.UserAchievement, error)
	Reopen(ctx context.Context, userID, lessonID int) (*domain.LessonProgress, error)
}

type LessonHandler struct {
	lessons Service
}

func New(lessons Service) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

func respondLessonError(w http.ResponseWriter, err error) {
	if errors.Is(err, lessonservice.ErrLessonNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// List godoc
//
//	@Summary	Published lessons with the user's progress
//	@Tags		Lessons
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.LessonDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/lessons [get]
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.lessons.ListWithProgress(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondLessonError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLessonsWithProgress(lessons))
}

// Statistics godoc
//
//	@Summary	Lesson progress statistics
//	@Tags		Lessons
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.LessonStatisticsDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/lessons/stats [get]
func (h *LessonHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.lessons.Statistics(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondLessonError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLessonStatistics(stats))
}

// Get godoc
//
//	@Summary	Lesson details
//	@Tags		Lessons
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Lesson ID"
//	@Success	200	{object}	dto.LessonDTO
//	@Failure	404	{object}	utils.Response	"Lesson not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/lessons/{id} [get]
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondLessonError(w, lessonservice.ErrLessonNotFound)
		return
	}
	lesson, err := h.lessons.Get(r.Context(), id)
	if err != nil {
		respondLessonError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLesson(*lesson))
}

// Start godoc
//
//	@Summary	Start a lesson
//	@Tags		Lessons
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Lesson ID"
//	@Success	200	{object}	dto.LessonProgressDTO
//	@Failure	404	{object}	utils.Response	"Lesson not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/lessons/{id}/start [post]
func (h *LessonHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondLessonError(w, lessonservice.ErrLessonNotFound)
		return
	}
	progress, err := h.lessons.Start(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		respondLessonError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLessonProgress(progress))
}

// Complete godoc
//
//	@Summary		Complete a lesson
//	@Description	The first completion credits the lesson reward and may unlock achievements.
//	@Tags			Lessons
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Lesson ID"
//	@Success		200	{object}	dto.CompleteLessonResponseDTO
//	@Failure		404	{object}	utils.Response	"Lesson not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lessons/{id}/complete [post]
func (h *LessonHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondLessonError(w, lessonservice.ErrLessonNotFound)
		return
	}
	progress, unlocked, err := h.lessons.Complete(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		respondLessonError(w, err)
		return
	}

	resp := dto.CompleteLessonResponseDTO{
		Progress: dto.NewLessonProgress(progress),
		Unlocked: dto.NewUnlocked(unlocked),
	}
	next, err := h.lessons.Next(r.Context(), id)
	if err != nil {
		zap.L().Warn("failed to load next lesson", zap.Int("lessonID", id), zap.Error(err))
	}
	if next != nil {
		lesson := dto.NewLesson(*next)
		resp.NextLesson = &lesson
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Reopen godoc
//
//	@Summary	Reopen a completed lesson
//	@Tags		Lessons
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Lesson ID"
//	@Success	200	{object}	dto.LessonProgressDTO
//	@Failure	404	{object}	utils.Response	"Lesson not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/lessons/{id}/reopen [post]
func (h *LessonHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondLessonError(w, lessonservice.ErrLessonNotFound)
		return
	}
	progress, err := h.lessons.Reopen(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		respondLessonError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLessonProgress(progress))
}
