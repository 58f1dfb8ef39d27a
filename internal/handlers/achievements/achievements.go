package achievements

//go:generate mockgen -source=achievements.go -destination=mock_achievements.go -package=achievements

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/internal/service/achievementservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/GlebRadaev/coinkids/pkg/utils"
)

type Service interface {
	UserAchievements(ctx context.Context, userID int) (*domain.AchievementOverview, error)
	Unnotified(ctx context.Context, userID int) ([]domain.UserAchievement, error)
	MarkNotified(ctx context.Context, userID, unlockID int) error
}

type AchievementHandler struct {
	achievements Service
}

func New(achievements Service) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// List godoc
//
//	@Summary		Achievements
//	@Description	Active achievements split into unlocked and locked for the current user.
//	@Tags			Achievements
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AchievementsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/achievements [get]
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	overview, err := h.achievements.UserAchievements(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAchievementOverview(overview))
}

// Unnotified godoc
//
//	@Summary		Pending unlock notifications
//	@Tags			Achievements
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UnlockedDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/achievements/unnotified [get]
func (h *AchievementHandler) Unnotified(w http.ResponseWriter, r *http.Request) {
	list, err := h.achievements.Unnotified(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUnlocked(list))
}

// MarkNotified godoc
//
//	@Summary		Acknowledge an unlock notification
//	@Tags			Achievements
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Unlock record ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Unlock not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/achievements/{id}/notified [post]
func (h *AchievementHandler) MarkNotified(w http.ResponseWriter, r *http.Request) {
	unlockID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, achievementservice.ErrUnlockNotFound.Error())
		return
	}
	err = h.achievements.MarkNotified(r.Context(), auth.UserID(r.Context()), unlockID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, achievementservice.ErrUnlockNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
