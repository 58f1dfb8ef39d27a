package dashboard

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/GlebRadaev/coinkids/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context, userID int) (*domain.Dashboard, error)
}

type DashboardHandler struct {
	dashboard Service
}

func New(dashboard Service) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get godoc
//
//	@Summary		User dashboard
//	@Description	Wallet balances, lesson progress, achievement counts and saving goals in one response.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.Dashboard(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDashboard(dashboard))
}
