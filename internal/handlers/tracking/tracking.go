package tracking

//go:generate mockgen -source=tracking.go -destination=mock_tracking.go -package=tracking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/internal/service/trackingservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/GlebRadaev/coinkids/pkg/utils"
	"github.com/GlebRadaev/coinkids/pkg/validate"
)

type Service interface {
	Categories(ctx context.Context) ([]domain.SpendingCategory, error)
	AddSpending(ctx context.Context, userID int, spending *domain.Spending, customCategory string) (*domain.Spending, []domain.UserAchievement, error)
	ListSpendings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Spending, error)
	DeleteSpending(ctx context.Context, userID, spendingID int) error
	SpendingSummary(ctx context.Context, userID int) ([]domain.CategoryTotal, error)
	AddSaving(ctx context.Context, userID int, saving *domain.Saving) (*domain.Saving, []domain.UserAchievement, error)
	ListSavings(ctx context.Context, userID int, filter domain.RecordFilter) ([]domain.Saving, error)
	DeleteSaving(ctx context.Context, userID, savingID int) error
	CreateGoal(ctx context.Context, userID int, goal *domain.SavingGoal) (*domain.SavingGoal, error)
	GetGoal(ctx context.Context, userID, goalID int) (*domain.SavingGoal, error)
	ListGoals(ctx context.Context, userID int) ([]domain.SavingGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID int) error
}

type TrackingHandler struct {
	tracking Service
}

func New(tracking Service) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

func respondTrackingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trackingservice.ErrSpendingNotFound),
		errors.Is(err, trackingservice.ErrSavingNotFound),
		errors.Is(err, trackingservice.ErrGoalNotFound),
		errors.Is(err, trackingservice.ErrCategoryNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, trackingservice.ErrCategoryRequired):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, trackingservice.ErrInvalidAmount), errors.Is(err, trackingservice.ErrInvalidTarget):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func recordFilter(r *http.Request) (domain.RecordFilter, error) {
	q := r.URL.Query()
	filter := domain.RecordFilter{
		Search:    q.Get("search"),
		ChildName: q.Get("child_name"),
	}
	if v := q.Get("category_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("category_id must be a number")
		}
		filter.CategoryID = &id
	}
	var err error
	if filter.From, err = dto.ParseOptionalDate(q.Get("from")); err != nil {
		return filter, errors.New("from must be YYYY-MM-DD")
	}
	if filter.To, err = dto.ParseOptionalDate(q.Get("to")); err != nil {
		return filter, errors.New("to must be YYYY-MM-DD")
	}
	return filter, nil
}

// Categories godoc
//
//	@Summary	Spending categories
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.CategoryDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/categories [get]
func (h *TrackingHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.tracking.Categories(r.Context())
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCategories(categories))
}

// AddSpending godoc
//
//	@Summary		Track a spending
//	@Description	Either category_id or custom_category is required. A custom category is created on first use.
//	@Tags			Tracking
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendingRequestDTO	true	"Spending"
//	@Success		201		{object}	dto.SpendingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Category not found"
//	@Failure		422		{object}	utils.Response	"Negative amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tracking/spendings [post]
func (h *TrackingHandler) AddSpending(w http.ResponseWriter, r *http.Request) {
	var req dto.SpendingRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	spending, unlocked, err := h.tracking.AddSpending(r.Context(), auth.UserID(r.Context()), &domain.Spending{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		ChildName:   req.ChildName,
		Date:        date,
	}, req.CustomCategory)
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SpendingResponseDTO{
		Spending: dto.NewSpending(*spending),
		Unlocked: dto.NewUnlocked(unlocked),
	})
}

// ListSpendings godoc
//
//	@Summary	List spendings
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Produce	json
//	@Param		search		query		string	false	"Text in description or child name"
//	@Param		child_name	query		string	false	"Child name"
//	@Param		category_id	query		int		false	"Category"
//	@Param		from		query		string	false	"From date, YYYY-MM-DD"
//	@Param		to			query		string	false	"To date, YYYY-MM-DD"
//	@Success	200			{array}		dto.SpendingDTO
//	@Failure	400			{object}	utils.Response	"Invalid filter"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/spendings [get]
func (h *TrackingHandler) ListSpendings(w http.ResponseWriter, r *http.Request) {
	filter, err := recordFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.tracking.ListSpendings(r.Context(), auth.UserID(r.Context()), filter)
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSpendings(list))
}

// DeleteSpending godoc
//
//	@Summary	Delete a spending
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Spending ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Spending not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/spendings/{id} [delete]
func (h *TrackingHandler) DeleteSpending(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondTrackingError(w, trackingservice.ErrSpendingNotFound)
		return
	}
	if err := h.tracking.DeleteSpending(r.Context(), auth.UserID(r.Context()), id); err != nil {
		respondTrackingError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SpendingSummary godoc
//
//	@Summary	Spending totals by category
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.CategoryTotalDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/spendings/summary [get]
func (h *TrackingHandler) SpendingSummary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.tracking.SpendingSummary(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCategoryTotals(totals))
}

// AddSaving godoc
//
//	@Summary		Track a saving
//	@Description	A saving linked to a goal may complete it and unlock achievements.
//	@Tags			Tracking
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SavingRequestDTO	true	"Saving"
//	@Success		201		{object}	dto.SavingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Goal not found"
//	@Failure		422		{object}	utils.Response	"Negative amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tracking/savings [post]
func (h *TrackingHandler) AddSaving(w http.ResponseWriter, r *http.Request) {
	var req dto.SavingRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	saving, unlocked, err := h.tracking.AddSaving(r.Context(), auth.UserID(r.Context()), &domain.Saving{
		SavingGoalID: req.SavingGoalID,
		Amount:       req.Amount,
		Description:  req.Description,
		ChildName:    req.ChildName,
		Date:         date,
	})
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SavingResponseDTO{
		Saving:   dto.NewSaving(*saving),
		Unlocked: dto.NewUnlocked(unlocked),
	})
}

// ListSavings godoc
//
//	@Summary	List savings
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Produce	json
//	@Param		search		query		string	false	"Text in description or child name"
//	@Param		child_name	query		string	false	"Child name"
//	@Param		from		query		string	false	"From date, YYYY-MM-DD"
//	@Param		to			query		string	false	"To date, YYYY-MM-DD"
//	@Success	200			{array}		dto.SavingDTO
//	@Failure	400			{object}	utils.Response	"Invalid filter"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/savings [get]
func (h *TrackingHandler) ListSavings(w http.ResponseWriter, r *http.Request) {
	filter, err := recordFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.tracking.ListSavings(r.Context(), auth.UserID(r.Context()), filter)
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSavings(list))
}

// DeleteSaving godoc
//
//	@Summary	Delete a saving
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Saving ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Saving not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/savings/{id} [delete]
func (h *TrackingHandler) DeleteSaving(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondTrackingError(w, trackingservice.ErrSavingNotFound)
		return
	}
	if err := h.tracking.DeleteSaving(r.Context(), auth.UserID(r.Context()), id); err != nil {
		respondTrackingError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateGoal godoc
//
//	@Summary	Create a saving goal
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.GoalRequestDTO	true	"Goal"
//	@Success	201		{object}	dto.GoalDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	422		{object}	utils.Response	"Target must be positive"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/goals [post]
func (h *TrackingHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.GoalRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	deadline, err := dto.ParseOptionalDate(req.Deadline)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "deadline must be YYYY-MM-DD")
		return
	}

	goal, err := h.tracking.CreateGoal(r.Context(), auth.UserID(r.Context()), &domain.SavingGoal{
		GoalName:     req.GoalName,
		TargetAmount: req.TargetAmount,
		ChildName:    req.ChildName,
		Deadline:     deadline,
		Icon:         req.Icon,
		Color:        req.Color,
		Description:  req.Description,
	})
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGoal(*goal))
}

// ListGoals godoc
//
//	@Summary	List saving goals with progress
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.GoalDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/goals [get]
func (h *TrackingHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.tracking.ListGoals(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGoals(goals))
}

// GetGoal godoc
//
//	@Summary	Saving goal with progress
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Goal ID"
//	@Success	200	{object}	dto.GoalDTO
//	@Failure	404	{object}	utils.Response	"Goal not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/goals/{id} [get]
func (h *TrackingHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondTrackingError(w, trackingservice.ErrGoalNotFound)
		return
	}
	goal, err := h.tracking.GetGoal(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		respondTrackingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGoal(*goal))
}

// DeleteGoal godoc
//
//	@Summary	Delete a saving goal
//	@Tags		Tracking
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Goal ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Goal not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/tracking/goals/{id} [delete]
func (h *TrackingHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondTrackingError(w, trackingservice.ErrGoalNotFound)
		return
	}
	if err := h.tracking.DeleteGoal(r.Context(), auth.UserID(r.Context()), id); err != nil {
		respondTrackingError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
