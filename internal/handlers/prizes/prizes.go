package prizes

//go:generate mockgen -source=prizes.go -destination=mock_prizes.go -package=prizes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/internal/service/ledgerservice"
	"github.com/GlebRadaev/coinkids/internal/service/prizeservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/GlebRadaev/coinkids/pkg/utils"
	"github.com/GlebRadaev/coinkids/pkg/validate"
)

type Service interface {
	ListAvailable(ctx context.Context, category domain.PrizeCategory, featured bool) ([]domain.Prize, error)
	Search(ctx context.Context, query string, category domain.PrizeCategory) ([]domain.Prize, error)
	Featured(ctx context.Context, limit int) ([]domain.Prize, error)
	Get(ctx context.Context, prizeID int) (*domain.Prize, error)
	CanRedeem(ctx context.Context, userID int, prize *domain.Prize) error
	Redeem(ctx context.Context, userID, prizeID, walletID int) (*domain.WalletTransaction, error)
	History(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type PrizeHandler struct {
	prizes Service
}

func New(prizes Service) *PrizeHandler {
	return &PrizeHandler{prizes: prizes}
}

func respondPrizeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, prizeservice.ErrPrizeNotFound), errors.Is(err, ledgerservice.ErrWalletNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, prizeservice.ErrInsufficientCoins):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, prizeservice.ErrPrizeUnavailable), errors.Is(err, prizeservice.ErrNoWallet):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// List godoc
//
//	@Summary		Prize catalog
//	@Description	Without q only currently available prizes are listed. With q active prizes are searched by name and description.
//	@Tags			Prizes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			category	query		string	false	"digital, physical, privilege or certificate"
//	@Param			featured	query		bool	false	"Featured prizes only"
//	@Param			q			query		string	false	"Search text"
//	@Success		200			{array}		dto.PrizeDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/prizes [get]
func (h *PrizeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.PrizeQueryDTO{Category: q.Get("category"), Query: q.Get("q")}
	if err := validate.Struct(query); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	category := domain.PrizeCategory(query.Category)

	var (
		prizes []domain.Prize
		err    error
	)
	if query.Query != "" {
		prizes, err = h.prizes.Search(r.Context(), query.Query, category)
	} else {
		prizes, err = h.prizes.ListAvailable(r.Context(), category, q.Get("featured") == "true")
	}
	if err != nil {
		respondPrizeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPrizes(prizes))
}

// Featured godoc
//
//	@Summary	Featured prizes
//	@Tags		Prizes
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum number of prizes"
//	@Success	200		{array}		dto.PrizeDTO
//	@Failure	400		{object}	utils.Response	"Invalid limit"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/prizes/featured [get]
func (h *PrizeHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative number")
			return
		}
		limit = n
	}
	prizes, err := h.prizes.Featured(r.Context(), limit)
	if err != nil {
		respondPrizeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPrizes(prizes))
}

// Get godoc
//
//	@Summary	Prize details with redeemability
//	@Tags		Prizes
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Prize ID"
//	@Success	200	{object}	dto.PrizeDetailResponseDTO
//	@Failure	404	{object}	utils.Response	"Prize not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/prizes/{id} [get]
func (h *PrizeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondPrizeError(w, prizeservice.ErrPrizeNotFound)
		return
	}
	prize, err := h.prizes.Get(r.Context(), id)
	if err != nil {
		respondPrizeError(w, err)
		return
	}

	resp := dto.PrizeDetailResponseDTO{Prize: dto.NewPrize(*prize), CanRedeem: true}
	if err := h.prizes.CanRedeem(r.Context(), auth.UserID(r.Context()), prize); err != nil {
		if !errors.Is(err, prizeservice.ErrPrizeUnavailable) && !errors.Is(err, prizeservice.ErrInsufficientCoins) {
			respondPrizeError(w, err)
			return
		}
		resp.CanRedeem = false
		resp.Reason = err.Error()
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Redeem godoc
//
//	@Summary		Redeem a prize
//	@Description	The cost is charged to wallet_id, or to the first wallet when it is omitted.
//	@Tags			Prizes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Prize ID"
//	@Param			request	body		dto.RedeemRequestDTO	false	"Target wallet"
//	@Success		201		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Not enough coins"
//	@Failure		404		{object}	utils.Response	"Prize or wallet not found"
//	@Failure		409		{object}	utils.Response	"Prize unavailable or no wallet"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/prizes/{id}/redeem [post]
func (h *PrizeHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		respondPrizeError(w, prizeservice.ErrPrizeNotFound)
		return
	}
	var req dto.RedeemRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.prizes.Redeem(r.Context(), auth.UserID(r.Context()), id, req.WalletID)
	if err != nil {
		respondPrizeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransaction(*expense))
}

// History godoc
//
//	@Summary	Prize redemptions of the user
//	@Tags		Prizes
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/prizes/history [get]
func (h *PrizeHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.prizes.History(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondPrizeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactions(history))
}
