package wallets

//go:generate mockgen -source=wallets.go -destination=mock_wallets.go -package=wallets

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/GlebRadaev/coinkids/internal/dto"
	"github.com/GlebRadaev/coinkids/internal/service/ledgerservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/GlebRadaev/coinkids/pkg/utils"
	"github.com/GlebRadaev/coinkids/pkg/validate"
	"github.com/shopspring/decimal"
)

type Service interface {
	CreateWallet(ctx context.Context, userID int, wallet *domain.Wallet) (*domain.Wallet, []domain.UserAchievement, error)
	ListWallets(ctx context.Context, userID int, mode string) ([]domain.Wallet, error)
	SummaryFor(ctx context.Context, userID int) (*domain.WalletSummary, error)
	GetWallet(ctx context.Context, userID, walletID int) (*domain.Wallet, error)
	Statistics(ctx context.Context, userID, walletID int) (*domain.WalletStatistics, error)
	ListTransactions(ctx context.Context, userID, walletID int) ([]domain.WalletTransaction, error)
	RecordForUser(ctx context.Context, userID, walletID int, kind domain.TransactionKind, amount decimal.Decimal, description string, date time.Time) (*domain.WalletTransaction, error)
}

type WalletHandler struct {
	ledger Service
}

func New(ledger Service) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrWalletNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledgerservice.ErrWalletExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledgerservice.ErrInvalidAmount), errors.Is(err, ledgerservice.ErrInvalidKind):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateWallet godoc
//
//	@Summary		Create a wallet
//	@Description	Create a wallet for a child. Practice wallets may start with an initial balance.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWalletRequestDTO	true	"Wallet"
//	@Success		201		{object}	dto.CreateWalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Wallet already exists"
//	@Failure		422		{object}	utils.Response	"Negative initial balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets [post]
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.CreateWalletRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	wallet, unlocked, err := h.ledger.CreateWallet(r.Context(), userID, &domain.Wallet{
		ChildName:              req.ChildName,
		CoinName:               req.CoinName,
		CoinIcon:               req.CoinIcon,
		IsPracticeMode:         req.IsPracticeMode,
		PracticeInitialBalance: req.PracticeInitialBalance,
	})
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateWalletResponseDTO{
		Wallet:   dto.NewWallet(*wallet),
		Unlocked: dto.NewUnlocked(unlocked),
	})
}

// ListWallets godoc
//
//	@Summary		List wallets
//	@Description	List the user's wallets, newest first, optionally only practice or real ones.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			mode	query		string	false	"practice or real"
//	@Success		200		{array}		dto.WalletDTO
//	@Failure		400		{object}	utils.Response	"Unknown mode"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets [get]
func (h *WalletHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	mode := r.URL.Query().Get("mode")
	if mode != ledgerservice.ModeAll && mode != ledgerservice.ModePractice && mode != ledgerservice.ModeReal {
		utils.RespondWithError(w, http.StatusBadRequest, "mode must be practice or real")
		return
	}
	wallets, err := h.ledger.ListWallets(r.Context(), userID, mode)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWallets(wallets))
}

// Summary godoc
//
//	@Summary		Wallet summary
//	@Description	Every wallet with its derived balance plus total, practice and real balances.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletSummaryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/summary [get]
func (h *WalletHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledger.SummaryFor(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletSummary(summary))
}

// GetWallet godoc
//
//	@Summary		Wallet detail
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wallet ID"
//	@Success		200	{object}	dto.WalletDetailResponseDTO
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/{id} [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	walletID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, ledgerservice.ErrWalletNotFound.Error())
		return
	}

	wallet, err := h.ledger.GetWallet(r.Context(), userID, walletID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	stats, err := h.ledger.Statistics(r.Context(), userID, walletID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletDetail(wallet, stats))
}

// ListTransactions godoc
//
//	@Summary		Wallet transactions
//	@Description	Newest date first, then newest recorded.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wallet ID"
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/{id}/transactions [get]
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	walletID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, ledgerservice.ErrWalletNotFound.Error())
		return
	}
	txs, err := h.ledger.ListTransactions(r.Context(), auth.UserID(r.Context()), walletID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactions(txs))
}

// RecordTransaction godoc
//
//	@Summary		Record a transaction
//	@Description	Append income or expense to the wallet ledger. Expenses may take the balance below zero.
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Wallet ID"
//	@Param			request	body		dto.TransactionRequestDTO	true	"Transaction"
//	@Success		201		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		422		{object}	utils.Response	"Negative amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/{id}/transactions [post]
func (h *WalletHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	walletID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, ledgerservice.ErrWalletNotFound.Error())
		return
	}

	var req dto.TransactionRequestDTO
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

	tx, err := h.ledger.RecordForUser(r.Context(), auth.UserID(r.Context()), walletID,
		domain.TransactionKind(req.Type), req.Amount, req.Description, date)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransaction(*tx))
}
