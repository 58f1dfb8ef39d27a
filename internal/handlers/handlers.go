package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/coinkids/docs"
	achievementhandlers "github.com/GlebRadaev/coinkids/internal/handlers/achievements"
	authhandlers "github.com/GlebRadaev/coinkids/internal/handlers/auth"
	dashboardhandlers "github.com/GlebRadaev/coinkids/internal/handlers/dashboard"
	lessonhandlers "github.com/GlebRadaev/coinkids/internal/handlers/lessons"
	prizehandlers "github.com/GlebRadaev/coinkids/internal/handlers/prizes"
	trackinghandlers "github.com/GlebRadaev/coinkids/internal/handlers/tracking"
	wallethandlers "github.com/GlebRadaev/coinkids/internal/handlers/wallets"
	"github.com/GlebRadaev/coinkids/internal/service"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	CreateWallet(w http.ResponseWriter, r *http.Request)
	ListWallets(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	GetWallet(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	RecordTransaction(w http.ResponseWriter, r *http.Request)
}

type AchievementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Unnotified(w http.ResponseWriter, r *http.Request)
	MarkNotified(w http.ResponseWriter, r *http.Request)
}

type TrackingHandler interface {
	Categories(w http.ResponseWriter, r *http.Request)
	AddSpending(w http.ResponseWriter, r *http.Request)
	ListSpendings(w http.ResponseWriter, r *http.Request)
	DeleteSpending(w http.ResponseWriter, r *http.Request)
	SpendingSummary(w http.ResponseWriter, r *http.Request)
	AddSaving(w http.ResponseWriter, r *http.Request)
	ListSavings(w http.ResponseWriter, r *http.Request)
	DeleteSaving(w http.ResponseWriter, r *http.Request)
	CreateGoal(w http.ResponseWriter, r *http.Request)
	ListGoals(w http.ResponseWriter, r *http.Request)
	GetGoal(w http.ResponseWriter, r *http.Request)
	DeleteGoal(w http.ResponseWriter, r *http.Request)
}

type LessonHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
}

type PrizeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Featured(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	WalletHandler      WalletHandler
	AchievementHandler AchievementHandler
	TrackingHandler    TrackingHandler
	LessonHandler      LessonHandler
	PrizeHandler       PrizeHandler
	DashboardHandler   DashboardHandler

	JWTService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		WalletHandler:      wallethandlers.New(s.WalletService),
		AchievementHandler: achievementhandlers.New(s.AchievementService),
		TrackingHandler:    trackinghandlers.New(s.TrackingService),
		LessonHandler:      lessonhandlers.New(s.LessonService),
		PrizeHandler:       prizehandlers.New(s.PrizeService),
		DashboardHandler:   dashboardhandlers.New(s.DashboardService),
		JWTService:         jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWTService))

			r.Get("/dashboard", h.DashboardHandler.Get)

			r.Route("/wallets", func(r chi.Router) {
				r.Get("/", h.WalletHandler.ListWallets)
				r.Post("/", h.WalletHandler.CreateWallet)
				r.Get("/summary", h.WalletHandler.Summary)
				r.Get("/{id}", h.WalletHandler.GetWallet)
				r.Get("/{id}/transactions", h.WalletHandler.ListTransactions)
				r.Post("/{id}/transactions", h.WalletHandler.RecordTransaction)
			})

			r.Route("/achievements", func(r chi.Router) {
				r.Get("/", h.AchievementHandler.List)
				r.Get("/unnotified", h.AchievementHandler.Unnotified)
				r.Post("/{id}/notified", h.AchievementHandler.MarkNotified)
			})

			r.Route("/tracking", func(r chi.Router) {
				r.Get("/categories", h.TrackingHandler.Categories)
				r.Route("/spendings", func(r chi.Router) {
					r.Get("/", h.TrackingHandler.ListSpendings)
					r.Post("/", h.TrackingHandler.AddSpending)
					r.Get("/summary", h.TrackingHandler.SpendingSummary)
					r.Delete("/{id}", h.TrackingHandler.DeleteSpending)
				})
				r.Route("/savings", func(r chi.Router) {
					r.Get("/", h.TrackingHandler.ListSavings)
					r.Post("/", h.TrackingHandler.AddSaving)
					r.Delete("/{id}", h.TrackingHandler.DeleteSaving)
				})
				r.Route("/goals", func(r chi.Router) {
					r.Get("/", h.TrackingHandler.ListGoals)
					r.Post("/", h.TrackingHandler.CreateGoal)
					r.Get("/{id}", h.TrackingHandler.GetGoal)
					r.Delete("/{id}", h.TrackingHandler.DeleteGoal)
				})
			})

			r.Route("/lessons", func(r chi.Router) {
				r.Get("/", h.LessonHandler.List)
				r.Get("/stats", h.LessonHandler.Statistics)
				r.Get("/{id}", h.LessonHandler.Get)
				r.Post("/{id}/start", h.LessonHandler.Start)
				r.Post("/{id}/complete", h.LessonHandler.Complete)
				r.Post("/{id}/reopen", h.LessonHandler.Reopen)
			})

			r.Route("/prizes", func(r chi.Router) {
				r.Get("/", h.PrizeHandler.List)
				r.Get("/featured", h.PrizeHandler.Featured)
				r.Get("/history", h.PrizeHandler.History)
				r.Get("/{id}", h.PrizeHandler.Get)
				r.Post("/{id}/redeem", h.PrizeHandler.Redeem)
			})
		})
	})

	return r
}
