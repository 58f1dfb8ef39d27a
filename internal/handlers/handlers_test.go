package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/coinkids/internal/handlers/achievements"
	"github.com/GlebRadaev/coinkids/internal/handlers/auth"
	"github.com/GlebRadaev/coinkids/internal/handlers/dashboard"
	"github.com/GlebRadaev/coinkids/internal/handlers/lessons"
	"github.com/GlebRadaev/coinkids/internal/handlers/prizes"
	"github.com/GlebRadaev/coinkids/internal/handlers/tracking"
	"github.com/GlebRadaev/coinkids/internal/handlers/wallets"
	"github.com/GlebRadaev/coinkids/internal/service"
	pkgauth "github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:        auth.NewMockService(ctrl),
		WalletService:      wallets.NewMockService(ctrl),
		AchievementService: achievements.NewMockService(ctrl),
		TrackingService:    tracking.NewMockService(ctrl),
		LessonService:      lessons.NewMockService(ctrl),
		PrizeService:       prizes.NewMockService(ctrl),
		DashboardService:   dashboard.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.AchievementHandler)
	assert.NotNil(t, h.TrackingHandler)
	assert.NotNil(t, h.LessonHandler)
	assert.NotNil(t, h.PrizeHandler)
	assert.NotNil(t, h.DashboardHandler)
}

func newRouter(ctrl *gomock.Controller, jwtService pkgauth.JWTServiceInterface) chi.Router {
	authHandler := NewMockAuthHandler(ctrl)
	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	walletHandler := NewMockWalletHandler(ctrl)
	walletHandler.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().ListWallets(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().Summary(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).AnyTimes()

	achievementHandler := NewMockAchievementHandler(ctrl)
	achievementHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	achievementHandler.EXPECT().Unnotified(gomock.Any(), gomock.Any()).AnyTimes()
	achievementHandler.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).AnyTimes()

	trackingHandler := NewMockTrackingHandler(ctrl)
	trackingHandler.EXPECT().Categories(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().AddSpending(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().ListSpendings(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().DeleteSpending(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().SpendingSummary(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().AddSaving(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().ListSavings(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().DeleteSaving(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().ListGoals(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().GetGoal(gomock.Any(), gomock.Any()).AnyTimes()
	trackingHandler.EXPECT().DeleteGoal(gomock.Any(), gomock.Any()).AnyTimes()

	lessonHandler := NewMockLessonHandler(ctrl)
	lessonHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	lessonHandler.EXPECT().Statistics(gomock.Any(), gomock.Any()).AnyTimes()
	lessonHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	lessonHandler.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes()
	lessonHandler.EXPECT().Complete(gomock.Any(), gomock.Any()).AnyTimes()
	lessonHandler.EXPECT().Reopen(gomock.Any(), gomock.Any()).AnyTimes()

	prizeHandler := NewMockPrizeHandler(ctrl)
	prizeHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	prizeHandler.EXPECT().Featured(gomock.Any(), gomock.Any()).AnyTimes()
	prizeHandler.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()
	prizeHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	prizeHandler.EXPECT().Redeem(gomock.Any(), gomock.Any()).AnyTimes()

	dashboardHandler := NewMockDashboardHandler(ctrl)
	dashboardHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        authHandler,
		WalletHandler:      walletHandler,
		AchievementHandler: achievementHandler,
		TrackingHandler:    trackingHandler,
		LessonHandler:      lessonHandler,
		PrizeHandler:       prizeHandler,
		DashboardHandler:   dashboardHandler,
		JWTService:         jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

var protectedRoutes = []struct {
	method string
	url    string
}{
	{"GET", "/api/dashboard"},
	{"GET", "/api/wallets"},
	{"POST", "/api/wallets"},
	{"GET", "/api/wallets/summary"},
	{"GET", "/api/wallets/1"},
	{"GET", "/api/wallets/1/transactions"},
	{"POST", "/api/wallets/1/transactions"},
	{"GET", "/api/achievements"},
	{"GET", "/api/achievements/unnotified"},
	{"POST", "/api/achievements/1/notified"},
	{"GET", "/api/tracking/categories"},
	{"GET", "/api/tracking/spendings"},
	{"POST", "/api/tracking/spendings"},
	{"GET", "/api/tracking/spendings/summary"},
	{"DELETE", "/api/tracking/spendings/1"},
	{"GET", "/api/tracking/savings"},
	{"POST", "/api/tracking/savings"},
	{"DELETE", "/api/tracking/savings/1"},
	{"GET", "/api/tracking/goals"},
	{"POST", "/api/tracking/goals"},
	{"GET", "/api/tracking/goals/1"},
	{"DELETE", "/api/tracking/goals/1"},
	{"GET", "/api/lessons"},
	{"GET", "/api/lessons/stats"},
	{"GET", "/api/lessons/1"},
	{"POST", "/api/lessons/1/start"},
	{"POST", "/api/lessons/1/complete"},
	{"POST", "/api/lessons/1/reopen"},
	{"GET", "/api/prizes"},
	{"GET", "/api/prizes/featured"},
	{"GET", "/api/prizes/history"},
	{"GET", "/api/prizes/1"},
	{"POST", "/api/prizes/1/redeem"},
}

func TestInitRoutes_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(ctrl, pkgauth.NewMockJWTServiceInterface(ctrl))

	for _, url := range []string{"/api/user/register", "/api/user/login"} {
		req := httptest.NewRequest("POST", url, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, url)
	}
}

func TestInitRoutes_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(ctrl, pkgauth.NewMockJWTServiceInterface(ctrl))

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInitRoutes_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)
	jwtService.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
	router := newRouter(ctrl, jwtService)

	req := httptest.NewRequest("GET", "/api/wallets", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInitRoutes_Authorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)
	jwtService.EXPECT().ValidateToken("valid").Return(&pkgauth.Claims{UserID: 1}, nil).AnyTimes()
	router := newRouter(ctrl, jwtService)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer valid")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
