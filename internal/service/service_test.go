package service

import (
	"testing"
	"time"

	"github.com/GlebRadaev/coinkids/internal/cache"
	"github.com/GlebRadaev/coinkids/internal/repo"
	"github.com/GlebRadaev/coinkids/internal/reward"
	"github.com/GlebRadaev/coinkids/internal/service/achievementservice"
	"github.com/GlebRadaev/coinkids/internal/service/authservice"
	"github.com/GlebRadaev/coinkids/internal/service/dashboardservice"
	"github.com/GlebRadaev/coinkids/internal/service/ledgerservice"
	"github.com/GlebRadaev/coinkids/internal/service/lessonservice"
	"github.com/GlebRadaev/coinkids/internal/service/prizeservice"
	"github.com/GlebRadaev/coinkids/internal/service/trackingservice"
	"github.com/GlebRadaev/coinkids/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type achievementRepo struct {
	*achievementservice.MockRepo
	*cache.MockSource
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:        authservice.NewMockRepo(ctrl),
		WalletRepo:      ledgerservice.NewMockWalletRepo(ctrl),
		TransactionRepo: ledgerservice.NewMockTransactionRepo(ctrl),
		AchievementRepo: achievementRepo{achievementservice.NewMockRepo(ctrl), cache.NewMockSource(ctrl)},
		TrackingRepo:    trackingservice.NewMockRepo(ctrl),
		LessonRepo:      lessonservice.NewMockRepo(ctrl),
		PrizeRepo:       prizeservice.NewMockRepo(ctrl),
	}
	pool := reward.NewWorkerPool(1, 1)
	defer pool.Close()

	services := New(repos, Deps{
		WorkerPool:    pool,
		RewardTimeout: time.Second,
		JWTService:    auth.NewMockJWTServiceInterface(ctrl),
		TokenTTL:      time.Hour,
	})

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &ledgerservice.Service{}, services.WalletService)
	assert.IsType(t, &achievementservice.Service{}, services.AchievementService)
	assert.IsType(t, &trackingservice.Service{}, services.TrackingService)
	assert.IsType(t, &lessonservice.Service{}, services.LessonService)
	assert.IsType(t, &prizeservice.Service{}, services.PrizeService)
	assert.IsType(t, &dashboardservice.Service{}, services.DashboardService)
}
