package service

import (
	"time"

	"github.com/GlebRadaev/coinkids/internal/handlers/achievements"
	"github.com/GlebRadaev/coinkids/internal/handlers/auth"
	"github.com/GlebRadaev/coinkids/internal/handlers/dashboard"
	"github.com/GlebRadaev/coinkids/internal/handlers/lessons"
	"github.com/GlebRadaev/coinkids/internal/handlers/prizes"
	"github.com/GlebRadaev/coinkids/internal/handlers/tracking"
	"github.com/GlebRadaev/coinkids/internal/handlers/wallets"
	"github.com/GlebRadaev/coinkids/internal/repo"
	"github.com/GlebRadaev/coinkids/internal/reward"
	"github.com/GlebRadaev/coinkids/internal/service/achievementservice"
	"github.com/GlebRadaev/coinkids/internal/service/authservice"
	"github.com/GlebRadaev/coinkids/internal/service/dashboardservice"
	"github.com/GlebRadaev/coinkids/internal/service/ledgerservice"
	"github.com/GlebRadaev/coinkids/internal/service/lessonservice"
	"github.com/GlebRadaev/coinkids/internal/service/prizeservice"
	"github.com/GlebRadaev/coinkids/internal/service/trackingservice"

	pkgauth "github.com/GlebRadaev/coinkids/pkg/auth"
)

// Deps are the collaborators that live outside the database. Catalog and Publisher are
// optional: the achievement repository and a no-op publisher stand in for them.
type Deps struct {
	WorkerPool    reward.WorkerPoolI
	RewardTimeout time.Duration
	Catalog       achievementservice.Catalog
	Publisher     achievementservice.Publisher
	JWTService    pkgauth.JWTServiceInterface
	TokenTTL      time.Duration
	HashCost      int
}

type Services struct {
	AuthService        auth.Service
	WalletService      wallets.Service
	AchievementService achievements.Service
	TrackingService    tracking.Service
	LessonService      lessons.Service
	PrizeService       prizes.Service
	DashboardService   dashboard.Service
}

func New(repo *repo.Repositories, deps Deps) *Services {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = repo.AchievementRepo
	}

	rewardService := reward.New(repo.WalletRepo, repo.TransactionRepo, deps.WorkerPool, deps.RewardTimeout)
	achievementService := achievementservice.New(repo.AchievementRepo, catalog, rewardService, deps.Publisher)
	ledgerService := ledgerservice.New(repo.WalletRepo, repo.TransactionRepo, achievementService)
	trackingService := trackingservice.New(repo.TrackingRepo, achievementService)
	lessonService := lessonservice.New(repo.LessonRepo, ledgerService, rewardService, achievementService)
	prizeService := prizeservice.New(repo.PrizeRepo, ledgerService)
	dashboardService := dashboardservice.New(ledgerService, lessonService, achievementService, trackingService)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(deps.HashCost), deps.JWTService, deps.TokenTTL)

	return &Services{
		AuthService:        authService,
		WalletService:      ledgerService,
		AchievementService: achievementService,
		TrackingService:    trackingService,
		LessonService:      lessonService,
		PrizeService:       prizeService,
		DashboardService:   dashboardService,
	}
}
