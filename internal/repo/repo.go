package repo

import (
	"github.com/GlebRadaev/coinkids/internal/cache"
	"github.com/GlebRadaev/coinkids/internal/pg"
	achievementrepo "github.com/GlebRadaev/coinkids/internal/repo/achievement-repo"
	lessonrepo "github.com/GlebRadaev/coinkids/internal/repo/lesson-repo"
	prizerepo "github.com/GlebRadaev/coinkids/internal/repo/prize-repo"
	trackingrepo "github.com/GlebRadaev/coinkids/internal/repo/tracking-repo"
	transactionrepo "github.com/GlebRadaev/coinkids/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/coinkids/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/coinkids/internal/repo/wallet-repo"
	"github.com/GlebRadaev/coinkids/internal/service/achievementservice"
	"github.com/GlebRadaev/coinkids/internal/service/authservice"
	"github.com/GlebRadaev/coinkids/internal/service/ledgerservice"
	"github.com/GlebRadaev/coinkids/internal/service/lessonservice"
	"github.com/GlebRadaev/coinkids/internal/service/prizeservice"
	"github.com/GlebRadaev/coinkids/internal/service/trackingservice"
)

// AchievementRepo backs both the rule evaluator and the catalog cache.
type AchievementRepo interface {
	achievementservice.Repo
	cache.Source
}

type Repositories struct {
	UserRepo        authservice.Repo
	WalletRepo      ledgerservice.WalletRepo
	TransactionRepo ledgerservice.TransactionRepo
	AchievementRepo AchievementRepo
	TrackingRepo    trackingservice.Repo
	LessonRepo      lessonservice.Repo
	PrizeRepo       prizeservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		AchievementRepo: achievementrepo.New(conn),
		TrackingRepo:    trackingrepo.New(conn),
		LessonRepo:      lessonrepo.New(conn),
		PrizeRepo:       prizerepo.New(conn, txManager),
	}
}
