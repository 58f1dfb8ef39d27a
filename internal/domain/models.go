package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

func (k TransactionKind) Valid() bool {
	return k == TransactionIncome || k == TransactionExpense
}

type Wallet struct {
	ID                     int             `db:"id"`
	UserID                 int             `db:"user_id"`
	ChildName              string          `db:"child_name"`
	CoinName               string          `db:"coin_name"`
	CoinIcon               string          `db:"coin_icon"`
	IsPracticeMode         bool            `db:"is_practice_mode"`
	PracticeInitialBalance decimal.Decimal `db:"practice_initial_balance"`
	CreatedAt              time.Time       `db:"created_at"`
}

type WalletTransaction struct {
	ID          int             `db:"id"`
	WalletID    int             `db:"wallet_id"`
	Kind        TransactionKind `db:"transaction_type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}

type WalletBalance struct {
	Wallet  Wallet
	Balance decimal.Decimal
}

type WalletSummary struct {
	Wallets         []WalletBalance
	TotalBalance    decimal.Decimal
	PracticeBalance decimal.Decimal
	RealBalance     decimal.Decimal
}

type WalletStatistics struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

type AchievementType string

const (
	AchievementWalletCreated     AchievementType = "wallet_created"
	AchievementSavingGoalReached AchievementType = "saving_goal_reached"
	AchievementSpendingTracked   AchievementType = "spending_tracked"
	AchievementLessonComplete    AchievementType = "lesson_complete"
	AchievementMilestone         AchievementType = "milestone"
)

type Achievement struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Icon         string          `db:"icon"`
	Color        string          `db:"color"`
	Type         AchievementType `db:"achievement_type"`
	CoinReward   decimal.Decimal `db:"coin_reward"`
	Requirements Requirements    `db:"requirements"`
	Order        int             `db:"display_order"`
	IsActive     bool            `db:"is_active"`
	CreatedAt    time.Time       `db:"created_at"`
}

// UserAchievement is the unlock record of one achievement for one user.
type UserAchievement struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	AchievementID int       `db:"achievement_id"`
	UnlockedAt    time.Time `db:"unlocked_at"`
	IsNotified    bool      `db:"is_notified"`
	Achievement   Achievement
}

// Counters carries the activity totals a domain event reports to the rule evaluator.
type Counters struct {
	WalletCount    int
	TrackedCount   int
	CompletedCount int
	GoalID         *int
}

type AchievementOverview struct {
	Unlocked      []Achievement
	Locked        []Achievement
	Total         int
	UnlockedCount int
}

type SpendingCategory struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Icon        string `db:"icon"`
	Color       string `db:"color"`
	Description string `db:"description"`
}

type Spending struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	CategoryID  *int            `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	ChildName   string          `db:"child_name"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}

type CategoryTotal struct {
	CategoryID   *int
	CategoryName string
	Total        decimal.Decimal
	Count        int
}

type Saving struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	SavingGoalID *int            `db:"saving_goal_id"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	ChildName    string          `db:"child_name"`
	Date         time.Time       `db:"date"`
	CreatedAt    time.Time       `db:"created_at"`
}

type LessonStatus string

const (
	LessonDraft     LessonStatus = "draft"
	LessonPublished LessonStatus = "published"
)

type Lesson struct {
	ID              int             `db:"id"`
	Title           string          `db:"title"`
	Slug            string          `db:"slug"`
	Subtitle        string          `db:"subtitle"`
	Description     string          `db:"description"`
	Icon            string          `db:"icon"`
	LessonNumber    int             `db:"lesson_number"`
	AgeRange        string          `db:"age_range"`
	DurationMinutes int             `db:"duration_minutes"`
	CoinReward      decimal.Decimal `db:"coin_reward"`
	Status          LessonStatus    `db:"status"`
}

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

type LessonProgress struct {
	ID          int            `db:"id"`
	UserID      int            `db:"user_id"`
	LessonID    int            `db:"lesson_id"`
	Status      ProgressStatus `db:"status"`
	StartedAt   *time.Time     `db:"started_at"`
	CompletedAt *time.Time     `db:"completed_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type LessonWithProgress struct {
	Lesson Lesson
	Status ProgressStatus
}

type LessonStatistics struct {
	TotalLessons         int
	CompletedCount       int
	InProgressCount      int
	NotStartedCount      int
	CompletionPercentage float64
}

type Dashboard struct {
	Wallets      *WalletSummary
	Lessons      *LessonStatistics
	Achievements *AchievementOverview
	Goals        []SavingGoal
}

// RecordFilter narrows spending and saving listings. Zero fields match everything.
type RecordFilter struct {
	Search     string
	ChildName  string
	CategoryID *int
	From       *time.Time
	To         *time.Time
}
