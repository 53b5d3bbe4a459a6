package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/tenk/pkg/entity"
)

type RegisterRequest struct {
	// Name may be omitted, a random username is generated then
	Name     string `validate:"omitempty,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UpdateSettingsRequest struct {
	DailyGoalHours       int  `validate:"min=2,max=8"`
	BreakReminderMinutes int  `validate:"oneof=30 60 90 120"`
	SoundNotifications   bool `validate:"-"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Renames user and syncs the denormalized leaderboard name
	ChangeUsername(ctx context.Context, id uuid.UUID, username string) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type SessionsServiceI interface {
	// Creates a running session. Rejects if the user already has an open one
	StartSession(ctx context.Context, uid uuid.UUID, activityName string) (*entity.Session, error)
	// Persists the caller-supplied elapsed duration and pause flag
	UpdateSession(ctx context.Context, uid, sessionID uuid.UUID, duration int64, isPaused bool) error
	// Marks the session completed and cascades the activity, daily and
	// leaderboard rollups
	CompleteSession(ctx context.Context, uid, sessionID uuid.UUID, duration int64) error
	// Returns the open session with its live duration
	CurrentSession(ctx context.Context, uid uuid.UUID) (*entity.CurrentSession, error)
	// Consecutive achieved days ending today
	Streak(ctx context.Context, uid uuid.UUID) (int, error)
}

type ProgressServiceI interface {
	TodayProgress(ctx context.Context, uid uuid.UUID) (*entity.TodayProgress, error)
	TotalProgress(ctx context.Context, uid uuid.UUID) (*entity.TotalProgress, error)
	WeeklyStats(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error)
	MonthlyStats(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error)
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
	UserActivities(ctx context.Context, uid uuid.UUID) ([]entity.Activity, error)
}

type SettingsServiceI interface {
	// Stored settings or the defaults when the user never saved any
	GetSettings(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	UpdateSettings(ctx context.Context, uid uuid.UUID, req *UpdateSettingsRequest) (*entity.UserSettings, error)
}
