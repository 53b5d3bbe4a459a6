package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/tenk/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login and uniqueness checks
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Renames user
	UpdateName(ctx context.Context, uid uuid.UUID, name string) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type SessionsRepositoryI interface {
	// Creates new session. UserID, ActivityName, StartTime and Date are necessary
	Create(ctx context.Context, session *entity.Session) (uuid.UUID, error)
	// Searches session with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Returns the user's single uncompleted session, if any
	GetOpenByUser(ctx context.Context, uid uuid.UUID) (*entity.Session, error)
	// Persists the banked duration and pause flag of an open session
	UpdateProgress(ctx context.Context, id uuid.UUID, duration int64, isPaused bool) error
	// Marks session completed, irreversibly
	Complete(ctx context.Context, id uuid.UUID, endTime, duration int64) error
	// Lists completed sessions whose date column equals date
	CompletedByUserAndDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.Session, error)
	// Lists all completed sessions of the user
	CompletedByUser(ctx context.Context, uid uuid.UUID) ([]entity.Session, error)
	// Lists completed sessions started at or after since (epoch ms)
	CompletedByUserSince(ctx context.Context, uid uuid.UUID, since int64) ([]entity.Session, error)
}

type ActivitiesRepositoryI interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetByUserAndName(ctx context.Context, uid uuid.UUID, name string) (*entity.Activity, error)
	// Adds seconds to the activity total, bumps the session count and
	// refreshes last_practiced
	AddSession(ctx context.Context, uid uuid.UUID, name string, seconds, practicedAt int64) error
	// Lists the user's activities, most recently practiced first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Activity, error)
}

type DailyProgressRepositoryI interface {
	// Creates or replaces the (user, date) rollup row
	Upsert(ctx context.Context, progress *entity.DailyProgress) error
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyProgress, error)
	// Lists the user's rollup rows, newest date first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.DailyProgress, error)
}

type SettingsRepositoryI interface {
	GetByUser(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	Upsert(ctx context.Context, settings *entity.UserSettings) error
}

type LeaderboardRepositoryI interface {
	// Creates or replaces the user's leaderboard row
	Upsert(ctx context.Context, entry *entity.LeaderboardEntry) error
	// Top entries by total hours descending
	Top(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	// Keeps the denormalized user name in sync after a rename
	UpdateUserName(ctx context.Context, uid uuid.UUID, name string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
