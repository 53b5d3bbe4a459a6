package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/pkg/cleanup"
	"github.com/limbo/tenk/pkg/entity"
)

type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepo(cfg DBConfig) *SettingsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for settingsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for settingsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SettingsRepository{
		conn: pool,
	}
}

func NewSettingsRepoWithConn(conn PgConnection) *SettingsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for settingsRepo: " + err.Error())
	}
	return &SettingsRepository{
		conn: conn,
	}
}

func (str *SettingsRepository) GetByUser(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	var settings entity.UserSettings
	settings.UserID = uid
	row := str.conn.QueryRow(ctx,
		`SELECT daily_goal_hours, break_reminder_minutes, sound_notifications FROM user_settings WHERE user_id = $1;`,
		uid)
	if err := row.Scan(&settings.DailyGoalHours, &settings.BreakReminderMinutes, &settings.SoundNotifications); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSettingsNotFound
		}
		return nil, errors.New("getting settings error: " + err.Error())
	}
	return &settings, nil
}

func (str *SettingsRepository) Upsert(ctx context.Context, settings *entity.UserSettings) error {
	_, err := str.conn.Exec(ctx,
		`INSERT INTO user_settings (user_id, daily_goal_hours, break_reminder_minutes, sound_notifications)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET daily_goal_hours = EXCLUDED.daily_goal_hours, break_reminder_minutes = EXCLUDED.break_reminder_minutes, sound_notifications = EXCLUDED.sound_notifications;`,
		settings.UserID,
		settings.DailyGoalHours,
		settings.BreakReminderMinutes,
		settings.SoundNotifications,
	)
	if err != nil {
		return errors.New("upserting settings error: " + err.Error())
	}
	return nil
}
