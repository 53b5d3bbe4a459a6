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

type DailyProgressRepository struct {
	conn PgConnection
}

func NewDailyProgressRepo(cfg DBConfig) *DailyProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dailyProgressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyProgressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DailyProgressRepository{
		conn: pool,
	}
}

func NewDailyProgressRepoWithConn(conn PgConnection) *DailyProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyProgressRepo: " + err.Error())
	}
	return &DailyProgressRepository{
		conn: conn,
	}
}

func (dr *DailyProgressRepository) Upsert(ctx context.Context, progress *entity.DailyProgress) error {
	_, err := dr.conn.Exec(ctx,
		`INSERT INTO daily_progress (user_id, date, total_seconds, session_count, goal_achieved)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE
		SET total_seconds = EXCLUDED.total_seconds, session_count = EXCLUDED.session_count, goal_achieved = EXCLUDED.goal_achieved;`,
		progress.UserID,
		progress.Date,
		progress.TotalSeconds,
		progress.SessionCount,
		progress.GoalAchieved,
	)
	if err != nil {
		return errors.New("upserting daily progress error: " + err.Error())
	}
	return nil
}

func (dr *DailyProgressRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyProgress, error) {
	var progress entity.DailyProgress
	progress.UserID = uid
	progress.Date = date
	row := dr.conn.QueryRow(ctx,
		`SELECT total_seconds, session_count, goal_achieved FROM daily_progress WHERE user_id = $1 AND date = $2;`,
		uid, date)
	if err := row.Scan(&progress.TotalSeconds, &progress.SessionCount, &progress.GoalAchieved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting daily progress error: " + err.Error())
	}
	return &progress, nil
}

func (dr *DailyProgressRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.DailyProgress, error) {
	rows, err := dr.conn.Query(ctx,
		`SELECT user_id, date, total_seconds, session_count, goal_achieved
		FROM daily_progress WHERE user_id = $1 ORDER BY date DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing daily progress error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyProgress, 0)
	for rows.Next() {
		p := entity.DailyProgress{}
		err = rows.Scan(&p.UserID, &p.Date, &p.TotalSeconds, &p.SessionCount, &p.GoalAchieved)
		if err != nil {
			return nil, errors.New("unmarshalling daily progress error: " + err.Error())
		}
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return result, nil
}
