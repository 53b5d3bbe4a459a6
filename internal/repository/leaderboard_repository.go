package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/pkg/cleanup"
	"github.com/limbo/tenk/pkg/entity"
)

type LeaderboardRepository struct {
	conn PgConnection
}

func NewLeaderboardRepo(cfg DBConfig) *LeaderboardRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for leaderboardRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for leaderboardRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &LeaderboardRepository{
		conn: pool,
	}
}

func NewLeaderboardRepoWithConn(conn PgConnection) *LeaderboardRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for leaderboardRepo: " + err.Error())
	}
	return &LeaderboardRepository{
		conn: conn,
	}
}

func (lr *LeaderboardRepository) Upsert(ctx context.Context, entry *entity.LeaderboardEntry) error {
	_, err := lr.conn.Exec(ctx,
		`INSERT INTO leaderboard (user_id, user_name, total_hours, total_sessions, current_streak, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET user_name = EXCLUDED.user_name, total_hours = EXCLUDED.total_hours, total_sessions = EXCLUDED.total_sessions, current_streak = EXCLUDED.current_streak, last_updated = EXCLUDED.last_updated;`,
		entry.UserID,
		entry.UserName,
		entry.TotalHours,
		entry.TotalSessions,
		entry.CurrentStreak,
		entry.LastUpdated,
	)
	if err != nil {
		return errors.New("upserting leaderboard entry error: " + err.Error())
	}
	return nil
}

func (lr *LeaderboardRepository) Top(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT user_id, user_name, total_hours, total_sessions, current_streak, last_updated
		FROM leaderboard ORDER BY total_hours DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		e := entity.LeaderboardEntry{}
		err = rows.Scan(&e.UserID, &e.UserName, &e.TotalHours, &e.TotalSessions, &e.CurrentStreak, &e.LastUpdated)
		if err != nil {
			return nil, errors.New("unmarshalling leaderboard entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return entries, nil
}

func (lr *LeaderboardRepository) UpdateUserName(ctx context.Context, uid uuid.UUID, name string) error {
	ct, err := lr.conn.Exec(ctx, `UPDATE leaderboard SET user_name = $1 WHERE user_id = $2;`, name, uid)
	if err != nil {
		return errors.New("updating leaderboard name error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}
