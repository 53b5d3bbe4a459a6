package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/pkg/cleanup"
	"github.com/limbo/tenk/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(cfg DBConfig) *ActivitiesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for activitiesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ActivitiesRepository{
		conn: pool,
	}
}

func NewActivitiesRepoWithConn(conn PgConnection) *ActivitiesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.Activity) error {
	_, err := ar.conn.Exec(ctx,
		`INSERT INTO activities (user_id, name, total_seconds, session_count, last_practiced)
		VALUES ($1, $2, $3, $4, $5);`,
		activity.UserID,
		activity.Name,
		activity.TotalSeconds,
		activity.SessionCount,
		activity.LastPracticed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating activity db error: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) GetByUserAndName(ctx context.Context, uid uuid.UUID, name string) (*entity.Activity, error) {
	var activity entity.Activity
	activity.UserID = uid
	activity.Name = name
	row := ar.conn.QueryRow(ctx,
		`SELECT total_seconds, session_count, last_practiced FROM activities WHERE user_id = $1 AND name = $2;`,
		uid, name)
	if err := row.Scan(&activity.TotalSeconds, &activity.SessionCount, &activity.LastPracticed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, errors.New("getting activity error: " + err.Error())
	}
	return &activity, nil
}

func (ar *ActivitiesRepository) AddSession(ctx context.Context, uid uuid.UUID, name string, seconds, practicedAt int64) error {
	ct, err := ar.conn.Exec(ctx,
		`UPDATE activities SET total_seconds = total_seconds + $1, session_count = session_count + 1, last_practiced = $2
		WHERE user_id = $3 AND name = $4;`,
		seconds, practicedAt, uid, name,
	)
	if err != nil {
		return errors.New("adding session to activity error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}

func (ar *ActivitiesRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Activity, error) {
	rows, err := ar.conn.Query(ctx,
		`SELECT user_id, name, total_seconds, session_count, last_practiced
		FROM activities WHERE user_id = $1 ORDER BY last_practiced DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing activities error: " + err.Error())
	}
	defer rows.Close()
	activities := make([]entity.Activity, 0)
	for rows.Next() {
		a := entity.Activity{}
		err = rows.Scan(&a.UserID, &a.Name, &a.TotalSeconds, &a.SessionCount, &a.LastPracticed)
		if err != nil {
			return nil, errors.New("unmarshalling activity error: " + err.Error())
		}
		activities = append(activities, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return activities, nil
}
