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

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepo(cfg DBConfig) *SessionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for sessionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SessionsRepository{
		conn: pool,
	}
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sessionsRepo: " + err.Error())
	}
	return &SessionsRepository{
		conn: conn,
	}
}

func (sr *SessionsRepository) Create(ctx context.Context, session *entity.Session) (uuid.UUID, error) {
	var id uuid.UUID
	row := sr.conn.QueryRow(ctx,
		`INSERT INTO sessions (user_id, activity_name, start_time, duration, is_completed, is_paused, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		session.UserID,
		session.ActivityName,
		session.StartTime,
		session.Duration,
		session.IsCompleted,
		session.IsPaused,
		session.Date,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating session db error: " + err.Error())
	}
	return id, nil
}

func (sr *SessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	session.ID = id
	row := sr.conn.QueryRow(ctx,
		`SELECT user_id, activity_name, start_time, end_time, duration, is_completed, is_paused, date
		FROM sessions WHERE id = $1;`, id)
	err := row.Scan(
		&session.UserID,
		&session.ActivityName,
		&session.StartTime,
		&session.EndTime,
		&session.Duration,
		&session.IsCompleted,
		&session.IsPaused,
		&session.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session by id error: " + err.Error())
	}
	return &session, nil
}

func (sr *SessionsRepository) GetOpenByUser(ctx context.Context, uid uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	row := sr.conn.QueryRow(ctx,
		`SELECT id, user_id, activity_name, start_time, end_time, duration, is_completed, is_paused, date
		FROM sessions WHERE user_id = $1 AND is_completed = false ORDER BY start_time DESC LIMIT 1;`, uid)
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.ActivityName,
		&session.StartTime,
		&session.EndTime,
		&session.Duration,
		&session.IsCompleted,
		&session.IsPaused,
		&session.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting open session error: " + err.Error())
	}
	return &session, nil
}

func (sr *SessionsRepository) UpdateProgress(ctx context.Context, id uuid.UUID, duration int64, isPaused bool) error {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE sessions SET duration = $1, is_paused = $2 WHERE id = $3 AND is_completed = false;`,
		duration, isPaused, id,
	)
	if err != nil {
		return errors.New("updating session progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func (sr *SessionsRepository) Complete(ctx context.Context, id uuid.UUID, endTime, duration int64) error {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE sessions SET end_time = $1, duration = $2, is_completed = true, is_paused = false
		WHERE id = $3 AND is_completed = false;`,
		endTime, duration, id,
	)
	if err != nil {
		return errors.New("completing session error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionCompleted
	}
	return nil
}

func (sr *SessionsRepository) CompletedByUserAndDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.Session, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT id, user_id, activity_name, start_time, end_time, duration, is_completed, is_paused, date
		FROM sessions WHERE user_id = $1 AND date = $2 AND is_completed = true;`, uid, date)
	if err != nil {
		return nil, errors.New("getting day sessions error: " + err.Error())
	}
	return scanSessions(rows)
}

func (sr *SessionsRepository) CompletedByUser(ctx context.Context, uid uuid.UUID) ([]entity.Session, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT id, user_id, activity_name, start_time, end_time, duration, is_completed, is_paused, date
		FROM sessions WHERE user_id = $1 AND is_completed = true;`, uid)
	if err != nil {
		return nil, errors.New("getting completed sessions error: " + err.Error())
	}
	return scanSessions(rows)
}

func (sr *SessionsRepository) CompletedByUserSince(ctx context.Context, uid uuid.UUID, since int64) ([]entity.Session, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT id, user_id, activity_name, start_time, end_time, duration, is_completed, is_paused, date
		FROM sessions WHERE user_id = $1 AND is_completed = true AND start_time >= $2;`, uid, since)
	if err != nil {
		return nil, errors.New("getting windowed sessions error: " + err.Error())
	}
	return scanSessions(rows)
}

func scanSessions(rows pgx.Rows) ([]entity.Session, error) {
	defer rows.Close()
	sessions := make([]entity.Session, 0)
	for rows.Next() {
		s := entity.Session{}
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.ActivityName,
			&s.StartTime,
			&s.EndTime,
			&s.Duration,
			&s.IsCompleted,
			&s.IsPaused,
			&s.Date,
		)
		if err != nil {
			return nil, errors.New("unmarshalling session error: " + err.Error())
		}
		sessions = append(sessions, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return sessions, nil
}
