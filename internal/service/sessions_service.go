package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/internal/repository"
	"github.com/limbo/tenk/pkg/entity"
)

const (
	dateLayout       = "2006-01-02"
	defaultGoalHours = 4
)

type SessionsService struct {
	sessions    repository.SessionsRepositoryI
	activities  repository.ActivitiesRepositoryI
	daily       repository.DailyProgressRepositoryI
	settings    repository.SettingsRepositoryI
	leaderboard repository.LeaderboardRepositoryI
	users       repository.UsersRepositoryI
	now         func() time.Time
}

func NewSessionsService(
	sessionsRepo repository.SessionsRepositoryI,
	activitiesRepo repository.ActivitiesRepositoryI,
	dailyRepo repository.DailyProgressRepositoryI,
	settingsRepo repository.SettingsRepositoryI,
	leaderboardRepo repository.LeaderboardRepositoryI,
	usersRepo repository.UsersRepositoryI,
) *SessionsService {
	if sessionsRepo == nil || activitiesRepo == nil || dailyRepo == nil ||
		settingsRepo == nil || leaderboardRepo == nil || usersRepo == nil {
		log.Fatal("on sessions service provided nil repos")
	}
	return &SessionsService{
		sessions:    sessionsRepo,
		activities:  activitiesRepo,
		daily:       dailyRepo,
		settings:    settingsRepo,
		leaderboard: leaderboardRepo,
		users:       usersRepo,
		now:         time.Now,
	}
}

// dateKey is the calendar day of t, always taken in UTC. Session dating,
// the daily rollup and streak stepping all go through here.
func dateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func (ss *SessionsService) StartSession(ctx context.Context, uid uuid.UUID, activityName string) (*entity.Session, error) {
	_, err := ss.sessions.GetOpenByUser(ctx, uid)
	if err == nil {
		return nil, errorvalues.ErrSessionActive
	}
	if !errors.Is(err, errorvalues.ErrSessionNotFound) {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	now := ss.now()
	session := entity.Session{
		UserID:       uid,
		ActivityName: activityName,
		StartTime:    now.UnixMilli(),
		Duration:     0,
		Date:         dateKey(now),
	}
	id, err := ss.sessions.Create(ctx, &session)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	created, err := ss.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return created, nil
}

func (ss *SessionsService) UpdateSession(ctx context.Context, uid, sessionID uuid.UUID, duration int64, isPaused bool) error {
	session, err := ss.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	if session.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	if session.IsCompleted {
		return errorvalues.ErrSessionCompleted
	}
	err = ss.sessions.UpdateProgress(ctx, sessionID, duration, isPaused)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

// CompleteSession marks the session completed and rolls the final duration
// into the three derived aggregates. The completion patch goes first and an
// already-completed session is rejected, so a retried call cannot apply the
// activity increment twice. The rollups are not atomic as a group; daily and
// leaderboard are full recomputes and safe to re-run.
func (ss *SessionsService) CompleteSession(ctx context.Context, uid, sessionID uuid.UUID, duration int64) error {
	session, err := ss.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	if session.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	if session.IsCompleted {
		return errorvalues.ErrSessionCompleted
	}
	now := ss.now()
	err = ss.sessions.Complete(ctx, sessionID, now.UnixMilli(), duration)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionCompleted) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	if session.ActivityName != "" {
		if err = ss.rollupActivity(ctx, uid, session.ActivityName, duration, now); err != nil {
			return err
		}
	}
	// The day's rollup is keyed on the completion day, not the session's
	// own start date. A session spanning midnight lands on the later day.
	today := dateKey(now)
	if err = ss.rollupDaily(ctx, uid, today); err != nil {
		return err
	}
	return ss.rollupLeaderboard(ctx, uid, today, now.UnixMilli())
}

func (ss *SessionsService) rollupActivity(ctx context.Context, uid uuid.UUID, name string, duration int64, now time.Time) error {
	_, err := ss.activities.GetByUserAndName(ctx, uid, name)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrActivityNotFound) {
			return errors.New("activities repository error: " + err.Error())
		}
		err = ss.activities.Create(ctx, &entity.Activity{
			UserID:        uid,
			Name:          name,
			TotalSeconds:  duration,
			SessionCount:  1,
			LastPracticed: now.UnixMilli(),
		})
		if err != nil {
			return errors.New("activities repository error: " + err.Error())
		}
		return nil
	}
	err = ss.activities.AddSession(ctx, uid, name, duration, now.UnixMilli())
	if err != nil {
		return errors.New("activities repository error: " + err.Error())
	}
	return nil
}

// rollupDaily recomputes the day's totals from that day's completed sessions
// instead of adding onto the stored row, so re-running it never double-counts.
func (ss *SessionsService) rollupDaily(ctx context.Context, uid uuid.UUID, date string) error {
	sessions, err := ss.sessions.CompletedByUserAndDate(ctx, uid, date)
	if err != nil {
		return errors.New("sessions repository error: " + err.Error())
	}
	var totalSeconds int64
	for _, s := range sessions {
		totalSeconds += s.Duration
	}
	goalHours, err := ss.dailyGoalHours(ctx, uid)
	if err != nil {
		return err
	}
	err = ss.daily.Upsert(ctx, &entity.DailyProgress{
		UserID:       uid,
		Date:         date,
		TotalSeconds: totalSeconds,
		SessionCount: len(sessions),
		GoalAchieved: totalSeconds >= int64(goalHours)*3600,
	})
	if err != nil {
		return errors.New("daily progress repository error: " + err.Error())
	}
	return nil
}

func (ss *SessionsService) rollupLeaderboard(ctx context.Context, uid uuid.UUID, today string, nowMs int64) error {
	user, err := ss.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	sessions, err := ss.sessions.CompletedByUser(ctx, uid)
	if err != nil {
		return errors.New("sessions repository error: " + err.Error())
	}
	var totalSeconds int64
	for _, s := range sessions {
		totalSeconds += s.Duration
	}
	streak, err := ss.streakFrom(ctx, uid, today)
	if err != nil {
		return err
	}
	name := user.Name
	if name == "" {
		id := uid.String()
		name = "User" + id[len(id)-4:]
	}
	err = ss.leaderboard.Upsert(ctx, &entity.LeaderboardEntry{
		UserID:        uid,
		UserName:      name,
		TotalHours:    float64(totalSeconds) / 3600,
		TotalSessions: len(sessions),
		CurrentStreak: streak,
		LastUpdated:   nowMs,
	})
	if err != nil {
		return errors.New("leaderboard repository error: " + err.Error())
	}
	return nil
}

func (ss *SessionsService) CurrentSession(ctx context.Context, uid uuid.UUID) (*entity.CurrentSession, error) {
	session, err := ss.sessions.GetOpenByUser(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	current := entity.CurrentSession{
		Session:         *session,
		CurrentDuration: session.Duration,
	}
	if !session.IsPaused {
		elapsed := (ss.now().UnixMilli() - session.StartTime) / 1000
		current.CurrentDuration = session.Duration + elapsed
	}
	return &current, nil
}

func (ss *SessionsService) Streak(ctx context.Context, uid uuid.UUID) (int, error) {
	return ss.streakFrom(ctx, uid, dateKey(ss.now()))
}

// streakFrom walks backward one calendar day at a time starting at today and
// counts days whose goal was achieved, stopping at the first day without an
// achieved rollup row. Always recomputed from scratch.
func (ss *SessionsService) streakFrom(ctx context.Context, uid uuid.UUID, today string) (int, error) {
	days, err := ss.daily.ListByUser(ctx, uid)
	if err != nil {
		return 0, errors.New("daily progress repository error: " + err.Error())
	}
	achieved := make(map[string]bool, len(days))
	for _, d := range days {
		achieved[d.Date] = d.GoalAchieved
	}
	cur, err := time.Parse(dateLayout, today)
	if err != nil {
		return 0, errors.New("parsing reference date error: " + err.Error())
	}
	streak := 0
	for range days {
		if !achieved[cur.Format(dateLayout)] {
			break
		}
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak, nil
}

func (ss *SessionsService) dailyGoalHours(ctx context.Context, uid uuid.UUID) (int, error) {
	settings, err := ss.settings.GetByUser(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSettingsNotFound) {
			return defaultGoalHours, nil
		}
		return 0, errors.New("settings repository error: " + err.Error())
	}
	return settings.DailyGoalHours, nil
}
