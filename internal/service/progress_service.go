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
	milestoneHours  = 10000
	leaderboardSize = 10
)

// ProgressService serves the read side: pure derivations over the stored
// aggregates, no writes.
type ProgressService struct {
	sessions    repository.SessionsRepositoryI
	daily       repository.DailyProgressRepositoryI
	settings    repository.SettingsRepositoryI
	leaderboard repository.LeaderboardRepositoryI
	activities  repository.ActivitiesRepositoryI
	now         func() time.Time
}

func NewProgressService(
	sessionsRepo repository.SessionsRepositoryI,
	dailyRepo repository.DailyProgressRepositoryI,
	settingsRepo repository.SettingsRepositoryI,
	leaderboardRepo repository.LeaderboardRepositoryI,
	activitiesRepo repository.ActivitiesRepositoryI,
) *ProgressService {
	if sessionsRepo == nil || dailyRepo == nil || settingsRepo == nil ||
		leaderboardRepo == nil || activitiesRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		sessions:    sessionsRepo,
		daily:       dailyRepo,
		settings:    settingsRepo,
		leaderboard: leaderboardRepo,
		activities:  activitiesRepo,
		now:         time.Now,
	}
}

func (ps *ProgressService) TodayProgress(ctx context.Context, uid uuid.UUID) (*entity.TodayProgress, error) {
	goalHours := defaultGoalHours
	settings, err := ps.settings.GetByUser(ctx, uid)
	if err != nil && !errors.Is(err, errorvalues.ErrSettingsNotFound) {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	if err == nil {
		goalHours = settings.DailyGoalHours
	}
	progress, err := ps.daily.GetByUserAndDate(ctx, uid, dateKey(ps.now()))
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return &entity.TodayProgress{DailyGoalHours: goalHours}, nil
		}
		return nil, errors.New("daily progress repository error: " + err.Error())
	}
	goalSeconds := float64(goalHours) * 3600
	return &entity.TodayProgress{
		TotalSeconds:       progress.TotalSeconds,
		TotalHours:         float64(progress.TotalSeconds) / 3600,
		SessionCount:       progress.SessionCount,
		DailyGoalHours:     goalHours,
		ProgressPercentage: float64(progress.TotalSeconds) / goalSeconds * 100,
		GoalAchieved:       progress.GoalAchieved,
	}, nil
}

// TotalProgress sums over the completed sessions themselves, not the
// leaderboard row, against the fixed 10,000-hour milestone.
func (ps *ProgressService) TotalProgress(ctx context.Context, uid uuid.UUID) (*entity.TotalProgress, error) {
	sessions, err := ps.sessions.CompletedByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	var totalSeconds int64
	for _, s := range sessions {
		totalSeconds += s.Duration
	}
	totalHours := float64(totalSeconds) / 3600
	remaining := float64(milestoneHours) - totalHours
	if remaining < 0 {
		remaining = 0
	}
	return &entity.TotalProgress{
		TotalSeconds:       totalSeconds,
		TotalHours:         totalHours,
		ProgressPercentage: totalHours / milestoneHours * 100,
		RemainingHours:     remaining,
		SessionCount:       len(sessions),
	}, nil
}

func (ps *ProgressService) WeeklyStats(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error) {
	return ps.windowStats(ctx, uid, 7)
}

func (ps *ProgressService) MonthlyStats(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error) {
	return ps.windowStats(ctx, uid, 30)
}

func (ps *ProgressService) windowStats(ctx context.Context, uid uuid.UUID, days int) (*entity.WindowStats, error) {
	since := ps.now().UnixMilli() - int64(days)*24*60*60*1000
	sessions, err := ps.sessions.CompletedByUserSince(ctx, uid, since)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	var totalSeconds int64
	for _, s := range sessions {
		totalSeconds += s.Duration
	}
	totalHours := float64(totalSeconds) / 3600
	return &entity.WindowStats{
		TotalHours:   totalHours,
		DailyAverage: totalHours / float64(days),
		SessionCount: len(sessions),
	}, nil
}

func (ps *ProgressService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	entries, err := ps.leaderboard.Top(ctx, leaderboardSize)
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	return entries, nil
}

func (ps *ProgressService) UserActivities(ctx context.Context, uid uuid.UUID) ([]entity.Activity, error) {
	activities, err := ps.activities.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activities, nil
}
