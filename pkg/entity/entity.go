package entity

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Session is a single timed practice interval. StartTime and EndTime are
// epoch milliseconds, Duration is whole seconds and is authoritative while
// the session is paused or completed. Date is the calendar day ("2006-01-02",
// UTC) the session was started on.
type Session struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	ActivityName string    `json:"activity_name"`
	StartTime    int64     `json:"start_time"`
	EndTime      *int64    `json:"end_time,omitempty"`
	Duration     int64     `json:"duration"`
	IsCompleted  bool      `json:"is_completed"`
	IsPaused     bool      `json:"is_paused"`
	Date         string    `json:"date"`
}

// CurrentSession is a running or paused session together with its live
// duration: the banked duration when paused, banked plus wall-clock elapsed
// seconds when running.
type CurrentSession struct {
	Session
	CurrentDuration int64 `json:"current_duration"`
}

type UserSettings struct {
	UserID               uuid.UUID `json:"uid"`
	DailyGoalHours       int       `json:"daily_goal_hours"`
	BreakReminderMinutes int       `json:"break_reminder_minutes"`
	SoundNotifications   bool      `json:"sound_notifications"`
}

// DailyProgress is the per (user, date) rollup over completed sessions.
// It is fully recomputed from the day's sessions on every completion.
type DailyProgress struct {
	UserID       uuid.UUID `json:"uid"`
	Date         string    `json:"date"`
	TotalSeconds int64     `json:"total_seconds"`
	SessionCount int       `json:"session_count"`
	GoalAchieved bool      `json:"goal_achieved"`
}

// Activity accumulates practice time under a user-chosen name. Unlike the
// other rollups it is incremented per completion, not recomputed.
type Activity struct {
	UserID        uuid.UUID `json:"uid"`
	Name          string    `json:"name"`
	TotalSeconds  int64     `json:"total_seconds"`
	SessionCount  int       `json:"session_count"`
	LastPracticed int64     `json:"last_practiced"`
}

type LeaderboardEntry struct {
	UserID        uuid.UUID `json:"uid"`
	UserName      string    `json:"user_name"`
	TotalHours    float64   `json:"total_hours"`
	TotalSessions int       `json:"total_sessions"`
	CurrentStreak int       `json:"current_streak"`
	LastUpdated   int64     `json:"last_updated"`
}

type TodayProgress struct {
	TotalSeconds       int64   `json:"total_seconds"`
	TotalHours         float64 `json:"total_hours"`
	SessionCount       int     `json:"session_count"`
	DailyGoalHours     int     `json:"daily_goal_hours"`
	ProgressPercentage float64 `json:"progress_percentage"`
	GoalAchieved       bool    `json:"goal_achieved"`
}

// TotalProgress measures lifetime practice against the 10,000-hour milestone.
type TotalProgress struct {
	TotalSeconds       int64   `json:"total_seconds"`
	TotalHours         float64 `json:"total_hours"`
	ProgressPercentage float64 `json:"progress_percentage"`
	RemainingHours     float64 `json:"remaining_hours"`
	SessionCount       int     `json:"session_count"`
}

type WindowStats struct {
	TotalHours   float64 `json:"total_hours"`
	DailyAverage float64 `json:"daily_average"`
	SessionCount int     `json:"session_count"`
}
