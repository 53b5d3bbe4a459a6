package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/tenk/internal/api"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/internal/service"
	"github.com/limbo/tenk/pkg/entity"
	jwtservice "github.com/limbo/tenk/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &entity.User{
	ID:   uuid.New(),
	Name: "limbo_user",
}

type userServiceMock struct {
	registerFn       func(ctx context.Context, req *service.RegisterRequest) (*entity.User, error)
	loginFn          func(ctx context.Context, name, password string) (*entity.User, error)
	changeUsernameFn func(ctx context.Context, id uuid.UUID, username string) error
	deleteAccountFn  func(ctx context.Context, id uuid.UUID, password string) error
}

func (m *userServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	return m.registerFn(ctx, req)
}

func (m *userServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	return m.loginFn(ctx, name, password)
}

func (m *userServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if id == testUser.ID {
		return testUser, nil
	}
	return nil, errorvalues.ErrUserNotFound
}

func (m *userServiceMock) GetByName(ctx context.Context, name string) (*entity.User, error) {
	if name == testUser.Name {
		return testUser, nil
	}
	return nil, errorvalues.ErrUserNotFound
}

func (m *userServiceMock) ChangeUsername(ctx context.Context, id uuid.UUID, username string) error {
	return m.changeUsernameFn(ctx, id, username)
}

func (m *userServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	return m.deleteAccountFn(ctx, id, password)
}

type sessionsServiceMock struct {
	startFn    func(ctx context.Context, uid uuid.UUID, activityName string) (*entity.Session, error)
	updateFn   func(ctx context.Context, uid, sessionID uuid.UUID, duration int64, isPaused bool) error
	completeFn func(ctx context.Context, uid, sessionID uuid.UUID, duration int64) error
	currentFn  func(ctx context.Context, uid uuid.UUID) (*entity.CurrentSession, error)
	streakFn   func(ctx context.Context, uid uuid.UUID) (int, error)
}

func (m *sessionsServiceMock) StartSession(ctx context.Context, uid uuid.UUID, activityName string) (*entity.Session, error) {
	return m.startFn(ctx, uid, activityName)
}

func (m *sessionsServiceMock) UpdateSession(ctx context.Context, uid, sessionID uuid.UUID, duration int64, isPaused bool) error {
	return m.updateFn(ctx, uid, sessionID, duration, isPaused)
}

func (m *sessionsServiceMock) CompleteSession(ctx context.Context, uid, sessionID uuid.UUID, duration int64) error {
	return m.completeFn(ctx, uid, sessionID, duration)
}

func (m *sessionsServiceMock) CurrentSession(ctx context.Context, uid uuid.UUID) (*entity.CurrentSession, error) {
	return m.currentFn(ctx, uid)
}

func (m *sessionsServiceMock) Streak(ctx context.Context, uid uuid.UUID) (int, error) {
	return m.streakFn(ctx, uid)
}

type progressServiceMock struct {
	todayFn       func(ctx context.Context, uid uuid.UUID) (*entity.TodayProgress, error)
	totalFn       func(ctx context.Context, uid uuid.UUID) (*entity.TotalProgress, error)
	weeklyFn      func(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error)
	monthlyFn     func(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error)
	leaderboardFn func(ctx context.Context) ([]entity.LeaderboardEntry, error)
	activitiesFn  func(ctx context.Context, uid uuid.UUID) ([]entity.Activity, error)
}

func (m *progressServiceMock) TodayProgress(ctx context.Context, uid uuid.UUID) (*entity.TodayProgress, error) {
	return m.todayFn(ctx, uid)
}

func (m *progressServiceMock) TotalProgress(ctx context.Context, uid uuid.UUID) (*entity.TotalProgress, error) {
	return m.totalFn(ctx, uid)
}

func (m *progressServiceMock) WeeklyStats(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error) {
	return m.weeklyFn(ctx, uid)
}

func (m *progressServiceMock) MonthlyStats(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error) {
	return m.monthlyFn(ctx, uid)
}

func (m *progressServiceMock) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	return m.leaderboardFn(ctx)
}

func (m *progressServiceMock) UserActivities(ctx context.Context, uid uuid.UUID) ([]entity.Activity, error) {
	return m.activitiesFn(ctx, uid)
}

type settingsServiceMock struct {
	getFn    func(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	updateFn func(ctx context.Context, uid uuid.UUID, req *service.UpdateSettingsRequest) (*entity.UserSettings, error)
}

func (m *settingsServiceMock) GetSettings(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	return m.getFn(ctx, uid)
}

func (m *settingsServiceMock) UpdateSettings(ctx context.Context, uid uuid.UUID, req *service.UpdateSettingsRequest) (*entity.UserSettings, error) {
	return m.updateFn(ctx, uid, req)
}

type serverMocks struct {
	users    *userServiceMock
	sessions *sessionsServiceMock
	progress *progressServiceMock
	settings *settingsServiceMock
}

func newTestServer(t *testing.T) (http.Handler, *serverMocks, string) {
	t.Helper()
	mocks := &serverMocks{
		users:    &userServiceMock{},
		sessions: &sessionsServiceMock{},
		progress: &progressServiceMock{},
		settings: &settingsServiceMock{},
	}
	jwtService := jwtservice.New("test_secret")
	server := api.New(&api.ServicesList{
		UserService:     mocks.users,
		SessionsService: mocks.sessions,
		ProgressService: mocks.progress,
		SettingsService: mocks.settings,
		JwtService:      jwtService,
	})
	token, err := jwtService.GenerateToken(testUser)
	require.NoError(t, err)
	return server.Routes(), mocks, token
}

func doRequest(t *testing.T, handler http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRegisterHandler(t *testing.T) {
	handler, mocks, _ := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		mocks.users.registerFn = func(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
			assert.Equal(t, "limbo_user", req.Name)
			return testUser, nil
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/register", "", `{"name":"limbo_user","password":"qwerty123456"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]string
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, testUser.ID.String(), resp["uid"])
		assert.Equal(t, "limbo_user", resp["name"])
	})
	t.Run("existing user", func(t *testing.T) {
		mocks.users.registerFn = func(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
			return nil, errorvalues.ErrUserExists
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/register", "", `{"name":"limbo_user","password":"qwerty123456"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
	t.Run("broken body", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/register", "", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	handler, mocks, _ := newTestServer(t)

	t.Run("success returns token", func(t *testing.T) {
		mocks.users.loginFn = func(ctx context.Context, name, password string) (*entity.User, error) {
			return testUser, nil
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/login", "", `{"name":"limbo_user","password":"qwerty123456"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]string
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, testUser.ID.String(), resp["uid"])
		assert.NotEmpty(t, resp["token"])
	})
	t.Run("unknown user", func(t *testing.T) {
		mocks.users.loginFn = func(ctx context.Context, name, password string) (*entity.User, error) {
			return nil, errorvalues.ErrUserNotFound
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/login", "", `{"name":"nobody","password":"qwerty123456"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("wrong password", func(t *testing.T) {
		mocks.users.loginFn = func(ctx context.Context, name, password string) (*entity.User, error) {
			return nil, errorvalues.ErrWrongCredentials
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/login", "", `{"name":"limbo_user","password":"wrong"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthRejections(t *testing.T) {
	handler, _, _ := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/streak", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/streak", "not.a.token", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("token signed with other secret", func(t *testing.T) {
		other, err := jwtservice.New("other_secret").GenerateToken(testUser)
		require.NoError(t, err)
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/streak", other, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestStartSessionHandler(t *testing.T) {
	handler, mocks, token := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		mocks.sessions.startFn = func(ctx context.Context, uid uuid.UUID, activityName string) (*entity.Session, error) {
			assert.Equal(t, testUser.ID, uid)
			assert.Equal(t, "guitar", activityName)
			return &entity.Session{
				ID:           uuid.New(),
				UserID:       uid,
				ActivityName: activityName,
				StartTime:    1700000000000,
				Date:         "2023-11-14",
			}, nil
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/sessions/start", token, `{"activity_name":"guitar"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		var session entity.Session
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &session))
		assert.Equal(t, "guitar", session.ActivityName)
		assert.Equal(t, "2023-11-14", session.Date)
	})
	t.Run("open session conflict", func(t *testing.T) {
		mocks.sessions.startFn = func(ctx context.Context, uid uuid.UUID, activityName string) (*entity.Session, error) {
			return nil, errorvalues.ErrSessionActive
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/sessions/start", token, `{}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateSessionHandler(t *testing.T) {
	handler, mocks, token := newTestServer(t)
	sessionID := uuid.New()

	t.Run("no content", func(t *testing.T) {
		mocks.sessions.updateFn = func(ctx context.Context, uid, id uuid.UUID, duration int64, isPaused bool) error {
			assert.Equal(t, sessionID, id)
			assert.Equal(t, int64(1800), duration)
			assert.True(t, isPaused)
			return nil
		}
		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/sessions/"+sessionID.String(), token, `{"duration":1800,"is_paused":true}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("negative duration", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/sessions/"+sessionID.String(), token, `{"duration":-5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("malformed id", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/sessions/not-an-id", token, `{"duration":60}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("foreign session hidden", func(t *testing.T) {
		mocks.sessions.updateFn = func(ctx context.Context, uid, id uuid.UUID, duration int64, isPaused bool) error {
			return errorvalues.ErrWrongOwner
		}
		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/sessions/"+sessionID.String(), token, `{"duration":60}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCompleteSessionHandler(t *testing.T) {
	handler, mocks, token := newTestServer(t)
	sessionID := uuid.New()

	t.Run("no content", func(t *testing.T) {
		mocks.sessions.completeFn = func(ctx context.Context, uid, id uuid.UUID, duration int64) error {
			assert.Equal(t, int64(5400), duration)
			return nil
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/complete", token, `{"duration":5400}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("unknown session", func(t *testing.T) {
		mocks.sessions.completeFn = func(ctx context.Context, uid, id uuid.UUID, duration int64) error {
			return errorvalues.ErrSessionNotFound
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/complete", token, `{"duration":60}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("already completed", func(t *testing.T) {
		mocks.sessions.completeFn = func(ctx context.Context, uid, id uuid.UUID, duration int64) error {
			return errorvalues.ErrSessionCompleted
		}
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/complete", token, `{"duration":60}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCurrentSessionHandler(t *testing.T) {
	handler, mocks, token := newTestServer(t)

	t.Run("running session", func(t *testing.T) {
		mocks.sessions.currentFn = func(ctx context.Context, uid uuid.UUID) (*entity.CurrentSession, error) {
			return &entity.CurrentSession{
				Session: entity.Session{
					ID:           uuid.New(),
					UserID:       uid,
					ActivityName: "guitar",
					Duration:     1800,
				},
				CurrentDuration: 1890,
			}, nil
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/sessions/current", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var session entity.CurrentSession
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &session))
		assert.Equal(t, int64(1890), session.CurrentDuration)
	})
	t.Run("none open", func(t *testing.T) {
		mocks.sessions.currentFn = func(ctx context.Context, uid uuid.UUID) (*entity.CurrentSession, error) {
			return nil, errorvalues.ErrSessionNotFound
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/sessions/current", token, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStreakHandler(t *testing.T) {
	handler, mocks, token := newTestServer(t)
	mocks.sessions.streakFn = func(ctx context.Context, uid uuid.UUID) (int, error) {
		return 3, nil
	}
	rec := doRequest(t, handler, http.MethodGet, "/api/v1/streak", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]int
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp["current_streak"])
}

func TestProgressHandlers(t *testing.T) {
	handler, mocks, token := newTestServer(t)

	t.Run("today", func(t *testing.T) {
		mocks.progress.todayFn = func(ctx context.Context, uid uuid.UUID) (*entity.TodayProgress, error) {
			return &entity.TodayProgress{
				TotalSeconds:       7200,
				TotalHours:         2,
				SessionCount:       1,
				DailyGoalHours:     4,
				ProgressPercentage: 50,
			}, nil
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/progress/today", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var progress entity.TodayProgress
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &progress))
		assert.Equal(t, int64(7200), progress.TotalSeconds)
		assert.InDelta(t, 50.0, progress.ProgressPercentage, 1e-9)
	})
	t.Run("total", func(t *testing.T) {
		mocks.progress.totalFn = func(ctx context.Context, uid uuid.UUID) (*entity.TotalProgress, error) {
			return &entity.TotalProgress{
				TotalHours:         100,
				ProgressPercentage: 1,
				RemainingHours:     9900,
				SessionCount:       42,
			}, nil
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/progress/total", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var progress entity.TotalProgress
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &progress))
		assert.InDelta(t, 9900.0, progress.RemainingHours, 1e-9)
	})
	t.Run("weekly", func(t *testing.T) {
		mocks.progress.weeklyFn = func(ctx context.Context, uid uuid.UUID) (*entity.WindowStats, error) {
			return &entity.WindowStats{TotalHours: 7, DailyAverage: 1, SessionCount: 5}, nil
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/stats/weekly", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("leaderboard", func(t *testing.T) {
		mocks.progress.leaderboardFn = func(ctx context.Context) ([]entity.LeaderboardEntry, error) {
			return []entity.LeaderboardEntry{
				{UserID: testUser.ID, UserName: "limbo_user", TotalHours: 12.5, TotalSessions: 9, CurrentStreak: 2},
			}, nil
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/leaderboard", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var resp api.LeaderboardResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "limbo_user", resp.Entries[0].UserName)
	})
	t.Run("activities", func(t *testing.T) {
		mocks.progress.activitiesFn = func(ctx context.Context, uid uuid.UUID) ([]entity.Activity, error) {
			return []entity.Activity{
				{UserID: uid, Name: "guitar", TotalSeconds: 3600, SessionCount: 2},
			}, nil
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/activities", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var resp api.ActivitiesResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, testUser.ID.String(), resp.UserID)
		require.Len(t, resp.Activities, 1)
		assert.Equal(t, "guitar", resp.Activities[0].Name)
	})
}

func TestSettingsHandlers(t *testing.T) {
	handler, mocks, token := newTestServer(t)

	t.Run("get", func(t *testing.T) {
		mocks.settings.getFn = func(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
			return &entity.UserSettings{
				UserID:               uid,
				DailyGoalHours:       4,
				BreakReminderMinutes: 60,
				SoundNotifications:   true,
			}, nil
		}
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/settings", token, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var settings entity.UserSettings
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &settings))
		assert.Equal(t, 4, settings.DailyGoalHours)
	})
	t.Run("update ok", func(t *testing.T) {
		mocks.settings.updateFn = func(ctx context.Context, uid uuid.UUID, req *service.UpdateSettingsRequest) (*entity.UserSettings, error) {
			return &entity.UserSettings{
				UserID:               uid,
				DailyGoalHours:       req.DailyGoalHours,
				BreakReminderMinutes: req.BreakReminderMinutes,
				SoundNotifications:   req.SoundNotifications,
			}, nil
		}
		rec := doRequest(t, handler, http.MethodPut, "/api/v1/settings", token, `{"daily_goal_hours":6,"break_reminder_minutes":90,"sound_notifications":false}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		var settings entity.UserSettings
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &settings))
		assert.Equal(t, 6, settings.DailyGoalHours)
		assert.Equal(t, 90, settings.BreakReminderMinutes)
	})
	t.Run("update rejected", func(t *testing.T) {
		mocks.settings.updateFn = func(ctx context.Context, uid uuid.UUID, req *service.UpdateSettingsRequest) (*entity.UserSettings, error) {
			return nil, errorvalues.ErrInvalidSettings
		}
		rec := doRequest(t, handler, http.MethodPut, "/api/v1/settings", token, `{"daily_goal_hours":20}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangeUsernameHandler(t *testing.T) {
	handler, mocks, token := newTestServer(t)

	t.Run("no content", func(t *testing.T) {
		mocks.users.changeUsernameFn = func(ctx context.Context, id uuid.UUID, username string) error {
			assert.Equal(t, testUser.ID, id)
			assert.Equal(t, "renamed", username)
			return nil
		}
		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/users/username", token, `{"username":"renamed"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("taken", func(t *testing.T) {
		mocks.users.changeUsernameFn = func(ctx context.Context, id uuid.UUID, username string) error {
			return errorvalues.ErrUsernameTaken
		}
		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/users/username", token, `{"username":"occupied"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
	t.Run("invalid", func(t *testing.T) {
		mocks.users.changeUsernameFn = func(ctx context.Context, id uuid.UUID, username string) error {
			return errorvalues.ErrInvalidUsername
		}
		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/users/username", token, `{"username":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	handler, mocks, token := newTestServer(t)

	t.Run("no content", func(t *testing.T) {
		mocks.users.deleteAccountFn = func(ctx context.Context, id uuid.UUID, password string) error {
			assert.Equal(t, "qwerty123456", password)
			return nil
		}
		rec := doRequest(t, handler, http.MethodDelete, "/api/v1/users", token, `{"password":"qwerty123456"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("wrong password", func(t *testing.T) {
		mocks.users.deleteAccountFn = func(ctx context.Context, id uuid.UUID, password string) error {
			return errorvalues.ErrWrongCredentials
		}
		rec := doRequest(t, handler, http.MethodDelete, "/api/v1/users", token, `{"password":"wrong"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
