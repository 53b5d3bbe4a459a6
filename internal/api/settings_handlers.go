package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/internal/service"
	"github.com/limbo/tenk/pkg/httputil"
)

type UpdateSettingsRequest struct {
	DailyGoalHours       int  `json:"daily_goal_hours"`
	BreakReminderMinutes int  `json:"break_reminder_minutes"`
	SoundNotifications   bool `json:"sound_notifications"`
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.GetSettings(ctx, uid)
	if err != nil {
		logger.Error("get settings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings provided")
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateSettingsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update settings error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.UpdateSettings(ctx, uid, &service.UpdateSettingsRequest{
		DailyGoalHours:       req.DailyGoalHours,
		BreakReminderMinutes: req.BreakReminderMinutes,
		SoundNotifications:   req.SoundNotifications,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidSettings):
			logger.Error("update settings error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid settings", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("update settings error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("update settings error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating settings", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings updated")
}
