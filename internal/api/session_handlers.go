package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/pkg/httputil"
)

type StartSessionRequest struct {
	ActivityName string `json:"activity_name"`
}

type UpdateSessionRequest struct {
	Duration int64 `json:"duration"`
	IsPaused bool  `json:"is_paused"`
}

type CompleteSessionRequest struct {
	Duration int64 `json:"duration"`
}

func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartSessionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("start session error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.sessionsService.StartSession(ctx, uid, req.ActivityName)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionActive):
			logger.Error("start session error: open session exists")
			httputil.WriteErrorResponse(w, http.StatusConflict, "an uncompleted session already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("start session error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("start session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("session started")
}

func (s *Server) UpdateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	var req UpdateSessionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update session error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Duration < 0 {
		logger.Error("update session error: negative duration")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "duration cannot be negative", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.sessionsService.UpdateSession(ctx, uid, id, req.Duration, req.IsPaused)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("update session error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update session error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrSessionCompleted):
			logger.Error("update session error: session already completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "session is already completed", nil)
		default:
			logger.Error("update session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating session", nil)
		}
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("session updated")
}

func (s *Server) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	var req CompleteSessionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("complete session error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Duration < 0 {
		logger.Error("complete session error: negative duration")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "duration cannot be negative", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err = s.sessionsService.CompleteSession(ctx, uid, id, req.Duration)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("complete session error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("complete session error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrSessionCompleted):
			logger.Error("complete session error: session already completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "session is already completed", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("complete session error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("complete session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing session", nil)
		}
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("session completed")
}

func (s *Server) CurrentSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("current session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.sessionsService.CurrentSession(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			logger.Info("current session: none open")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no open session", nil)
			return
		}
		logger.Error("current session error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting current session", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("current session provided")
}
