package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/tenk/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	sessionsService service.SessionsServiceI
	progressService service.ProgressServiceI
	settingsService service.SettingsServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	SessionsService service.SessionsServiceI
	ProgressService service.ProgressServiceI
	SettingsService service.SettingsServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		sessionsService: servicesOptions.SessionsService,
		progressService: servicesOptions.ProgressService,
		settingsService: servicesOptions.SettingsService,
		jwtService:      servicesOptions.JwtService,
	}
}

func (s *Server) Routes() *chi.Mux {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Post("/sessions/start", s.StartSession)
			r.Patch("/sessions/{id}", s.UpdateSession)
			r.Post("/sessions/{id}/complete", s.CompleteSession)
			r.Get("/sessions/current", s.CurrentSession)
			r.Get("/progress/today", s.TodayProgress)
			r.Get("/progress/total", s.TotalProgress)
			r.Get("/stats/weekly", s.WeeklyStats)
			r.Get("/stats/monthly", s.MonthlyStats)
			r.Get("/streak", s.Streak)
			r.Get("/leaderboard", s.Leaderboard)
			r.Get("/activities", s.Activities)
			r.Get("/settings", s.GetSettings)
			r.Put("/settings", s.UpdateSettings)
			r.Patch("/users/username", s.ChangeUsername)
			r.Delete("/users", s.DeleteAccount)
		})
	})
	return s.mx
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.Routes())
}
