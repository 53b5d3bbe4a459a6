// @title Practice-tracker API
// @description API for practice-time tracker "tenk"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/tenk/internal/api"
	"github.com/limbo/tenk/internal/repository"
	"github.com/limbo/tenk/internal/service"
	"github.com/limbo/tenk/pkg/cleanup"
	"github.com/limbo/tenk/pkg/config"
	jwtservice "github.com/limbo/tenk/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	sessionsRepo := repository.NewSessionsRepo(&dbCfg)
	activitiesRepo := repository.NewActivitiesRepo(&dbCfg)
	dailyRepo := repository.NewDailyProgressRepo(&dbCfg)
	settingsRepo := repository.NewSettingsRepo(&dbCfg)
	leaderboardRepo := repository.NewLeaderboardRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo, leaderboardRepo),
		SessionsService: service.NewSessionsService(sessionsRepo, activitiesRepo, dailyRepo, settingsRepo, leaderboardRepo, usersRepo),
		ProgressService: service.NewProgressService(sessionsRepo, dailyRepo, settingsRepo, leaderboardRepo, activitiesRepo),
		SettingsService: service.NewSettingsService(settingsRepo),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetStringOrDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
