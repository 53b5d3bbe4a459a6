package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/internal/repository"
	"github.com/limbo/tenk/pkg/entity"
)

const (
	defaultBreakMinutes = 60
)

type SettingsService struct {
	repo repository.SettingsRepositoryI
}

func NewSettingsService(settingsRepo repository.SettingsRepositoryI) *SettingsService {
	if settingsRepo == nil {
		log.Fatal("provided nil settingsRepo")
	}
	return &SettingsService{
		repo: settingsRepo,
	}
}

func (ss *SettingsService) GetSettings(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	settings, err := ss.repo.GetByUser(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSettingsNotFound) {
			return &entity.UserSettings{
				UserID:               uid,
				DailyGoalHours:       defaultGoalHours,
				BreakReminderMinutes: defaultBreakMinutes,
				SoundNotifications:   true,
			}, nil
		}
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return settings, nil
}

func (ss *SettingsService) UpdateSettings(ctx context.Context, uid uuid.UUID, req *UpdateSettingsRequest) (*entity.UserSettings, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidSettings
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	settings := entity.UserSettings{
		UserID:               uid,
		DailyGoalHours:       req.DailyGoalHours,
		BreakReminderMinutes: req.BreakReminderMinutes,
		SoundNotifications:   req.SoundNotifications,
	}
	err = ss.repo.Upsert(ctx, &settings)
	if err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return &settings, nil
}
