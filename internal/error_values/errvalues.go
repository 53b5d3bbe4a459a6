package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrSessionNotFound  = errors.New("session doesn't exist")
	ErrSessionActive    = errors.New("user already has an uncompleted session")
	ErrSessionCompleted = errors.New("session is already completed")
	ErrWrongOwner       = errors.New("resource has different owner")

	ErrActivityNotFound = errors.New("activity doesn't exist")
	ErrSettingsNotFound = errors.New("user has no settings row")
	ErrEntryNotFound    = errors.New("leaderboard entry doesn't exist")

	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrUsernameTaken   = errors.New("username is already taken")
)
