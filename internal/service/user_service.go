package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tenk/internal/error_values"
	"github.com/limbo/tenk/internal/repository"
	"github.com/limbo/tenk/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

var usernameAdjectives = []string{
	"Swift", "Bright", "Clever", "Bold", "Wise", "Quick", "Sharp", "Cool",
	"Epic", "Mighty", "Noble", "Brave", "Smart", "Fast", "Strong", "Keen",
}

var usernameNouns = []string{
	"Coder", "Builder", "Maker", "Creator", "Learner", "Thinker", "Dreamer",
	"Artist", "Writer", "Player", "Master", "Expert", "Ninja", "Wizard", "Hero",
}

type UserService struct {
	repo        repository.UsersRepositoryI
	leaderboard repository.LeaderboardRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, leaderboardRepo repository.LeaderboardRepositoryI) *UserService {
	return &UserService{
		repo:        usersRepo,
		leaderboard: leaderboardRepo,
	}
}

func randomUsername() string {
	adjective := usernameAdjectives[rand.Intn(len(usernameAdjectives))]
	noun := usernameNouns[rand.Intn(len(usernameNouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, rand.Intn(1000))
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	name := req.Name
	if name == "" {
		// Anonymous signup, roll random usernames until a free one is found
		for attempt := 0; ; attempt++ {
			name = randomUsername()
			err = us.repo.Create(ctx, &entity.User{
				Name:         name,
				PasswordHash: passwordHash,
			})
			if err == nil {
				break
			}
			if !errors.Is(err, errorvalues.ErrUserExists) {
				return nil, errors.New("repository creating error: " + err.Error())
			}
			if attempt == 2 {
				return nil, errorvalues.ErrUserExists
			}
		}
	} else {
		err = us.repo.Create(ctx, &entity.User{
			Name:         name,
			PasswordHash: passwordHash,
		})
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserExists) {
				return nil, errorvalues.ErrUserExists
			}
			return nil, errors.New("repository creating error: " + err.Error())
		}
	}
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// ChangeUsername renames the user after uniqueness and length checks, then
// patches the denormalized name on the leaderboard row if one exists.
func (us *UserService) ChangeUsername(ctx context.Context, id uuid.UUID, username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return fmt.Errorf("%w: username cannot be empty", errorvalues.ErrInvalidUsername)
	}
	if len(trimmed) < 2 {
		return fmt.Errorf("%w: username must be at least 2 characters long", errorvalues.ErrInvalidUsername)
	}
	if len(trimmed) > 30 {
		return fmt.Errorf("%w: username must be less than 30 characters long", errorvalues.ErrInvalidUsername)
	}
	existing, err := us.repo.FindByName(ctx, trimmed)
	if err != nil && !errors.Is(err, errorvalues.ErrUserNotFound) {
		return errors.New("repository searching error: " + err.Error())
	}
	if err == nil && existing.ID != id {
		return errorvalues.ErrUsernameTaken
	}
	err = us.repo.UpdateName(ctx, id, trimmed)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return err
		case errors.Is(err, errorvalues.ErrUsernameTaken):
			return err
		}
		return errors.New("repository renaming error: " + err.Error())
	}
	err = us.leaderboard.UpdateUserName(ctx, id, trimmed)
	if err != nil && !errors.Is(err, errorvalues.ErrEntryNotFound) {
		return errors.New("leaderboard repository error: " + err.Error())
	}
	return nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
