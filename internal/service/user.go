package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zodyking/textnow-gateway/internal/constants"
	"github.com/zodyking/textnow-gateway/internal/model"
	"github.com/zodyking/textnow-gateway/internal/repository"
)

// UserView is the account representation handed to callers. The password
// hash never leaves the service layer.
type UserView struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	TextNowUsername string    `json:"textnow_username"`
	SIDCookie       string    `json:"sid_cookie"`
	CSRFToken       string    `json:"csrf_token"`
	GeminiAPIKey    string    `json:"gemini_api_key,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type UserService interface {
	SignUp(ctx context.Context, cmd SignUpCommand) (UserView, error)
	LogIn(ctx context.Context, cmd LogInCommand) (UserView, error)
	Get(ctx context.Context, userID string) (UserView, error)
	Update(ctx context.Context, cmd UpdateUserCommand) (UserView, error)
}

type user struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &user{repo: repo, logger: logger}
}

func (u *user) SignUp(ctx context.Context, cmd SignUpCommand) (UserView, error) {
	if cmd.Password != cmd.ConfirmPassword {
		return UserView{}, NewServiceError(constants.ErrCodePasswordMismatch, errPasswordMismatch)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserView{}, err
	}

	record := model.User{
		ID:              uuid.NewString(),
		Username:        cmd.Username,
		PasswordHash:    string(hash),
		TextNowUsername: cmd.TextNowUsername,
		SIDCookie:       cmd.SIDCookie,
		CSRFToken:       cmd.CSRFToken,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := u.repo.Create(ctx, &record); err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			u.logger.Warn("Signup with taken username", zap.String("username", cmd.Username))
			return UserView{}, NewServiceError(constants.ErrCodeUsernameTaken, err)
		}
		u.logger.Error("Failed to create user", zap.Error(err))
		return UserView{}, err
	}

	u.logger.Info("User created",
		zap.String("userID", record.ID),
		zap.String("username", record.Username))

	return viewOf(&record), nil
}

// LogIn reports the same error for an unknown username and a wrong password
// so responses do not reveal which usernames exist.
func (u *user) LogIn(ctx context.Context, cmd LogInCommand) (UserView, error) {
	record, err := u.repo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, NewServiceError(constants.ErrCodeInvalidCredentials, errBadCredentials)
		}
		return UserView{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(cmd.Password)) != nil {
		return UserView{}, NewServiceError(constants.ErrCodeInvalidCredentials, errBadCredentials)
	}

	return viewOf(record), nil
}

func (u *user) Get(ctx context.Context, userID string) (UserView, error) {
	record, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return UserView{}, err
	}

	return viewOf(record), nil
}

func (u *user) Update(ctx context.Context, cmd UpdateUserCommand) (UserView, error) {
	record, err := u.repo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return UserView{}, err
	}

	record.Username = cmd.Username
	record.TextNowUsername = cmd.TextNowUsername
	record.SIDCookie = cmd.SIDCookie
	record.CSRFToken = cmd.CSRFToken
	record.GeminiAPIKey = nil
	if cmd.GeminiAPIKey != "" {
		key := cmd.GeminiAPIKey
		record.GeminiAPIKey = &key
	}
	record.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, record); err != nil {
		u.logger.Error("Failed to update user",
			zap.String("userID", cmd.UserID),
			zap.Error(err))
		return UserView{}, err
	}

	return viewOf(record), nil
}

func viewOf(record *model.User) UserView {
	view := UserView{
		ID:              record.ID,
		Username:        record.Username,
		TextNowUsername: record.TextNowUsername,
		SIDCookie:       record.SIDCookie,
		CSRFToken:       record.CSRFToken,
		CreatedAt:       record.CreatedAt,
	}
	if record.GeminiAPIKey != nil {
		view.GeminiAPIKey = *record.GeminiAPIKey
	}
	return view
}
