package repository

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/zodyking/textnow-gateway/internal/model"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")
var ErrUserDuplicate = errors.New("USER_DUPLICATE")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type User struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &User{db: db}
}

func (u *User) Create(ctx context.Context, user *model.User) error {
	err := u.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrUserDuplicate
	}

	return err
}

func (u *User) Update(ctx context.Context, user *model.User) error {
	// Select forces nullable columns (the API key) to be written even when nil.
	return u.db.WithContext(ctx).Model(user).Where("id = ?", user.ID).
		Select("username", "textnow_username", "sid_cookie", "csrf_token", "gemini_api_key", "updated_at").
		Updates(user).Error
}

func (u *User) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User

	err := u.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (u *User) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User

	err := u.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}
