package model

import "time"

// User is the one persisted entity: local account credentials plus the opaque
// upstream session identifiers attached to every provider call.
type User struct {
	ID              string    `gorm:"primaryKey;column:id;<-:create"`
	Username        string    `gorm:"column:username;uniqueIndex:idx_users_username"`
	PasswordHash    string    `gorm:"column:password_hash"`
	TextNowUsername string    `gorm:"column:textnow_username"`
	SIDCookie       string    `gorm:"column:sid_cookie"`
	CSRFToken       string    `gorm:"column:csrf_token"`
	GeminiAPIKey    *string   `gorm:"column:gemini_api_key"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
