package users

import "time"

type User struct {
	ID           int        `json:"user_id"`
	GoogleID     *string    `json:"-"`
	Email        string     `json:"email"`
	PasswordHash *string    `json:"-"`
	Name         string     `json:"name"`
	Gender       *string    `json:"gender,omitempty"`
	Birth        *time.Time `json:"birth,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// PublicInfo is the user payload returned from login and token exchange.
type PublicInfo struct {
	ID    int    `json:"user_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) PublicInfo() PublicInfo {
	return PublicInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
