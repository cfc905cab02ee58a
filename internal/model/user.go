package model

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username" gorm:"size:50;unique;not null"`
	FirstName    string    `json:"first_name" gorm:"size:25"`
	LastName     string    `json:"last_name" gorm:"size:25"`
	Email        string    `json:"email" gorm:"size:50;unique;not null"`
	Sex          string    `json:"sex" gorm:"size:10"`
	Password     string    `json:"-" gorm:"size:150;not null"`
	Avatar       string    `json:"avatar" gorm:"size:255"`
	Confirmed    bool      `json:"confirmed" gorm:"default:false"`
	Role         Role      `json:"role" gorm:"size:16;not null;default:user"`
	RefreshToken string    `json:"-" gorm:"size:512"`
}
