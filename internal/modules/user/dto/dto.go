package dto

import (
	"time"

	"github.com/Dishalex/PhotoShare/internal/model"
)

type UserProfileResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Sex       string     `json:"sex"`
	Avatar    string     `json:"avatar"`
	Role      model.Role `json:"role"`
	Confirmed bool       `json:"confirmed"`
	CreatedAt time.Time  `json:"created_at"`
}

// PublicProfileResponse is what other users see; it leaves out email and role.
type PublicProfileResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Avatar     string    `json:"avatar"`
	ImageCount int64     `json:"image_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=25"`
	LastName  *string `json:"last_name" binding:"omitempty,max=25"`
	Sex       *string `json:"sex" binding:"omitempty,max=10"`
}

type UpdateRoleRequest struct {
	Role model.Role `json:"role" binding:"required,oneof=user moderator admin"`
}

func ToProfileResponse(u *model.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Sex:       u.Sex,
		Avatar:    u.Avatar,
		Role:      u.Role,
		Confirmed: u.Confirmed,
		CreatedAt: u.CreatedAt,
	}
}
