package domain

import "time"

type Role string

const (
	RoleManager    Role = "manager"
	RoleFrontDesk  Role = "front_desk"
	RoleNightAudit Role = "night_audit"
)

type User struct {
	ID                  int64     `json:"id"`
	Username            string    `json:"username"`
	PasswordHash        string    `json:"-"`
	FullName            string    `json:"fullName"`
	Email               string    `json:"email"`
	Role                Role      `json:"role"`
	IsActive            bool      `json:"isActive"`
	ForcePasswordChange bool      `json:"forcePasswordChange"`
	CreatedAt           time.Time `json:"createdAt"`
	Version             int32     `json:"-"`
}
