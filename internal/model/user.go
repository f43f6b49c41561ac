package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;default:'student'" json:"role"`
	About     string    `gorm:"type:text" json:"about"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `json:"lastLogin"`
	LastSeen  time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// InviteCode gewährt Zugang zur Plattform; der Klartext-Code wird nie
// gespeichert, nur sein bcrypt-Hash.
type InviteCode struct {
	BaseModel
	Label     string     `gorm:"size:255" json:"label"`
	CodeHash  string     `gorm:"size:100;not null" json:"-"`
	Role      UserRole   `gorm:"size:20;default:'student'" json:"role"`
	MaxUses   int        `gorm:"default:1" json:"maxUses"`
	UsedCount int        `gorm:"default:0" json:"usedCount"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (InviteCode) TableName() string {
	return "invite_codes"
}
