package model

import (
	"encoding/json"
	"time"
)

type Project struct {
	UUIDBase
	Slug              string          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title             string          `gorm:"size:255;not null" json:"title"`
	Description       string          `gorm:"type:text" json:"description"`
	Content           string          `gorm:"type:text" json:"content"`
	ImageURL          string          `gorm:"size:255" json:"imageUrl"`
	CreatorID         uint            `gorm:"index" json:"creatorId"`
	AllowParticipants bool            `json:"allowParticipants"`
	MaxParticipants   *int            `json:"maxParticipants,omitempty"`
	ExternalLinks     json.RawMessage `gorm:"type:json" json:"externalLinks,omitempty"` // [{label, url}]

	Participants []ProjectParticipant `gorm:"foreignKey:ProjectID" json:"participants,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectParticipant struct {
	BaseModel
	ProjectID string    `gorm:"uniqueIndex:idx_project_user;size:36;not null" json:"projectId"`
	UserID    uint      `gorm:"uniqueIndex:idx_project_user;not null" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	JoinedAt  time.Time `json:"joinedAt"`
}

func (ProjectParticipant) TableName() string {
	return "project_participants"
}

type ProjectComment struct {
	BaseModel
	ProjectID string `gorm:"index;size:36;not null" json:"projectId"`
	AuthorID  uint   `gorm:"index" json:"authorId"`
	Author    *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Body      string `gorm:"type:text;not null" json:"body"`
}

func (ProjectComment) TableName() string {
	return "project_comments"
}
