package model

import "encoding/json"

// Tool ist ein von Mitgliedern eingereichtes Werkzeug/Link.
type Tool struct {
	UUIDBase
	Title       string `gorm:"size:255;not null" json:"title"`
	URL         string `gorm:"size:255;not null" json:"url"`
	Description string `gorm:"type:text" json:"description"`
	CreatorID   uint   `gorm:"index" json:"creatorId"`
}

func (Tool) TableName() string {
	return "tools"
}

type ToolLike struct {
	BaseModel
	ToolID string `gorm:"uniqueIndex:idx_tool_user;size:36;not null" json:"toolId"`
	UserID uint   `gorm:"uniqueIndex:idx_tool_user;not null" json:"userId"`
}

func (ToolLike) TableName() string {
	return "tool_likes"
}

type ToolComment struct {
	BaseModel
	ToolID  string `gorm:"index;size:36;not null" json:"toolId"`
	UserID  uint   `gorm:"index" json:"userId"`
	User    *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comment string `gorm:"type:text;not null" json:"comment"`
}

func (ToolComment) TableName() string {
	return "tool_comments"
}

// FeaturedTool wird redaktionell gepflegt und im Karussell angezeigt.
type FeaturedTool struct {
	BaseModel
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	LongDescription string          `gorm:"type:text" json:"longDescription"`
	YouTubeURL      string          `gorm:"size:255" json:"youtubeUrl"`
	Links           json.RawMessage `gorm:"type:json" json:"links,omitempty"` // [{label, url}]
	ImageURL        string          `gorm:"size:255" json:"imageUrl"`
	SortOrder       int             `gorm:"default:0" json:"sortOrder"`
	IsActive        bool            `gorm:"default:true" json:"isActive"`
}

func (FeaturedTool) TableName() string {
	return "featured_tools"
}
