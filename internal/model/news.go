package model

import "time"

// swagger:model News
type News struct {
	BaseModel
	Slug        string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Body        string     `gorm:"type:text" json:"body"`
	IsHTML      bool       `gorm:"default:false" json:"isHtml"`
	YouTubeURL  string     `gorm:"size:255" json:"youtubeUrl"`
	IsPublic    bool       `gorm:"default:false" json:"isPublic"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	AuthorID    uint       `gorm:"index" json:"authorId"`
}

func (News) TableName() string {
	return "news"
}
