package model

import "time"

// Week ist eine Einheit des wöchentlichen Lehrplans.
// swagger:model Week
type Week struct {
	BaseModel
	WeekNumber  int        `gorm:"uniqueIndex;not null" json:"weekNumber"`
	Date        *time.Time `json:"date,omitempty"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Summary     string     `gorm:"type:text" json:"summary"`
	Body        string     `gorm:"type:text" json:"body"`
	IsPublished bool       `gorm:"default:false" json:"isPublished"`
	CreatedBy   uint       `gorm:"index" json:"createdBy"`
	Files       []WeekFile `gorm:"foreignKey:WeekID" json:"files,omitempty"`
}

func (Week) TableName() string {
	return "weeks"
}

type WeekFile struct {
	BaseModel
	WeekID    uint   `gorm:"index;not null" json:"weekId"`
	FileName  string `gorm:"size:255;not null" json:"fileName"`
	FileURL   string `gorm:"size:255;not null" json:"fileUrl"`
	FileType  string `gorm:"size:100" json:"fileType"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}

func (WeekFile) TableName() string {
	return "week_files"
}
