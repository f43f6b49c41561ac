package model

type ForumCategory struct {
	BaseModel
	Slug        string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

func (ForumCategory) TableName() string {
	return "forum_categories"
}

type ForumTopic struct {
	BaseModel
	CategoryID uint   `gorm:"index;not null" json:"categoryId"`
	Title      string `gorm:"size:255;not null" json:"title"`
	AuthorID   uint   `gorm:"index" json:"authorId"`
	Author     User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsPinned   bool   `gorm:"default:false" json:"isPinned"`
	IsLocked   bool   `gorm:"default:false" json:"isLocked"`
	Views      int    `gorm:"default:0" json:"views"`
}

func (ForumTopic) TableName() string {
	return "forum_topics"
}

type ForumPost struct {
	BaseModel
	TopicID  uint   `gorm:"index;not null" json:"topicId"`
	AuthorID uint   `gorm:"index" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Body     string `gorm:"type:text;not null" json:"body"`
	// Eine Antwortebene: Antworten auf Antworten verweisen auf den Wurzelbeitrag
	ParentID *uint `gorm:"index" json:"parentId,omitempty"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}
