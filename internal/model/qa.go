package model

// QAQuestion ist eine Frage im Q&A-Bereich (Rich-Text-Body, Anhänge,
// verschachtelte Antworten).
type QAQuestion struct {
	BaseModel
	Title       string         `gorm:"size:255;not null" json:"title"`
	Body        string         `gorm:"type:text;not null" json:"body"`
	AuthorID    uint           `gorm:"index" json:"authorId"`
	Author      *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsResolved  bool           `gorm:"default:false" json:"isResolved"`
	Attachments []QAAttachment `gorm:"foreignKey:QuestionID" json:"attachments,omitempty"`
}

func (QAQuestion) TableName() string {
	return "qa_questions"
}

type QAAnswer struct {
	BaseModel
	QuestionID uint `gorm:"index;not null" json:"questionId"`
	// ParentAnswerID nil bedeutet: direkte Antwort auf die Frage
	ParentAnswerID *uint          `gorm:"index" json:"parentAnswerId,omitempty"`
	AuthorID       uint           `gorm:"index" json:"authorId"`
	Author         *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Body           string         `gorm:"type:text;not null" json:"body"`
	Attachments    []QAAttachment `gorm:"foreignKey:AnswerID" json:"attachments,omitempty"`
}

func (QAAnswer) TableName() string {
	return "qa_answers"
}

// QAAttachment hängt entweder an einer Frage oder an einer Antwort.
type QAAttachment struct {
	BaseModel
	QuestionID *uint  `gorm:"index" json:"questionId,omitempty"`
	AnswerID   *uint  `gorm:"index" json:"answerId,omitempty"`
	FileName   string `gorm:"size:255;not null" json:"fileName"`
	FileURL    string `gorm:"size:255;not null" json:"fileUrl"`
	FileType   string `gorm:"size:100" json:"fileType"`
}

func (QAAttachment) TableName() string {
	return "qa_attachments"
}
