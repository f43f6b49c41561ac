package repository

import (
	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type QARepository struct {
	DB *gorm.DB
}

func NewQARepository(db *gorm.DB) *QARepository {
	return &QARepository{DB: db}
}

func (r *QARepository) CreateQuestion(question *model.QAQuestion) error {
	return r.DB.Create(question).Error
}

func (r *QARepository) FindQuestion(id uint) (*model.QAQuestion, error) {
	var question model.QAQuestion
	err := r.DB.Preload("Author").
		Preload("Attachments", "answer_id IS NULL").
		First(&question, id).Error
	return &question, err
}

func (r *QARepository) ListQuestions(offset, limit int, resolved *bool) ([]model.QAQuestion, int64, error) {
	query := r.DB.Model(&model.QAQuestion{})
	if resolved != nil {
		query = query.Where("is_resolved = ?", *resolved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.QAQuestion
	err := query.Preload("Author").
		Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&questions).Error
	return questions, total, err
}

func (r *QARepository) CountAnswers(questionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QAAnswer{}).
		Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}

func (r *QARepository) UpdateQuestion(question *model.QAQuestion) error {
	return r.DB.Save(question).Error
}

func (r *QARepository) DeleteQuestion(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.QAAttachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.QAAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QAQuestion{}, id).Error
	})
}

func (r *QARepository) CreateAnswer(answer *model.QAAnswer) error {
	return r.DB.Create(answer).Error
}

func (r *QARepository) FindAnswer(id uint) (*model.QAAnswer, error) {
	var answer model.QAAnswer
	err := r.DB.First(&answer, id).Error
	return &answer, err
}

// ListAnswers liefert alle Antworten einer Frage flach, chronologisch
// aufsteigend. Den Baum baut der Service.
func (r *QARepository) ListAnswers(questionID uint) ([]model.QAAnswer, error) {
	var answers []model.QAAnswer
	err := r.DB.Preload("Author").
		Preload("Attachments").
		Where("question_id = ?", questionID).
		Order("created_at ASC").Find(&answers).Error
	return answers, err
}

func (r *QARepository) DeleteAnswer(id uint) error {
	return r.DB.Delete(&model.QAAnswer{}, id).Error
}

func (r *QARepository) CreateAttachment(att *model.QAAttachment) error {
	return r.DB.Create(att).Error
}
