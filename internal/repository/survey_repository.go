package repository

import (
	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

func (r *SurveyRepository) Create(survey *model.Survey) error {
	return r.DB.Create(survey).Error
}

func (r *SurveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC, id ASC")
	}).First(&survey, id).Error
	return &survey, err
}

func (r *SurveyRepository) FindByToken(token string) (*model.Survey, error) {
	var survey model.Survey
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC, id ASC")
	}).Where("token = ?", token).First(&survey).Error
	return &survey, err
}

func (r *SurveyRepository) List() ([]model.Survey, error) {
	var surveys []model.Survey
	err := r.DB.Order("created_at DESC").Find(&surveys).Error
	return surveys, err
}

func (r *SurveyRepository) Update(survey *model.Survey) error {
	return r.DB.Save(survey).Error
}

// ReplaceQuestions tauscht den Fragenkatalog einer Umfrage komplett aus.
// Vorhandene Antworten verweisen danach ggf. auf gelöschte Fragen und
// fallen aus der Auswertung heraus.
func (r *SurveyRepository) ReplaceQuestions(surveyID uint, questions []model.SurveyQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.SurveyQuestion{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].SurveyID = surveyID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SurveyRepository) CreateQuestion(question *model.SurveyQuestion) error {
	return r.DB.Create(question).Error
}

func (r *SurveyRepository) FindQuestion(id uint) (*model.SurveyQuestion, error) {
	var question model.SurveyQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *SurveyRepository) UpdateQuestion(question *model.SurveyQuestion) error {
	return r.DB.Save(question).Error
}

func (r *SurveyRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.SurveyQuestion{}, id).Error
}

func (r *SurveyRepository) MaxOrderIndex(surveyID uint) (int, error) {
	var max *int
	err := r.DB.Model(&model.SurveyQuestion{}).
		Where("survey_id = ?", surveyID).
		Select("MAX(order_index)").Scan(&max).Error
	if err != nil || max == nil {
		return -1, err
	}
	return *max, nil
}

func (r *SurveyRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var responseIDs []uint
		if err := tx.Model(&model.SurveyResponse{}).
			Where("survey_id = ?", id).Pluck("id", &responseIDs).Error; err != nil {
			return err
		}
		if len(responseIDs) > 0 {
			if err := tx.Where("response_id IN ?", responseIDs).Delete(&model.SurveyAnswer{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.SurveyResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.SurveyQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Survey{}, id).Error
	})
}

// CreateResponseWithAnswers schreibt Teilnahme und Antworten in einer
// Transaktion. Entweder landet alles in der Datenbank oder nichts.
func (r *SurveyRepository) CreateResponseWithAnswers(response *model.SurveyResponse, answers []model.SurveyAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ResponseID = response.ID
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SurveyRepository) ListResponses(surveyID uint) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := r.DB.Where("survey_id = ?", surveyID).
		Order("created_at ASC, id ASC").Find(&responses).Error
	return responses, err
}

func (r *SurveyRepository) ListAnswers(surveyID uint) ([]model.SurveyAnswer, error) {
	var answers []model.SurveyAnswer
	err := r.DB.
		Joins("JOIN survey_responses ON survey_responses.id = survey_answers.response_id").
		Where("survey_responses.survey_id = ?", surveyID).
		Order("survey_answers.response_id ASC, survey_answers.question_id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *SurveyRepository) CountResponses(surveyID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SurveyResponse{}).
		Where("survey_id = ?", surveyID).Count(&count).Error
	return count, err
}
