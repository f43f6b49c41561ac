package repository

import (
	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.DB.Create(project).Error
}

func (r *ProjectRepository) FindByID(id string) (*model.Project, error) {
	var project model.Project
	err := r.DB.Preload("Participants.User").First(&project, "id = ?", id).Error
	return &project, err
}

func (r *ProjectRepository) FindBySlug(slug string) (*model.Project, error) {
	var project model.Project
	err := r.DB.Preload("Participants.User").Where("slug = ?", slug).First(&project).Error
	return &project, err
}

func (r *ProjectRepository) List(offset, limit int) ([]model.Project, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	err := r.DB.Preload("Participants").
		Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepository) Update(project *model.Project) error {
	return r.DB.Save(project).Error
}

func (r *ProjectRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, "id = ?", id).Error
	})
}

func (r *ProjectRepository) CountParticipants(projectID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ProjectParticipant{}).
		Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

func (r *ProjectRepository) FindParticipant(projectID string, userID uint) (*model.ProjectParticipant, error) {
	var participant model.ProjectParticipant
	err := r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&participant).Error
	return &participant, err
}

func (r *ProjectRepository) AddParticipant(participant *model.ProjectParticipant) error {
	return r.DB.Create(participant).Error
}

func (r *ProjectRepository) RemoveParticipant(projectID string, userID uint) error {
	return r.DB.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectParticipant{}).Error
}

func (r *ProjectRepository) CreateComment(comment *model.ProjectComment) error {
	return r.DB.Create(comment).Error
}

func (r *ProjectRepository) FindComment(id uint) (*model.ProjectComment, error) {
	var comment model.ProjectComment
	err := r.DB.First(&comment, id).Error
	return &comment, err
}

func (r *ProjectRepository) ListComments(projectID string) ([]model.ProjectComment, error) {
	var comments []model.ProjectComment
	err := r.DB.Preload("Author").
		Where("project_id = ?", projectID).
		Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *ProjectRepository) DeleteComment(id uint) error {
	return r.DB.Delete(&model.ProjectComment{}, id).Error
}
