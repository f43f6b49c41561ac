package repository

import (
	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type ForumRepository struct {
	DB *gorm.DB
}

func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{DB: db}
}

func (r *ForumRepository) ListCategories() ([]model.ForumCategory, error) {
	var categories []model.ForumCategory
	err := r.DB.Order("sort_order ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (r *ForumRepository) FindCategoryBySlug(slug string) (*model.ForumCategory, error) {
	var category model.ForumCategory
	err := r.DB.Where("slug = ?", slug).First(&category).Error
	return &category, err
}

func (r *ForumRepository) CreateCategory(category *model.ForumCategory) error {
	return r.DB.Create(category).Error
}

func (r *ForumRepository) CreateTopic(topic *model.ForumTopic) error {
	return r.DB.Create(topic).Error
}

func (r *ForumRepository) FindTopic(id uint) (*model.ForumTopic, error) {
	var topic model.ForumTopic
	err := r.DB.Preload("Author").First(&topic, id).Error
	return &topic, err
}

// ListTopics sortiert angepinnte Themen nach oben, danach nach letzter
// Aktivität.
func (r *ForumRepository) ListTopics(categoryID uint, offset, limit int) ([]model.ForumTopic, int64, error) {
	query := r.DB.Model(&model.ForumTopic{}).Where("category_id = ?", categoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []model.ForumTopic
	err := query.Preload("Author").
		Order("is_pinned DESC, updated_at DESC").
		Offset(offset).Limit(limit).Find(&topics).Error
	return topics, total, err
}

func (r *ForumRepository) UpdateTopic(topic *model.ForumTopic) error {
	return r.DB.Save(topic).Error
}

func (r *ForumRepository) IncrementViews(topicID uint) error {
	return r.DB.Model(&model.ForumTopic{}).
		Where("id = ?", topicID).
		UpdateColumn("views", gorm.Expr("views + 1")).
		Error
}

// TouchTopic aktualisiert den Aktivitätszeitstempel nach einer neuen Antwort.
func (r *ForumRepository) TouchTopic(topicID uint) error {
	return r.DB.Model(&model.ForumTopic{}).
		Where("id = ?", topicID).
		UpdateColumn("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).
		Error
}

func (r *ForumRepository) DeleteTopic(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&model.ForumPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ForumTopic{}, id).Error
	})
}

func (r *ForumRepository) CreatePost(post *model.ForumPost) error {
	return r.DB.Create(post).Error
}

func (r *ForumRepository) FindPost(id uint) (*model.ForumPost, error) {
	var post model.ForumPost
	err := r.DB.First(&post, id).Error
	return &post, err
}

func (r *ForumRepository) ListPosts(topicID uint) ([]model.ForumPost, error) {
	var posts []model.ForumPost
	err := r.DB.Preload("Author").
		Where("topic_id = ?", topicID).
		Order("created_at ASC").Find(&posts).Error
	return posts, err
}

func (r *ForumRepository) DeletePost(id uint) error {
	return r.DB.Delete(&model.ForumPost{}, id).Error
}
