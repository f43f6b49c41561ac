package repository

import (
	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type ToolRepository struct {
	DB *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{DB: db}
}

func (r *ToolRepository) Create(tool *model.Tool) error {
	return r.DB.Create(tool).Error
}

func (r *ToolRepository) FindByID(id string) (*model.Tool, error) {
	var tool model.Tool
	err := r.DB.First(&tool, "id = ?", id).Error
	return &tool, err
}

func (r *ToolRepository) List() ([]model.Tool, error) {
	var tools []model.Tool
	err := r.DB.Order("created_at DESC").Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) Update(tool *model.Tool) error {
	return r.DB.Save(tool).Error
}

func (r *ToolRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tool_id = ?", id).Delete(&model.ToolLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tool_id = ?", id).Delete(&model.ToolComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tool{}, "id = ?", id).Error
	})
}

func (r *ToolRepository) CountLikes(toolID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ToolLike{}).Where("tool_id = ?", toolID).Count(&count).Error
	return count, err
}

func (r *ToolRepository) FindLike(toolID string, userID uint) (*model.ToolLike, error) {
	var like model.ToolLike
	err := r.DB.Where("tool_id = ? AND user_id = ?", toolID, userID).First(&like).Error
	return &like, err
}

func (r *ToolRepository) CreateLike(like *model.ToolLike) error {
	return r.DB.Create(like).Error
}

func (r *ToolRepository) DeleteLike(toolID string, userID uint) error {
	return r.DB.Where("tool_id = ? AND user_id = ?", toolID, userID).
		Delete(&model.ToolLike{}).Error
}

func (r *ToolRepository) CreateComment(comment *model.ToolComment) error {
	return r.DB.Create(comment).Error
}

func (r *ToolRepository) FindComment(id uint) (*model.ToolComment, error) {
	var comment model.ToolComment
	err := r.DB.First(&comment, id).Error
	return &comment, err
}

func (r *ToolRepository) ListComments(toolID string) ([]model.ToolComment, error) {
	var comments []model.ToolComment
	err := r.DB.Preload("User").
		Where("tool_id = ?", toolID).
		Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *ToolRepository) DeleteComment(id uint) error {
	return r.DB.Delete(&model.ToolComment{}, id).Error
}

func (r *ToolRepository) ListFeatured(onlyActive bool) ([]model.FeaturedTool, error) {
	query := r.DB.Order("sort_order ASC, id ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var featured []model.FeaturedTool
	err := query.Find(&featured).Error
	return featured, err
}

func (r *ToolRepository) CreateFeatured(ft *model.FeaturedTool) error {
	return r.DB.Create(ft).Error
}

func (r *ToolRepository) FindFeatured(id uint) (*model.FeaturedTool, error) {
	var ft model.FeaturedTool
	err := r.DB.First(&ft, id).Error
	return &ft, err
}

func (r *ToolRepository) UpdateFeatured(ft *model.FeaturedTool) error {
	return r.DB.Save(ft).Error
}

func (r *ToolRepository) DeleteFeatured(id uint) error {
	return r.DB.Delete(&model.FeaturedTool{}, id).Error
}
