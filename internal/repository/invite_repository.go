package repository

import (
	"lernraum_backend/internal/model"

	"gorm.io/gorm"
)

type InviteRepository struct {
	DB *gorm.DB
}

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{DB: db}
}

func (r *InviteRepository) Create(invite *model.InviteCode) error {
	return r.DB.Create(invite).Error
}

func (r *InviteRepository) FindByID(id uint) (*model.InviteCode, error) {
	var invite model.InviteCode
	err := r.DB.First(&invite, id).Error
	return &invite, err
}

func (r *InviteRepository) List() ([]model.InviteCode, error) {
	var invites []model.InviteCode
	err := r.DB.Order("created_at DESC").Find(&invites).Error
	return invites, err
}

// FindAll lädt alle Codes inklusive Hash, für den Abgleich beim Registrieren.
func (r *InviteRepository) FindAll() ([]model.InviteCode, error) {
	var invites []model.InviteCode
	err := r.DB.Find(&invites).Error
	return invites, err
}

// IncrementUsage zählt eine Verwendung hoch, aber nur solange das Limit
// noch nicht erreicht ist.
func (r *InviteRepository) IncrementUsage(id uint) error {
	result := r.DB.Model(&model.InviteCode{}).
		Where("id = ? AND (max_uses = 0 OR used_count < max_uses)", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InviteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.InviteCode{}, id).Error
}
