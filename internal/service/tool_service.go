package service

import (
	"errors"
	"sort"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"gorm.io/gorm"
)

type ToolService struct {
	ToolRepo *repository.ToolRepository
}

func NewToolService(toolRepo *repository.ToolRepository) *ToolService {
	return &ToolService{ToolRepo: toolRepo}
}

// ToolView ist ein Tool mit Zähl- und Statusfeldern für die Liste.
type ToolView struct {
	model.Tool
	LikeCount int64 `json:"likeCount"`
	LikedByMe bool  `json:"likedByMe"`
}

func (s *ToolService) CreateTool(tool *model.Tool) error {
	return s.ToolRepo.Create(tool)
}

func (s *ToolService) ListTools(userID uint) ([]ToolView, error) {
	tools, err := s.ToolRepo.List()
	if err != nil {
		return nil, err
	}

	views := make([]ToolView, 0, len(tools))
	for _, tool := range tools {
		view := ToolView{Tool: tool}
		view.LikeCount, _ = s.ToolRepo.CountLikes(tool.ID)
		if userID != 0 {
			if _, err := s.ToolRepo.FindLike(tool.ID, userID); err == nil {
				view.LikedByMe = true
			}
		}
		views = append(views, view)
	}

	// Beliebteste zuerst, bei Gleichstand die neuesten
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].LikeCount > views[j].LikeCount
	})
	return views, nil
}

// ToggleLike setzt oder entfernt das Like; liefert den neuen Zustand.
func (s *ToolService) ToggleLike(toolID string, userID uint) (liked bool, count int64, err error) {
	if _, err = s.ToolRepo.FindByID(toolID); err != nil {
		return false, 0, err
	}

	_, err = s.ToolRepo.FindLike(toolID, userID)
	switch {
	case err == nil:
		if err = s.ToolRepo.DeleteLike(toolID, userID); err != nil {
			return false, 0, err
		}
		liked = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err = s.ToolRepo.CreateLike(&model.ToolLike{ToolID: toolID, UserID: userID}); err != nil {
			return false, 0, err
		}
		liked = true
	default:
		return false, 0, err
	}

	count, err = s.ToolRepo.CountLikes(toolID)
	return liked, count, err
}

func (s *ToolService) AddComment(comment *model.ToolComment) error {
	if _, err := s.ToolRepo.FindByID(comment.ToolID); err != nil {
		return err
	}
	return s.ToolRepo.CreateComment(comment)
}

func (s *ToolService) ListComments(toolID string) ([]model.ToolComment, error) {
	return s.ToolRepo.ListComments(toolID)
}

func (s *ToolService) DeleteComment(commentID uint, userID uint, isAdmin bool) error {
	comment, err := s.ToolRepo.FindComment(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ToolRepo.DeleteComment(commentID)
}

func (s *ToolService) DeleteTool(toolID string, userID uint, isAdmin bool) error {
	tool, err := s.ToolRepo.FindByID(toolID)
	if err != nil {
		return err
	}
	if tool.CreatorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ToolRepo.Delete(toolID)
}

func (s *ToolService) ListFeatured(includeInactive bool) ([]model.FeaturedTool, error) {
	return s.ToolRepo.ListFeatured(!includeInactive)
}

func (s *ToolService) CreateFeatured(ft *model.FeaturedTool) error {
	return s.ToolRepo.CreateFeatured(ft)
}

func (s *ToolService) GetFeatured(id uint) (*model.FeaturedTool, error) {
	return s.ToolRepo.FindFeatured(id)
}

func (s *ToolService) UpdateFeatured(ft *model.FeaturedTool) error {
	if _, err := s.ToolRepo.FindFeatured(ft.ID); err != nil {
		return err
	}
	return s.ToolRepo.UpdateFeatured(ft)
}

func (s *ToolService) DeleteFeatured(id uint) error {
	return s.ToolRepo.DeleteFeatured(id)
}
