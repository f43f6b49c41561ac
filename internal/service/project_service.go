package service

import (
	"errors"
	"fmt"
	"time"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"gorm.io/gorm"
)

type ProjectService struct {
	ProjectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{ProjectRepo: projectRepo}
}

func (s *ProjectService) CreateProject(project *model.Project) error {
	if project.Slug == "" {
		project.Slug = Slugify(project.Title)
	}

	base := project.Slug
	for i := 2; ; i++ {
		_, err := s.ProjectRepo.FindBySlug(project.Slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return err
		}
		project.Slug = fmt.Sprintf("%s-%d", base, i)
	}

	return s.ProjectRepo.Create(project)
}

func (s *ProjectService) GetProject(slug string) (*model.Project, error) {
	return s.ProjectRepo.FindBySlug(slug)
}

func (s *ProjectService) ListProjects(page, pageSize int) ([]model.Project, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.ProjectRepo.List((page-1)*pageSize, pageSize)
}

func (s *ProjectService) UpdateProject(project *model.Project, userID uint, isAdmin bool) error {
	if project.CreatorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ProjectRepo.Update(project)
}

func (s *ProjectService) DeleteProject(id string, userID uint, isAdmin bool) error {
	project, err := s.ProjectRepo.FindByID(id)
	if err != nil {
		return err
	}
	if project.CreatorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ProjectRepo.Delete(id)
}

// Join trägt einen Benutzer als Teilnehmer ein. Volle oder geschlossene
// Projekte lehnen ab, Doppelbeitritte ebenfalls.
func (s *ProjectService) Join(projectID string, userID uint) error {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return err
	}
	if !project.AllowParticipants {
		return util.ErrPermissionDenied
	}

	_, err = s.ProjectRepo.FindParticipant(projectID, userID)
	if err == nil {
		return util.ErrAlreadyJoined
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if project.MaxParticipants != nil {
		count, err := s.ProjectRepo.CountParticipants(projectID)
		if err != nil {
			return err
		}
		if count >= int64(*project.MaxParticipants) {
			return util.ErrProjectFull
		}
	}

	return s.ProjectRepo.AddParticipant(&model.ProjectParticipant{
		ProjectID: projectID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	})
}

func (s *ProjectService) Leave(projectID string, userID uint) error {
	if _, err := s.ProjectRepo.FindParticipant(projectID, userID); err != nil {
		return err
	}
	return s.ProjectRepo.RemoveParticipant(projectID, userID)
}

func (s *ProjectService) AddComment(comment *model.ProjectComment) error {
	if _, err := s.ProjectRepo.FindByID(comment.ProjectID); err != nil {
		return err
	}
	return s.ProjectRepo.CreateComment(comment)
}

func (s *ProjectService) ListComments(projectID string) ([]model.ProjectComment, error) {
	return s.ProjectRepo.ListComments(projectID)
}

func (s *ProjectService) DeleteComment(commentID uint, userID uint, isAdmin bool) error {
	comment, err := s.ProjectRepo.FindComment(commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ProjectRepo.DeleteComment(commentID)
}
