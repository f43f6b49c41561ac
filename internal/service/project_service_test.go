package service

import (
	"testing"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) *ProjectService {
	return NewProjectService(repository.NewProjectRepository(newTestDB(t)))
}

func TestProjectJoinLimits(t *testing.T) {
	svc := newProjectService(t)
	maxTwo := 2
	project := &model.Project{
		Title:             "Wetterstation",
		CreatorID:         1,
		AllowParticipants: true,
		MaxParticipants:   &maxTwo,
	}
	require.NoError(t, svc.CreateProject(project))

	require.NoError(t, svc.Join(project.ID, 2))
	assert.ErrorIs(t, svc.Join(project.ID, 2), util.ErrAlreadyJoined)
	require.NoError(t, svc.Join(project.ID, 3))
	assert.ErrorIs(t, svc.Join(project.ID, 4), util.ErrProjectFull)

	// Nach einem Austritt wird wieder ein Platz frei
	require.NoError(t, svc.Leave(project.ID, 3))
	assert.NoError(t, svc.Join(project.ID, 4))
}

func TestProjectJoinClosed(t *testing.T) {
	svc := newProjectService(t)
	project := &model.Project{Title: "Solo", CreatorID: 1, AllowParticipants: false}
	require.NoError(t, svc.CreateProject(project))

	assert.ErrorIs(t, svc.Join(project.ID, 2), util.ErrPermissionDenied)
}

func TestProjectSlugUniqueness(t *testing.T) {
	svc := newProjectService(t)

	first := &model.Project{Title: "Mein Projekt", CreatorID: 1}
	require.NoError(t, svc.CreateProject(first))
	second := &model.Project{Title: "Mein Projekt", CreatorID: 2}
	require.NoError(t, svc.CreateProject(second))

	assert.Equal(t, "mein-projekt", first.Slug)
	assert.Equal(t, "mein-projekt-2", second.Slug)
}

func TestProjectDeleteOnlyCreatorOrAdmin(t *testing.T) {
	svc := newProjectService(t)
	project := &model.Project{Title: "Fremd", CreatorID: 1}
	require.NoError(t, svc.CreateProject(project))

	assert.ErrorIs(t, svc.DeleteProject(project.ID, 2, false), util.ErrPermissionDenied)
	assert.NoError(t, svc.DeleteProject(project.ID, 2, true))
}
