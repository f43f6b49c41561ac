package service

import (
	"testing"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	svc := NewToolService(repository.NewToolRepository(newTestDB(t)))
	tool := &model.Tool{Title: "Excalidraw", URL: "https://excalidraw.com", CreatorID: 1}
	require.NoError(t, svc.CreateTool(tool))

	liked, count, err := svc.ToggleLike(tool.ID, 1)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = svc.ToggleLike(tool.ID, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(2), count)

	// Zweites Toggle desselben Benutzers entfernt das Like wieder
	liked, count, err = svc.ToggleLike(tool.ID, 1)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(1), count)
}

func TestListToolsLikedByMe(t *testing.T) {
	svc := NewToolService(repository.NewToolRepository(newTestDB(t)))
	tool := &model.Tool{Title: "Fresh", URL: "https://example.com", CreatorID: 1}
	require.NoError(t, svc.CreateTool(tool))
	_, _, err := svc.ToggleLike(tool.ID, 7)
	require.NoError(t, err)

	views, err := svc.ListTools(7)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].LikedByMe)
	assert.Equal(t, int64(1), views[0].LikeCount)

	views, err = svc.ListTools(8)
	require.NoError(t, err)
	assert.False(t, views[0].LikedByMe)
}

func TestDeleteToolOnlyCreatorOrAdmin(t *testing.T) {
	svc := NewToolService(repository.NewToolRepository(newTestDB(t)))
	tool := &model.Tool{Title: "Tool", URL: "https://example.com", CreatorID: 1}
	require.NoError(t, svc.CreateTool(tool))

	assert.ErrorIs(t, svc.DeleteTool(tool.ID, 2, false), util.ErrPermissionDenied)
	assert.NoError(t, svc.DeleteTool(tool.ID, 1, false))
}
