package service

import (
	"testing"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newForumService(t *testing.T) (*ForumService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewForumService(repository.NewForumRepository(db))
	require.NoError(t, svc.CreateCategory(&model.ForumCategory{Slug: "allgemein", Name: "Allgemein"}))
	return svc, db
}

func newTopic(t *testing.T, svc *ForumService) *model.ForumTopic {
	t.Helper()
	topic := &model.ForumTopic{Title: "Erstes Thema", AuthorID: 1}
	require.NoError(t, svc.CreateTopic("allgemein", topic))
	return topic
}

func TestCreateTopicUnknownCategory(t *testing.T) {
	svc, _ := newForumService(t)
	err := svc.CreateTopic("gibt-es-nicht", &model.ForumTopic{Title: "x", AuthorID: 1})
	assert.Error(t, err)
}

func TestCreatePostOnLockedTopic(t *testing.T) {
	svc, _ := newForumService(t)
	topic := newTopic(t, svc)
	require.NoError(t, svc.SetLocked(topic.ID, true))

	err := svc.CreatePost(&model.ForumPost{TopicID: topic.ID, AuthorID: 1, Body: "Hallo"})
	assert.ErrorIs(t, err, util.ErrTopicLocked)

	require.NoError(t, svc.SetLocked(topic.ID, false))
	assert.NoError(t, svc.CreatePost(&model.ForumPost{TopicID: topic.ID, AuthorID: 1, Body: "Hallo"}))
}

func TestCreatePostFlattensDeepReplies(t *testing.T) {
	svc, _ := newForumService(t)
	topic := newTopic(t, svc)

	root := &model.ForumPost{TopicID: topic.ID, AuthorID: 1, Body: "Wurzel"}
	require.NoError(t, svc.CreatePost(root))

	reply := &model.ForumPost{TopicID: topic.ID, AuthorID: 2, Body: "Antwort", ParentID: &root.ID}
	require.NoError(t, svc.CreatePost(reply))
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)

	// Antwort auf eine Antwort wird an den Wurzelbeitrag gehängt
	deep := &model.ForumPost{TopicID: topic.ID, AuthorID: 3, Body: "Tiefer", ParentID: &reply.ID}
	require.NoError(t, svc.CreatePost(deep))
	require.NotNil(t, deep.ParentID)
	assert.Equal(t, root.ID, *deep.ParentID)
}

func TestDeletePostOnlyAuthorOrAdmin(t *testing.T) {
	svc, _ := newForumService(t)
	topic := newTopic(t, svc)
	post := &model.ForumPost{TopicID: topic.ID, AuthorID: 1, Body: "Beitrag"}
	require.NoError(t, svc.CreatePost(post))

	assert.ErrorIs(t, svc.DeletePost(post.ID, 2, false), util.ErrPermissionDenied)
	assert.NoError(t, svc.DeletePost(post.ID, 2, true))
}

func TestDeleteTopicRemovesPosts(t *testing.T) {
	svc, db := newForumService(t)
	topic := newTopic(t, svc)
	require.NoError(t, svc.CreatePost(&model.ForumPost{TopicID: topic.ID, AuthorID: 1, Body: "a"}))
	require.NoError(t, svc.CreatePost(&model.ForumPost{TopicID: topic.ID, AuthorID: 1, Body: "b"}))

	require.NoError(t, svc.DeleteTopic(topic.ID, topic.AuthorID, false))

	var count int64
	require.NoError(t, db.Model(&model.ForumPost{}).Where("topic_id = ?", topic.ID).Count(&count).Error)
	assert.Zero(t, count)
}
