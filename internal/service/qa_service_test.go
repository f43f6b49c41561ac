package service

import (
	"testing"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(id uint, parentID *uint) model.QAAnswer {
	return model.QAAnswer{BaseModel: model.BaseModel{ID: id}, ParentAnswerID: parentID}
}

func uintPtr(v uint) *uint { return &v }

func TestBuildAnswerTree(t *testing.T) {
	answers := []model.QAAnswer{
		answer(1, nil),
		answer(2, uintPtr(1)),
		answer(3, uintPtr(1)),
		answer(4, nil),
		answer(5, uintPtr(4)),
	}

	roots := BuildAnswerTree(answers)
	require.Len(t, roots, 2)

	assert.Equal(t, uint(1), roots[0].ID)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, uint(2), roots[0].Children[0].ID)
	assert.Equal(t, uint(3), roots[0].Children[1].ID)

	assert.Equal(t, uint(4), roots[1].ID)
	require.Len(t, roots[1].Children, 1)
	assert.Equal(t, uint(5), roots[1].Children[0].ID)
}

func TestBuildAnswerTreeOrphansBecomeRoots(t *testing.T) {
	answers := []model.QAAnswer{
		answer(1, nil),
		answer(2, uintPtr(99)), // Elternantwort existiert nicht mehr
	}

	roots := BuildAnswerTree(answers)
	require.Len(t, roots, 2)
	assert.Equal(t, uint(2), roots[1].ID)
}

func TestBuildAnswerTreeEmpty(t *testing.T) {
	assert.Empty(t, BuildAnswerTree(nil))
}

func TestCreateAnswerRejectsForeignParent(t *testing.T) {
	db := newTestDB(t)
	svc := NewQAService(repository.NewQARepository(db))

	q1 := &model.QAQuestion{Title: "Frage 1", Body: "?", AuthorID: 1}
	require.NoError(t, svc.CreateQuestion(q1, nil))
	q2 := &model.QAQuestion{Title: "Frage 2", Body: "?", AuthorID: 1}
	require.NoError(t, svc.CreateQuestion(q2, nil))

	parent := &model.QAAnswer{QuestionID: q1.ID, AuthorID: 2, Body: "Antwort"}
	require.NoError(t, svc.CreateAnswer(parent, nil))

	// Antwort auf eine Antwort einer anderen Frage
	wrong := &model.QAAnswer{QuestionID: q2.ID, AuthorID: 2, Body: "Quer", ParentAnswerID: &parent.ID}
	assert.ErrorIs(t, svc.CreateAnswer(wrong, nil), util.ErrPermissionDenied)
}

func TestSetResolvedOnlyAuthorOrAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewQAService(repository.NewQARepository(db))

	q := &model.QAQuestion{Title: "Frage", Body: "?", AuthorID: 1}
	require.NoError(t, svc.CreateQuestion(q, nil))

	assert.ErrorIs(t, svc.SetResolved(q.ID, 2, false, true), util.ErrPermissionDenied)
	require.NoError(t, svc.SetResolved(q.ID, 2, true, true))

	updated, _, err := svc.GetQuestion(q.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsResolved)
}
