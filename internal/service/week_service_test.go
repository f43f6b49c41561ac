package service

import (
	"testing"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWeekService(t *testing.T) *WeekService {
	return NewWeekService(repository.NewWeekRepository(newTestDB(t)))
}

func TestCreateWeekRejectsDuplicateNumber(t *testing.T) {
	svc := newWeekService(t)
	require.NoError(t, svc.CreateWeek(&model.Week{WeekNumber: 1, Title: "Start"}))
	assert.Error(t, svc.CreateWeek(&model.Week{WeekNumber: 1, Title: "Nochmal"}))
}

func TestGetWeekHidesUnpublished(t *testing.T) {
	svc := newWeekService(t)
	require.NoError(t, svc.CreateWeek(&model.Week{WeekNumber: 2, Title: "Entwurf"}))

	_, err := svc.GetWeek(2, false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	week, err := svc.GetWeek(2, true)
	require.NoError(t, err)
	assert.Equal(t, "Entwurf", week.Title)
}

func TestCurrentWeek(t *testing.T) {
	svc := newWeekService(t)

	_, err := svc.CurrentWeek()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.CreateWeek(&model.Week{WeekNumber: 1, Title: "Eins", IsPublished: true}))
	require.NoError(t, svc.CreateWeek(&model.Week{WeekNumber: 3, Title: "Drei", IsPublished: true}))
	// Unveröffentlichte Wochen zählen nicht als aktuell
	require.NoError(t, svc.CreateWeek(&model.Week{WeekNumber: 4, Title: "Vier"}))

	week, err := svc.CurrentWeek()
	require.NoError(t, err)
	assert.Equal(t, 3, week.WeekNumber)
}
