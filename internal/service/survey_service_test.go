package service

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"lernraum_backend/internal/model"
	"lernraum_backend/internal/repository"
	"lernraum_backend/internal/util"
	"lernraum_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Benannte In-Memory-Datenbank, damit alle Pool-Verbindungen dieselben
	// Tabellen sehen
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newSurveyService(t *testing.T) (*SurveyService, *gorm.DB) {
	db := newTestDB(t)
	return NewSurveyService(repository.NewSurveyRepository(db)), db
}

func seedSurvey(t *testing.T, svc *SurveyService, survey *model.Survey) *model.Survey {
	t.Helper()
	require.NoError(t, svc.CreateSurvey(survey))
	loaded, err := svc.GetSurvey(survey.ID)
	require.NoError(t, err)
	return loaded
}

func TestGetSurveyByTokenHidesInactive(t *testing.T) {
	svc, _ := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{Token: "inaktiv", Title: "Test", IsActive: true})
	require.NoError(t, svc.SetActive(survey.ID, false))

	_, errUnknown := svc.GetSurveyByToken("gibt-es-nicht")
	_, errInactive := svc.GetSurveyByToken("inaktiv")

	// Unbekannt und inaktiv sind nach außen nicht unterscheidbar
	assert.Equal(t, errUnknown.Error(), errInactive.Error())
}

func TestSubmitRequiredQuestionMissing(t *testing.T) {
	svc, _ := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t1", Title: "Feedback", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.ShortText, Label: "Dein Name", Required: true},
		},
	})

	userID := uint(1)
	_, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, survey.Questions[0].ID, verr.QuestionID)
	assert.Equal(t, "Bitte Frage ausfüllen: Dein Name", verr.Error())
}

func TestSubmitRequiredQuestionEmptyAnswer(t *testing.T) {
	svc, _ := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t2", Title: "Feedback", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.LongText, Label: "Kommentar", Required: true},
		},
	})

	userID := uint(1)
	_, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"value":"   "}`),
	})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSubmitLoginRequired(t *testing.T) {
	svc, _ := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t3", Title: "Nicht anonym", IsActive: true, IsAnonymous: false,
	})

	_, err := svc.Submit(survey.Token, nil, map[uint]json.RawMessage{})
	assert.ErrorIs(t, err, util.ErrLoginRequired)
}

func TestSubmitAnonymousDropsUserID(t *testing.T) {
	svc, db := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t4", Title: "Anonym", IsActive: true, IsAnonymous: true,
		Questions: []model.SurveyQuestion{
			{Type: model.Scale, Label: "Note"},
		},
	})

	userID := uint(7)
	response, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"value":3}`),
	})
	require.NoError(t, err)
	assert.Nil(t, response.UserID)

	var stored model.SurveyResponse
	require.NoError(t, db.First(&stored, response.ID).Error)
	assert.Nil(t, stored.UserID)
}

func TestSubmitRejectsUnknownOptionWithoutWriting(t *testing.T) {
	svc, db := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t5", Title: "Auswahl", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.SingleChoice, Label: "Sprache", Options: json.RawMessage(`["Go","Rust"]`)},
		},
	})

	userID := uint(1)
	_, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"type":"option","value":"Cobol"}`),
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.SurveyResponse{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitRejectsOtherWhenNotAllowed(t *testing.T) {
	svc, _ := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t6", Title: "Auswahl", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.SingleChoice, Label: "Sprache", Options: json.RawMessage(`["Go"]`), AllowOther: false},
		},
	})

	userID := uint(1)
	_, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"type":"other","value":"Zig"}`),
	})
	assert.Error(t, err)
}

func TestSubmitRejectsScaleOutOfBounds(t *testing.T) {
	svc, _ := newSurveyService(t)
	min, max := 1, 5
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t7", Title: "Skala", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.Scale, Label: "Note", MinValue: &min, MaxValue: &max},
		},
	})

	userID := uint(1)
	_, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"value":6}`),
	})
	assert.Error(t, err)
}

func TestSubmitStoresAllAnswersAtomically(t *testing.T) {
	svc, db := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t8", Title: "Komplett", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.ShortText, Label: "Name", Required: true},
			{Type: model.MultipleChoice, Label: "Themen", Options: json.RawMessage(`["A","B"]`), AllowOther: true},
			{Type: model.Scale, Label: "Note"},
		},
	})

	userID := uint(3)
	response, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"value":"Mia"}`),
		survey.Questions[1].ID: json.RawMessage(`{"values":["A"],"otherText":"C"}`),
		survey.Questions[2].ID: json.RawMessage(`{"value":9}`),
	})
	require.NoError(t, err)
	require.NotNil(t, response.UserID)
	assert.Equal(t, userID, *response.UserID)

	var answers []model.SurveyAnswer
	require.NoError(t, db.Where("response_id = ?", response.ID).Find(&answers).Error)
	assert.Len(t, answers, 3)
}

func TestSubmitSkipsEmptyOptionalAnswers(t *testing.T) {
	svc, db := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "t9", Title: "Optional", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.ShortText, Label: "Pflicht", Required: true},
			{Type: model.LongText, Label: "Optional"},
		},
	})

	userID := uint(1)
	response, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"value":"da"}`),
		survey.Questions[1].ID: json.RawMessage(`{"value":""}`),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.SurveyAnswer{}).
		Where("response_id = ?", response.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateSurveyKeepsToken(t *testing.T) {
	svc, _ := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "stabil", Title: "Alt", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.ShortText, Label: "Frage 1"},
		},
	})

	updated := &model.Survey{
		BaseModel: model.BaseModel{ID: survey.ID},
		Token:     "wird-ignoriert",
		Title:     "Neu",
		IsActive:  true,
		Questions: []model.SurveyQuestion{
			{Type: model.Scale, Label: "Frage Neu"},
			{Type: model.ShortText, Label: "Frage Zwei"},
		},
	}
	require.NoError(t, svc.UpdateSurvey(updated))

	loaded, err := svc.GetSurvey(survey.ID)
	require.NoError(t, err)
	assert.Equal(t, "stabil", loaded.Token)
	assert.Equal(t, "Neu", loaded.Title)
	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, "Frage Neu", loaded.Questions[0].Label)
	assert.Equal(t, 0, loaded.Questions[0].OrderIndex)
	assert.Equal(t, 1, loaded.Questions[1].OrderIndex)
}

func TestDeleteSurveyCascades(t *testing.T) {
	svc, db := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "weg", Title: "Löschen", IsActive: true,
		Questions: []model.SurveyQuestion{
			{Type: model.ShortText, Label: "Frage"},
		},
	})

	userID := uint(1)
	_, err := svc.Submit(survey.Token, &userID, map[uint]json.RawMessage{
		survey.Questions[0].ID: json.RawMessage(`{"value":"x"}`),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSurvey(survey.ID))

	_, err = svc.GetSurvey(survey.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	for _, target := range []interface{}{
		&model.SurveyQuestion{}, &model.SurveyResponse{}, &model.SurveyAnswer{},
	} {
		var count int64
		require.NoError(t, db.Model(target).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestResultsEndToEnd(t *testing.T) {
	svc, _ := newSurveyService(t)
	survey := seedSurvey(t, svc, &model.Survey{
		Token: "auswertung", Title: "Kursfeedback", IsActive: true, IsAnonymous: true,
		Questions: []model.SurveyQuestion{
			{Type: model.SingleChoice, Label: "Format", Options: json.RawMessage(`["Online","Präsenz"]`)},
			{Type: model.Scale, Label: "Note"},
		},
	})

	submit := func(format string, note int) {
		payload := map[uint]json.RawMessage{
			survey.Questions[0].ID: json.RawMessage(`{"type":"option","value":"` + format + `"}`),
			survey.Questions[1].ID: json.RawMessage(`{"value":` + strconv.Itoa(note) + `}`),
		}
		_, err := svc.Submit(survey.Token, nil, payload)
		require.NoError(t, err)
	}
	submit("Online", 4)
	submit("Online", 5)
	submit("Präsenz", 3)

	results, err := svc.Results(survey.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, results.TotalResponses)
	require.Len(t, results.Questions, 2)
	assert.Equal(t, map[string]int{"Online": 2, "Präsenz": 1}, results.Questions[0].Counts)
	assert.Equal(t, 12, results.Questions[1].Sum)
	assert.InDelta(t, 4.0, results.Questions[1].Mean, 1e-9)

	out, err := svc.ExportCSV(survey.ID)
	require.NoError(t, err)
	assert.Contains(t, string(out), "response_id,user_id,created_at,Format,Note")
}
