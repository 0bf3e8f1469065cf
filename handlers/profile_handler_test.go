package handlers_test

import (
	"net/http"
	"testing"

	"github.com/kwameasante/study_planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileIncludesQuizHistory(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t)
	token := mintToken(t, user.ID)

	q := seedQuestion(t, "maths", "A")
	for _, week := range []string{"2026-08-17", "2026-08-24"} {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/quiz/validate-quiz", token, map[string]interface{}{
			"question_ids":    []string{q.ID.String()},
			"answers":         []map[string]string{{"question_id": q.ID.String(), "selected_answer": "A"}},
			"week_start_date": week,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User         models.User          `json:"user"`
		QuizzesTaken int                  `json:"quizzes_taken"`
		QuizHistory  []models.QuizAttempt `json:"quiz_history"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, user.ID, body.User.ID)
	assert.Equal(t, 2, body.QuizzesTaken)
	require.Len(t, body.QuizHistory, 2)
}

func TestUpdateProfileChangesCourse(t *testing.T) {
	app := setupApp(t)
	user := createTestUser(t)
	token := mintToken(t, user.ID)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/profile", token,
		map[string]string{"selected_course": "business"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	decodeBody(t, resp, &updated)
	require.NotNil(t, updated.SelectedCourse)
	assert.Equal(t, "business", *updated.SelectedCourse)
	assert.Equal(t, user.FullName, updated.FullName)
}

func TestProfileRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
